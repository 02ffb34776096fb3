package container

import (
	app "care-label-reader/internal/application"
	"care-label-reader/internal/domain/port"
)

type Container struct {
	UserService  *app.UserService
	LabelService *app.LabelService
}

func New(userRepo port.UserRepository, reader port.LabelReader, describer port.ReadingDescriber) *Container {
	userService := app.NewUserService(userRepo)
	labelService := app.NewLabelService(userService, reader, describer)

	return &Container{
		UserService:  userService,
		LabelService: labelService,
	}
}
