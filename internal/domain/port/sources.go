package port

import (
	"context"
	"image"

	"care-label-reader/internal/domain/entity"
)

// FrameSource источник кадра: файл, камера или байты из сообщения
type FrameSource interface {
	Frame(ctx context.Context) (image.Image, error)
}

// TemplateSource источник библиотек шаблонов
type TemplateSource interface {
	// Load возвращает базовые шаблоны и шаблоны внутренних меток в порядке объявления
	Load(ctx context.Context) (base, inner *entity.TemplateSet, err error)
}
