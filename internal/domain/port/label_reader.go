package port

import (
	"context"
	"image"

	"care-label-reader/internal/domain/entity"
)

// LabelReader интерфейс распознавателя этикеток
type LabelReader interface {
	// Read находит этикетку на кадре и расшифровывает все символы
	Read(ctx context.Context, frame image.Image) (*entity.LabelReading, error)

	// Annotate рисует найденные символы на выпрямленной этикетке и возвращает JPEG
	Annotate(reading *entity.LabelReading) ([]byte, error)
}
