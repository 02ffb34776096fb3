package port

import (
	"context"

	"care-label-reader/internal/domain/entity"
)

// ReadingDescriber интерфейс описателя результата
type ReadingDescriber interface {
	// Describe генерирует текстовое описание распознанной этикетки
	Describe(ctx context.Context, reading *entity.LabelReading) (*entity.ReadingDescription, error)
}
