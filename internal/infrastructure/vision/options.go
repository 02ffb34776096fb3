package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"

	"care-label-reader/internal/domain/entity"
	"care-label-reader/internal/domain/port"
)

// ErrVisionDisabled сборка без тега gocv
var ErrVisionDisabled = errors.New("gocv build tag is not enabled")

// Observer получает копии промежуточных изображений этапов. Вызывается
// синхронно, поэтому не должен надолго блокировать.
type Observer func(stage string, img image.Image)

// Option настройка конвейера
type Option func(*Pipeline)

// WithObserver подключает наблюдателя за этапами
func WithObserver(o Observer) Option {
	return func(p *Pipeline) {
		p.observer = o
	}
}

// LoadPipeline загружает шаблоны из src и готовит конвейер.
func LoadPipeline(ctx context.Context, cfg entity.PipelineConfig, src port.TemplateSource, opts ...Option) (*Pipeline, error) {
	base, inner, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	log.Printf("Loaded %d base and %d inner templates", base.Len(), inner.Len())

	return NewPipeline(cfg, base, inner, opts...)
}
