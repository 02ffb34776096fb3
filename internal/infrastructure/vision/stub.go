//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"

	"care-label-reader/internal/domain/entity"
)

// Pipeline заглушка конвейера (без OpenCV)
type Pipeline struct {
	cfg      entity.PipelineConfig
	observer Observer
}

// NewPipeline проверяет параметры и создаёт заглушку.
func NewPipeline(cfg entity.PipelineConfig, base, inner *entity.TemplateSet, opts ...Option) (*Pipeline, error) {
	_ = base
	_ = inner
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Read возвращает ошибку, если сборка без тега gocv.
func (p *Pipeline) Read(ctx context.Context, frame image.Image) (*entity.LabelReading, error) {
	_ = ctx
	_ = frame
	return nil, ErrVisionDisabled
}

// Annotate возвращает ошибку, если сборка без тега gocv.
func (p *Pipeline) Annotate(reading *entity.LabelReading) ([]byte, error) {
	_ = reading
	return nil, ErrVisionDisabled
}

// Close ничего не освобождает
func (p *Pipeline) Close() error {
	return nil
}
