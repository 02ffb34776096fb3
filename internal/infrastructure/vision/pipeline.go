//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"log"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"gocv.io/x/gocv"

	"care-label-reader/internal/domain/entity"
)

// Pipeline конвейер распознавания этикеток. Подготовленные шаблоны только
// читаются, поэтому Read можно вызывать из нескольких горутин.
type Pipeline struct {
	cfg      entity.PipelineConfig
	base     *classifier
	inner    *classifier
	observer Observer
}

// NewPipeline проверяет параметры и готовит шаблоны к сравнению.
func NewPipeline(cfg entity.PipelineConfig, base, inner *entity.TemplateSet, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}
	if base.Len() == 0 {
		return nil, errors.New("base template set is empty")
	}

	p := &Pipeline{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}

	var err error
	p.base, err = newClassifier(base, p.prepareBaseTemplate, cfg.BaseTolerance, cfg.BaseAccept)
	if err != nil {
		return nil, fmt.Errorf("base templates: %w", err)
	}
	p.inner, err = newClassifier(inner, p.normalizeInner, cfg.InnerTolerance, cfg.InnerAccept)
	if err != nil {
		p.base.close()
		return nil, fmt.Errorf("inner templates: %w", err)
	}
	return p, nil
}

// Read находит этикетку на кадре и расшифровывает символы в порядке обнаружения.
func (p *Pipeline) Read(ctx context.Context, frame image.Image) (*entity.LabelReading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mat, err := frameToMat(frame)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrEmptyFrame, err)
	}
	defer mat.Close()

	scaled := downscale(mat, p.cfg.MaxSide)
	defer scaled.Close()
	p.observe("frame", scaled)

	region, err := p.locateLabel(scaled)
	if err != nil {
		return nil, err
	}
	p.debugf("label at (%.0f, %.0f) size %.0fx%.0f angle %.1f",
		region.Center.X, region.Center.Y, region.Size.W, region.Size.H, region.Angle)

	label, err := p.rectifyLabel(scaled, region)
	defer label.Close()
	if err != nil {
		return nil, err
	}

	regions := p.segmentSymbols(label)
	p.debugf("found %d symbol candidates", len(regions))

	symbols := make([]entity.SymbolReading, 0, len(regions))
	for i, r := range regions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		symbols = append(symbols, p.readSymbol(label, i, r))
	}

	labelImg, err := label.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert label: %w", err)
	}

	return &entity.LabelReading{
		Region:  region,
		Label:   labelImg,
		Symbols: symbols,
	}, nil
}

func (p *Pipeline) readSymbol(label gocv.Mat, i int, region entity.RotatedRegion) entity.SymbolReading {
	sym := p.normalizeSymbol(label, region)
	defer sym.Close()
	p.observe("symbol_"+strconv.Itoa(i), sym)

	base := entity.Miss(0)
	if !sym.Empty() {
		base = p.classifyBase(sym)
	}

	var detail *entity.Detail
	if base.Matched() {
		detail = p.decodeDetail(sym, base)
	}

	reading := entity.NewSymbolReading(region, base, detail)
	p.debugf("symbol %d: %s (match: %.3f) id=%d", i, reading.Code, base.Score, reading.ID)
	return reading
}

// Annotate рисует рамки символов с номерами на выпрямленной этикетке.
func (p *Pipeline) Annotate(reading *entity.LabelReading) ([]byte, error) {
	if reading == nil || reading.Label == nil {
		return nil, errors.New("reading has no label image")
	}

	mat, err := frameToMat(reading.Label)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	n := len(reading.Symbols)
	for i, s := range reading.Symbols {
		c := palette(i, n)
		rect := s.Region.Bounds()
		gocv.Rectangle(&mat, rect, c, 2)
		text := strconv.Itoa(i + 1)
		if !s.Base.Matched() {
			text += "?"
		}
		gocv.PutText(&mat, text, image.Pt(rect.Min.X+4, rect.Min.Y+20),
			gocv.FontHersheySimplex, 0.7, c, 2)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close освобождает подготовленные шаблоны
func (p *Pipeline) Close() error {
	p.base.close()
	p.inner.close()
	return nil
}

// palette различимые цвета для n символов
func palette(i, n int) color.RGBA {
	if n < 1 {
		n = 1
	}
	r, g, b := colorful.Hsv(float64(i)*360/float64(n), 0.85, 0.9).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (p *Pipeline) observe(stage string, img gocv.Mat) {
	if p.observer == nil || img.Empty() {
		return
	}
	out, err := img.ToImage()
	if err != nil {
		p.debugf("observe %s: %v", stage, err)
		return
	}
	p.observer(stage, out)
}

func (p *Pipeline) debugf(format string, args ...any) {
	if p.cfg.Debug > 0 {
		log.Printf(format, args...)
	}
}
