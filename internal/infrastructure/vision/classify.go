//go:build gocv
// +build gocv

package vision

import (
	"fmt"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/floats"

	"care-label-reader/internal/domain/entity"
)

// preparer приводит маску к виду, в котором её сравнивают с шаблонами.
// false, если на маске нет фигуры.
type preparer func(mask gocv.Mat) (gocv.Mat, bool)

// classifier набор подготовленных шаблонов в порядке объявления
type classifier struct {
	names     []string
	masks     []gocv.Mat
	tolerance int
	accept    float64
}

func newClassifier(set *entity.TemplateSet, prepare preparer, tolerance int, accept float64) (*classifier, error) {
	c := &classifier{tolerance: tolerance, accept: accept}
	for _, t := range set.Entries() {
		raw, err := maskToMat(t.Mask)
		if err != nil {
			c.close()
			return nil, fmt.Errorf("template %q: %w", t.Name, err)
		}
		prepared, ok := prepare(raw)
		raw.Close()
		if !ok {
			c.close()
			return nil, fmt.Errorf("template %q: no shape found", t.Name)
		}
		c.names = append(c.names, t.Name)
		c.masks = append(c.masks, prepared)
	}
	return c, nil
}

// classify сравнивает подготовленного кандидата со всеми шаблонами.
// При равных оценках побеждает шаблон, объявленный раньше.
func (c *classifier) classify(candidate gocv.Mat) entity.MatchResult {
	if len(c.masks) == 0 || candidate.Empty() {
		return entity.Miss(0)
	}

	scores := make([]float64, len(c.masks))
	for i, m := range c.masks {
		scores[i] = compare(m, candidate, c.tolerance)
	}
	best := floats.MaxIdx(scores)
	if scores[best] <= 0 || scores[best] < c.accept {
		return entity.Miss(scores[best])
	}
	return entity.MatchResult{Code: c.names[best], Score: scores[best]}
}

func (c *classifier) close() {
	for i := range c.masks {
		c.masks[i].Close()
	}
	c.masks = nil
}

// prepareBaseTemplate заливает дыры и центрирует шаблон базового символа.
func (p *Pipeline) prepareBaseTemplate(mask gocv.Mat) (gocv.Mat, bool) {
	filled := fillHoles(mask)
	defer filled.Close()
	return cropClean(filled, p.cfg.CropBorder, p.cfg.CropScale)
}

// prepareBaseCandidate готовит символ (тёмный на белом) к сравнению
// с базовыми шаблонами: остаётся только силуэт без внутренних меток.
func (p *Pipeline) prepareBaseCandidate(sym gocv.Mat) (gocv.Mat, bool) {
	ink := invert(sym)
	defer ink.Close()

	filled := fillHoles(ink)
	defer filled.Close()

	clean, ok := cropClean(filled, p.cfg.CropBorder, p.cfg.CropScale)
	if !ok {
		return clean, false
	}
	defer clean.Close()
	return cropBase(clean), true
}

// classifyBase ищет базовый символ. Символ без фигуры даёт промах с нулевой оценкой.
func (p *Pipeline) classifyBase(sym gocv.Mat) entity.MatchResult {
	candidate, ok := p.prepareBaseCandidate(sym)
	defer candidate.Close()
	if !ok {
		return entity.Miss(0)
	}
	return p.base.classify(candidate)
}
