//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"

	"care-label-reader/internal/domain/entity"
)

// decodeDetail ищет внутренние и внешние метки символа (тёмный на белом).
// nil, если у базового кода меток не бывает или расшифровка отключена.
func (p *Pipeline) decodeDetail(sym gocv.Mat, base entity.MatchResult) *entity.Detail {
	if !p.cfg.DecodeDetails || !entity.HasDetail(base.Code) {
		return nil
	}

	detail := &entity.Detail{OuterContours: p.symOutside(sym)}

	marks, ok := p.symInside(sym)
	defer marks.Close()
	if !ok {
		return detail
	}

	candidate, ok := p.normalizeInner(marks)
	defer candidate.Close()
	inner := entity.Miss(0)
	if ok {
		inner = p.inner.classify(candidate)
	}
	detail.Inner = &inner
	return detail
}

// symInside выделяет метки внутри контура символа (метки = 255).
// false, если у символа нет внутренней области или она пустая.
func (p *Pipeline) symInside(sym gocv.Mat) (gocv.Mat, bool) {
	ink := invert(sym)
	defer ink.Close()

	// фон снаружи символа гасится, остаётся бумага внутри обводки
	interior := floodOutside(sym, 255, 0)
	defer interior.Close()

	contours := findContours(interior)
	defer contours.Close()
	idx := largestContour(contours)
	if idx < 0 {
		return gocv.NewMat(), false
	}

	mask := contourMask(interior, contours, idx)
	defer mask.Close()

	marks := and(ink, mask)
	p.observe("inner_marks", marks)
	if foreground(marks) == 0 {
		return marks, false
	}
	return marks, true
}

// normalizeInner собирает близкие метки (точки, цифры) в одно пятно
// и вырезает квадрат вокруг всех его частей.
func (p *Pipeline) normalizeInner(marks gocv.Mat) (gocv.Mat, bool) {
	if marks.Empty() {
		return gocv.NewMat(), false
	}
	padded := addBorder(marks, p.cfg.InnerBorder, black)
	defer padded.Close()

	closed := closeOp(padded, p.cfg.InnerConsolidateIterations)
	defer closed.Close()

	blob := openOp(closed, p.cfg.InnerConsolidateIterations)
	defer blob.Close()

	region, ok := unionSquare(blob, p.cfg.CropScale)
	if !ok {
		// точки и тонкие цифры уже ядра открытия и пропадают целиком
		region, ok = unionSquare(closed, p.cfg.CropScale)
	}
	if !ok {
		return gocv.NewMat(), false
	}

	crop := cropToRotatedRegion(padded, region)
	if crop.Empty() {
		crop.Close()
		return gocv.NewMat(), false
	}
	return crop, true
}

// unionSquare квадрат вокруг общего прямоугольника всех контуров маски.
func unionSquare(mask gocv.Mat, scale float64) (entity.RotatedRegion, bool) {
	contours := findContours(mask)
	defer contours.Close()
	if contours.Size() == 0 {
		return entity.RotatedRegion{}, false
	}

	box := gocv.BoundingRect(contours.At(0))
	for i := 1; i < contours.Size(); i++ {
		box = box.Union(gocv.BoundingRect(contours.At(i)))
	}
	region := entity.RotatedRegion{
		Center: entity.Point2f{
			X: float64(box.Min.X+box.Max.X) / 2,
			Y: float64(box.Min.Y+box.Max.Y) / 2,
		},
		Size: entity.Size2f{W: float64(box.Dx()), H: float64(box.Dy())},
	}
	return region.Squared(scale), true
}

func largestSquare(mask gocv.Mat, scale float64) (entity.RotatedRegion, bool) {
	contours := findContours(mask)
	defer contours.Close()
	idx := largestContour(contours)
	if idx < 0 {
		return entity.RotatedRegion{}, false
	}
	return minAreaRect(contours.At(idx)).Squared(scale), true
}

// symOutside считает отдельные штрихи вне основного силуэта символа.
func (p *Pipeline) symOutside(sym gocv.Mat) int {
	ink := invert(sym)
	defer ink.Close()

	filled := fillHoles(ink)
	defer filled.Close()

	contours := findContours(filled)
	defer contours.Close()
	idx := largestContour(contours)
	if idx < 0 {
		return 0
	}

	silhouette := contourMask(filled, contours, idx)
	defer silhouette.Close()

	around := invert(silhouette)
	defer around.Close()

	outside := and(filled, around)
	defer outside.Close()
	p.observe("outer_marks", outside)

	rest := findContours(outside)
	defer rest.Close()
	return rest.Size()
}
