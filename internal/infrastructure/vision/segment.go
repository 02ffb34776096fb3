//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"

	"care-label-reader/internal/domain/entity"
)

// segmentSymbols находит квадратные области символов на выпрямленной этикетке.
// Порядок областей совпадает с порядком обнаружения контуров.
func (p *Pipeline) segmentSymbols(label gocv.Mat) []entity.RotatedRegion {
	gray := toGray(label)
	defer gray.Close()

	blur := gocv.NewMat()
	defer blur.Close()
	gocv.MedianBlur(gray, &blur, p.cfg.SymbolBlurKernel)

	ink := threshold(blur, p.cfg.SymbolCut, ThresholdInverted)
	defer ink.Close()

	filled := fillHoles(ink)
	defer filled.Close()

	merged := closeOp(filled, p.cfg.SymbolCloseIterations)
	defer merged.Close()

	separated := openOp(merged, p.cfg.SymbolOpenIterations)
	defer separated.Close()
	p.observe("symbols_mask", separated)

	contours := findContours(separated)
	defer contours.Close()

	regions := make([]entity.RotatedRegion, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		regions = append(regions, minAreaRect(contours.At(i)).Squared(p.cfg.SymbolScale))
	}
	return regions
}

// normalizeSymbol вырезает символ и оставляет только его самое крупное пятно.
// Результат: тёмный символ на белом фоне. Пустая матрица, если вырезать нечего.
func (p *Pipeline) normalizeSymbol(label gocv.Mat, region entity.RotatedRegion) gocv.Mat {
	crop := cropToRotatedRegion(label, region)
	defer crop.Close()
	if crop.Empty() {
		return gocv.NewMat()
	}

	gray := toGray(crop)
	defer gray.Close()

	paper := threshold(gray, p.cfg.CleanCut, ThresholdNormal)
	defer paper.Close()

	ink := invert(paper)
	defer ink.Close()

	bridged := dilate(ink, p.cfg.CleanDilateIterations)
	defer bridged.Close()

	contours := findContours(bridged)
	defer contours.Close()
	idx := largestContour(contours)
	if idx < 0 {
		return paper.Clone()
	}

	mask := contourMask(bridged, contours, idx)
	defer mask.Close()

	kept := and(ink, mask)
	defer kept.Close()
	return invert(kept)
}

// cropClean центрирует самую крупную фигуру маски в квадрате с запасом scale.
// false, если на маске нет ни одной фигуры.
func cropClean(mask gocv.Mat, border int, scale float64) (gocv.Mat, bool) {
	if mask.Empty() {
		return gocv.NewMat(), false
	}
	padded := addBorder(mask, border, black)
	defer padded.Close()

	region, ok := largestSquare(padded, scale)
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

// cropBase оставляет только залитую внутренность самой крупной фигуры,
// мелкие метки внутри символа пропадают.
func cropBase(mask gocv.Mat) gocv.Mat {
	contours := findContours(mask)
	defer contours.Close()
	idx := largestContour(contours)
	if idx < 0 {
		return mask.Clone()
	}

	inside := contourMask(mask, contours, idx)
	defer inside.Close()
	return and(mask, inside)
}
