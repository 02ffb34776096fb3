//go:build gocv
// +build gocv

package vision

import (
	"image"

	"gocv.io/x/gocv"
)

// compare оценивает совпадение двух бинарных масок в [0, 1].
// Меньшая маска растягивается до размера большей. Расхождения в полосе
// tolerance пикселей у границ фигур не штрафуются.
func compare(tmpl, candidate gocv.Mat, tolerance int) float64 {
	if tmpl.Empty() || candidate.Empty() {
		return 0
	}

	a, b := tmpl, candidate
	if a.Cols()*a.Rows() < b.Cols()*b.Rows() {
		a, b = b, a
	}
	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(b, &resized, image.Pt(a.Cols(), a.Rows()), 0, 0, gocv.InterpolationNearestNeighbor)

	diff := xor(a, resized)
	defer diff.Close()

	overlap := and(a, resized)
	defer overlap.Close()

	matched := foreground(overlap)
	if matched == 0 {
		return 0
	}

	outside := invert(overlap)
	defer outside.Close()

	tight := erode(outside, tolerance)
	defer tight.Close()

	loose := dilate(diff, tolerance)
	defer loose.Close()

	penalized := and(loose, tight)
	defer penalized.Close()

	score := float64(matched-foreground(penalized)) / float64(matched)
	if score < 0 {
		return 0
	}
	return score
}
