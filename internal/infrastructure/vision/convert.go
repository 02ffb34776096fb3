//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"image"
	"image/draw"
	"runtime"

	"gocv.io/x/gocv"
)

// frameToMat переводит кадр в BGR-матрицу.
func frameToMat(frame image.Image) (gocv.Mat, error) {
	if frame == nil || frame.Bounds().Empty() {
		return gocv.NewMat(), errors.New("frame has no pixels")
	}
	b := frame.Bounds()
	rgba, ok := frame.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), frame, b.Min, draw.Src)
	}

	mat, err := gocv.NewMatFromBytes(b.Dy(), b.Dx(), gocv.MatTypeCV8UC4, rgba.Pix)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer mat.Close()

	bgr := gocv.NewMat()
	gocv.CvtColor(mat, &bgr, gocv.ColorRGBAToBGR)
	// mat ссылается на rgba.Pix без копии
	runtime.KeepAlive(rgba)
	return bgr, nil
}

// maskToMat переводит маску шаблона в одноканальную матрицу.
// Пиксели копируются, матрица не зависит от mask.
func maskToMat(mask *image.Gray) (gocv.Mat, error) {
	if mask == nil || mask.Bounds().Empty() {
		return gocv.NewMat(), errors.New("mask has no pixels")
	}
	b := mask.Bounds()
	if mask.Stride != b.Dx() || b.Min != (image.Point{}) {
		packed := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(packed, packed.Bounds(), mask, b.Min, draw.Src)
		mask = packed
	}
	view, err := gocv.ImageGrayToMatGray(mask)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer view.Close()

	mat := view.Clone()
	runtime.KeepAlive(mask)
	return mat, nil
}

// downscale уменьшает кадр так, чтобы большая сторона не превышала maxSide.
func downscale(src gocv.Mat, maxSide int) gocv.Mat {
	if maxSide <= 0 || (src.Cols() <= maxSide && src.Rows() <= maxSide) {
		return src.Clone()
	}
	scale := float64(maxSide) / float64(max(src.Cols(), src.Rows()))
	w := max(1, int(float64(src.Cols())*scale))
	h := max(1, int(float64(src.Rows())*scale))

	dst := gocv.NewMat()
	gocv.Resize(src, &dst, image.Pt(w, h), 0, 0, gocv.InterpolationArea)
	return dst
}
