//go:build gocv
// +build gocv

package vision

import (
	"image"
	"image/color"
	"runtime"

	"gocv.io/x/gocv"

	"care-label-reader/internal/domain/entity"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// ThresholdMode полярность бинаризации
type ThresholdMode int

const (
	ThresholdNormal   ThresholdMode = iota // выше порога → 255
	ThresholdInverted                      // выше порога → 0
)

// threshold бинаризует одноканальное изображение по порогу cut.
func threshold(src gocv.Mat, cut float32, mode ThresholdMode) gocv.Mat {
	typ := gocv.ThresholdBinary
	if mode == ThresholdInverted {
		typ = gocv.ThresholdBinaryInv
	}
	dst := gocv.NewMat()
	gocv.Threshold(src, &dst, cut, 255, typ)
	return dst
}

// toGray переводит цветное изображение в оттенки серого, серое копирует.
func toGray(src gocv.Mat) gocv.Mat {
	if src.Channels() == 1 {
		return src.Clone()
	}
	dst := gocv.NewMat()
	gocv.CvtColor(src, &dst, gocv.ColorBGRToGray)
	return dst
}

func invert(src gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	gocv.BitwiseNot(src, &dst)
	return dst
}

func and(a, b gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	gocv.BitwiseAnd(a, b, &dst)
	return dst
}

func or(a, b gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	gocv.BitwiseOr(a, b, &dst)
	return dst
}

func xor(a, b gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	gocv.BitwiseXor(a, b, &dst)
	return dst
}

// addBorder добавляет рамку size пикселей цвета fill со всех сторон.
func addBorder(src gocv.Mat, size int, fill color.RGBA) gocv.Mat {
	dst := gocv.NewMat()
	gocv.CopyMakeBorder(src, &dst, size, size, size, size, gocv.BorderConstant, fill)
	return dst
}

// erode повторяет эрозию квадратом 3x3 iterations раз. За краем изображения
// считается ноль, поэтому фигуры у края тоже съедаются.
func erode(src gocv.Mat, iterations int) gocv.Mat {
	if iterations <= 0 {
		return src.Clone()
	}
	padded := addBorder(src, iterations, black)
	defer padded.Close()

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(2*iterations+1, 2*iterations+1))
	defer kernel.Close()

	eroded := gocv.NewMat()
	defer eroded.Close()
	gocv.Erode(padded, &eroded, kernel)

	return cropToRegion(eroded, iterations, iterations, src.Cols(), src.Rows())
}

// dilate повторяет дилатацию квадратом 3x3 iterations раз, за краем ноль.
func dilate(src gocv.Mat, iterations int) gocv.Mat {
	if iterations <= 0 {
		return src.Clone()
	}
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(2*iterations+1, 2*iterations+1))
	defer kernel.Close()

	dst := gocv.NewMat()
	gocv.Dilate(src, &dst, kernel)
	return dst
}

// closeOp дилатация, затем эрозия: склеивает близкие штрихи.
func closeOp(src gocv.Mat, iterations int) gocv.Mat {
	tmp := dilate(src, iterations)
	defer tmp.Close()
	return erode(tmp, iterations)
}

// openOp эрозия, затем дилатация: убирает мелкий шум и разделяет фигуры.
func openOp(src gocv.Mat, iterations int) gocv.Mat {
	tmp := erode(src, iterations)
	defer tmp.Close()
	return dilate(tmp, iterations)
}

// floodOutside обводит src рамкой в один пиксель цвета frame, заливает
// 4-связную область рамки цветом fill и снимает рамку.
func floodOutside(src gocv.Mat, frame, fill uint8) gocv.Mat {
	padded := addBorder(src, 1, color.RGBA{R: frame, G: frame, B: frame, A: 255})
	defer padded.Close()

	rows, cols := padded.Rows(), padded.Cols()
	pix := padded.ToBytes()
	if frame != fill {
		floodFill(pix, cols, rows, image.Pt(0, 0), fill)
	}

	filled, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8U, pix)
	if err != nil {
		return src.Clone()
	}
	defer filled.Close()

	dst := cropToRegion(filled, 1, 1, src.Cols(), src.Rows())
	runtime.KeepAlive(pix)
	return dst
}

// floodFill заливает 4-связную область одного цвета начиная с seed.
func floodFill(pix []byte, cols, rows int, seed image.Point, fill uint8) {
	target := pix[seed.Y*cols+seed.X]
	if target == fill {
		return
	}
	stack := []image.Point{seed}
	pix[seed.Y*cols+seed.X] = fill
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range [4]image.Point{{p.X + 1, p.Y}, {p.X - 1, p.Y}, {p.X, p.Y + 1}, {p.X, p.Y - 1}} {
			if n.X < 0 || n.Y < 0 || n.X >= cols || n.Y >= rows {
				continue
			}
			i := n.Y*cols + n.X
			if pix[i] != target {
				continue
			}
			pix[i] = fill
			stack = append(stack, n)
		}
	}
}

// fillHoles заливает фон, замкнутый внутри фигур (фигуры = 255).
// Внешний силуэт не меняется.
func fillHoles(src gocv.Mat) gocv.Mat {
	flooded := floodOutside(src, 0, 255)
	defer flooded.Close()

	holes := invert(flooded)
	defer holes.Close()

	return or(src, holes)
}

func findContours(src gocv.Mat) gocv.PointsVector {
	return gocv.FindContours(src, gocv.RetrievalExternal, gocv.ChainApproxSimple)
}

// largestContour индекс контура с наибольшей площадью, -1 если контуров нет.
// При равных площадях остаётся первый.
func largestContour(contours gocv.PointsVector) int {
	if contours.Size() == 0 {
		return -1
	}
	best := 0
	bestArea := gocv.ContourArea(contours.At(0))
	for i := 1; i < contours.Size(); i++ {
		if a := gocv.ContourArea(contours.At(i)); a > bestArea {
			best, bestArea = i, a
		}
	}
	return best
}

func minAreaRect(contour gocv.PointVector) entity.RotatedRegion {
	r := gocv.MinAreaRect(contour)
	return entity.RotatedRegion{
		Center: entity.Point2f{X: float64(r.Center.X), Y: float64(r.Center.Y)},
		Size:   entity.Size2f{W: float64(r.Width), H: float64(r.Height)},
		Angle:  float64(r.Angle),
	}
}

// contourMask рисует залитый контур idx на чёрном холсте размера like.
func contourMask(like gocv.Mat, contours gocv.PointsVector, idx int) gocv.Mat {
	mask := zeros(like.Rows(), like.Cols())
	gocv.DrawContours(&mask, contours, idx, white, -1)
	return mask
}

// cropToRegion вырезает прямоугольник, обрезанный по границам изображения.
// Если пересечения нет, возвращается пустая матрица.
func cropToRegion(src gocv.Mat, x, y, w, h int) gocv.Mat {
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, src.Cols(), src.Rows()))
	if r.Empty() {
		return gocv.NewMat()
	}
	roi := src.Region(r)
	defer roi.Close()
	return roi.Clone()
}

// cropToRotatedRegion вырезает ограничивающий прямоугольник области.
// Поворот должен быть уже снят.
func cropToRotatedRegion(src gocv.Mat, region entity.RotatedRegion) gocv.Mat {
	b := region.Bounds()
	return cropToRegion(src, b.Min.X, b.Min.Y, b.Dx(), b.Dy())
}

// rotate поворачивает изображение вокруг center на angle градусов,
// линейная интерполяция, за краем ноль.
func rotate(src gocv.Mat, center image.Point, angle float64) gocv.Mat {
	m := gocv.GetRotationMatrix2D(center, angle, 1)
	defer m.Close()

	dst := gocv.NewMat()
	gocv.WarpAffineWithParams(src, &dst, m, image.Pt(src.Cols(), src.Rows()),
		gocv.InterpolationLinear, gocv.BorderConstant, color.RGBA{})
	return dst
}

func zeros(rows, cols int) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), rows, cols, gocv.MatTypeCV8U)
}

func foreground(src gocv.Mat) int {
	if src.Empty() {
		return 0
	}
	return gocv.CountNonZero(src)
}
