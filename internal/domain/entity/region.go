package entity

import (
	"image"
	"math"
)

// Point2f точка с дробными координатами
type Point2f struct {
	X float64
	Y float64
}

// Point округляет координаты до целых пикселей
func (p Point2f) Point() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// Size2f размер прямоугольника в пикселях
type Size2f struct {
	W float64
	H float64
}

// RotatedRegion повёрнутый прямоугольник, найденный по контуру
type RotatedRegion struct {
	Center Point2f // центр прямоугольника
	Size   Size2f  // ширина и высота до поворота
	Angle  float64 // угол поворота в градусах
}

// Normalize приводит угол к диапазону (-45°, 45°], меняя местами ширину и высоту
// при каждом развороте на 90°.
func (r RotatedRegion) Normalize() RotatedRegion {
	for r.Angle <= -45 {
		r.Angle += 90
		r.Size.W, r.Size.H = r.Size.H, r.Size.W
	}
	for r.Angle > 45 {
		r.Angle -= 90
		r.Size.W, r.Size.H = r.Size.H, r.Size.W
	}
	return r
}

// Squared увеличивает область в scale раз и делает её квадратной без поворота.
func (r RotatedRegion) Squared(scale float64) RotatedRegion {
	side := math.Max(r.Size.W, r.Size.H) * scale
	return RotatedRegion{
		Center: r.Center,
		Size:   Size2f{W: side, H: side},
		Angle:  0,
	}
}

// Bounds возвращает прямоугольник по центру и размеру, поворот не учитывается.
func (r RotatedRegion) Bounds() image.Rectangle {
	x := int(r.Center.X - r.Size.W/2)
	y := int(r.Center.Y - r.Size.H/2)
	return image.Rect(x, y, x+int(r.Size.W), y+int(r.Size.H))
}

// IsSquare сообщает, что область квадратная и не повёрнута
func (r RotatedRegion) IsSquare() bool {
	return r.Size.W == r.Size.H && r.Angle == 0
}
