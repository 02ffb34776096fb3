//go:build !gocv
// +build !gocv

package acquisition

import (
	"context"
	"errors"
	"image"
)

// CameraSource заглушка камеры (без OpenCV)
type CameraSource struct {
	Device int
	Warmup int
}

// NewCameraSource создаёт заглушку камеры
func NewCameraSource(device int) *CameraSource {
	return &CameraSource{Device: device, Warmup: 5}
}

// Frame возвращает ошибку, если сборка без тега gocv.
func (s *CameraSource) Frame(ctx context.Context) (image.Image, error) {
	_ = ctx
	return nil, errors.New("gocv build tag is not enabled")
}
