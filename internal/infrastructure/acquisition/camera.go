//go:build gocv
// +build gocv

package acquisition

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"care-label-reader/internal/domain/entity"
)

// CameraSource снимает один кадр с камеры
type CameraSource struct {
	Device int
	// Warmup сколько кадров пропустить, пока камера подстраивает экспозицию
	Warmup int
}

// NewCameraSource создаёт источник для камеры с номером device
func NewCameraSource(device int) *CameraSource {
	return &CameraSource{Device: device, Warmup: 5}
}

// Frame открывает камеру, пропускает Warmup кадров и возвращает следующий.
func (s *CameraSource) Frame(ctx context.Context) (image.Image, error) {
	capture, err := gocv.OpenVideoCapture(s.Device)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", s.Device, err)
	}
	defer capture.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	for i := 0; i <= s.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if ok := capture.Read(&frame); !ok {
			return nil, fmt.Errorf("camera %d: %w", s.Device, entity.ErrEmptyFrame)
		}
	}
	if frame.Empty() {
		return nil, fmt.Errorf("camera %d: %w", s.Device, entity.ErrEmptyFrame)
	}
	return frame.ToImage()
}
