package acquisition

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"care-label-reader/internal/domain/entity"
	"care-label-reader/internal/domain/port"
)

// FileSource читает кадр из файла с учётом EXIF-ориентации
type FileSource struct {
	Path string
}

// NewFileSource создаёт источник из файла
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Frame декодирует файл
func (s *FileSource) Frame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := imaging.Open(s.Path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	return img, nil
}

// BytesSource декодирует кадр из памяти, например фото из сообщения
type BytesSource struct {
	Data []byte
}

// NewBytesSource создаёт источник из байтов
func NewBytesSource(data []byte) *BytesSource {
	return &BytesSource{Data: data}
}

// Frame декодирует байты (jpeg, png, gif, bmp, tiff, webp)
func (s *BytesSource) Frame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.Data) == 0 {
		return nil, entity.ErrEmptyFrame
	}
	img, err := imaging.Decode(bytes.NewReader(s.Data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: decoded image has no pixels", entity.ErrEmptyFrame)
	}
	return img, nil
}

// Проверка реализации интерфейса
var (
	_ port.FrameSource = (*FileSource)(nil)
	_ port.FrameSource = (*BytesSource)(nil)
)
