package acquisition

import (
	"fmt"

	"care-label-reader/internal/domain/port"
)

// Kind способ получения кадра
type Kind string

const (
	KindFile   Kind = "file"   // файл на диске
	KindCamera Kind = "camera" // кадр с камеры
	KindBytes  Kind = "bytes"  // закодированное изображение в памяти
)

// Options параметры источника, используются поля нужного Kind
type Options struct {
	Path   string
	Data   []byte
	Device int
}

// New создаёт источник кадра нужного вида
func New(kind Kind, opts Options) (port.FrameSource, error) {
	switch kind {
	case KindFile:
		if opts.Path == "" {
			return nil, fmt.Errorf("file source: path is empty")
		}
		return NewFileSource(opts.Path), nil
	case KindBytes:
		return NewBytesSource(opts.Data), nil
	case KindCamera:
		return NewCameraSource(opts.Device), nil
	default:
		return nil, fmt.Errorf("unknown frame source kind %q", kind)
	}
}
