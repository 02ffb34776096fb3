package acquisition

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"care-label-reader/internal/domain/entity"
)

func sampleImage() *image.NRGBA {
	img := imaging.New(30, 20, color.White)
	img.Set(3, 4, color.Black)
	return img
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label.png")
	require.NoError(t, imaging.Save(sampleImage(), path))

	src, err := New(KindFile, Options{Path: path})
	require.NoError(t, err)

	img, err := src.Frame(context.Background())
	require.NoError(t, err)
	require.Equal(t, 30, img.Bounds().Dx())
	require.Equal(t, 20, img.Bounds().Dy())
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.jpg")).Frame(context.Background())
	require.Error(t, err)
}

func TestBytesSource(t *testing.T) {
	var pngBuf, bmpBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, sampleImage()))
	require.NoError(t, bmp.Encode(&bmpBuf, sampleImage()))

	for name, data := range map[string][]byte{"png": pngBuf.Bytes(), "bmp": bmpBuf.Bytes()} {
		t.Run(name, func(t *testing.T) {
			img, err := NewBytesSource(data).Frame(context.Background())
			require.NoError(t, err)
			require.Equal(t, image.Rect(0, 0, 30, 20), img.Bounds())
		})
	}
}

func TestBytesSource_Invalid(t *testing.T) {
	_, err := NewBytesSource(nil).Frame(context.Background())
	require.ErrorIs(t, err, entity.ErrEmptyFrame)

	_, err = NewBytesSource([]byte("not an image")).Frame(context.Background())
	require.Error(t, err)
}

func TestNew_Validation(t *testing.T) {
	_, err := New(KindFile, Options{})
	require.Error(t, err)

	_, err = New("scanner", Options{})
	require.Error(t, err)

	src, err := New(KindCamera, Options{Device: 1})
	require.NoError(t, err)
	require.IsType(t, &CameraSource{}, src)
}
