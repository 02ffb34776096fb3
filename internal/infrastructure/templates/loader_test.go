package templates

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"care-label-reader/internal/domain/entity"
)

// writeTemplate рисует чёрный квадрат на белом фоне
func writeTemplate(t *testing.T, path string) {
	t.Helper()
	img := imaging.New(40, 40, color.White)
	for y := 10; y < 30; y++ {
		for x := 10; x < 30; x++ {
			img.Set(x, y, color.Black)
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, imaging.Save(img, path))
}

func writeAll(t *testing.T, dir string) {
	t.Helper()
	for _, name := range entity.BaseTemplateNames() {
		writeTemplate(t, filepath.Join(dir, BaseDir, name+Ext))
	}
	for _, name := range entity.InnerTemplateNames() {
		writeTemplate(t, filepath.Join(dir, InnerDir, name+Ext))
	}
}

func TestDirLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeAll(t, dir)

	base, inner, err := NewDirLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, entity.BaseTemplateNames(), base.Names())
	require.Equal(t, entity.InnerTemplateNames(), inner.Names())

	mask, ok := base.Get("wash")
	require.True(t, ok)
	require.EqualValues(t, 255, mask.GrayAt(20, 20).Y)
	require.EqualValues(t, 0, mask.GrayAt(2, 2).Y)
}

func TestDirLoader_MissingTemplate(t *testing.T) {
	dir := t.TempDir()
	writeAll(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, InnerDir, "P"+Ext)))

	_, _, err := NewDirLoader(dir).Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "inner/P")
}

func TestDirLoader_Canceled(t *testing.T) {
	dir := t.TempDir()
	writeAll(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewDirLoader(dir).Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBinarize_TransparentIsBackground(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	img.Set(5, 5, color.NRGBA{A: 255})

	mask := Binarize(img)
	require.EqualValues(t, 0, mask.GrayAt(0, 0).Y)
	require.EqualValues(t, 255, mask.GrayAt(5, 5).Y)
}
