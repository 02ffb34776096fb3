package templates

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"care-label-reader/internal/domain/entity"
	"care-label-reader/internal/domain/port"
)

const (
	// BaseDir подкаталог с базовыми символами
	BaseDir = "base"
	// InnerDir подкаталог с внутренними метками
	InnerDir = "inner"
	// Ext расширение файлов шаблонов
	Ext = ".png"

	// порог после инверсии: тёмные штрихи исходника становятся 255
	maskLevel = 128
)

// DirLoader читает шаблоны из каталога вида <dir>/base/wash.png, <dir>/inner/40.png
type DirLoader struct {
	Dir string
}

// NewDirLoader создаёт загрузчик шаблонов из каталога
func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{Dir: dir}
}

// Load читает оба набора в объявленном порядке.
func (l *DirLoader) Load(ctx context.Context) (*entity.TemplateSet, *entity.TemplateSet, error) {
	base, err := l.loadSet(ctx, BaseDir, entity.BaseTemplateNames())
	if err != nil {
		return nil, nil, err
	}
	inner, err := l.loadSet(ctx, InnerDir, entity.InnerTemplateNames())
	if err != nil {
		return nil, nil, err
	}
	return base, inner, nil
}

func (l *DirLoader) loadSet(ctx context.Context, sub string, names []string) (*entity.TemplateSet, error) {
	set := entity.NewTemplateSet()
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(l.Dir, sub, name+Ext)
		mask, err := LoadMask(path)
		if err != nil {
			return nil, fmt.Errorf("template %s/%s: %w", sub, name, err)
		}
		if err := set.Add(name, mask); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// LoadMask читает картинку шаблона и превращает её в бинарную маску:
// тёмный рисунок = 255, светлый фон и прозрачность = 0.
func LoadMask(path string) (*image.Gray, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	return Binarize(img), nil
}

// Binarize накладывает картинку на белый фон, инвертирует и режет по порогу.
func Binarize(img image.Image) *image.Gray {
	b := img.Bounds()
	flat := imaging.New(b.Dx(), b.Dy(), color.White)
	flat = imaging.Overlay(flat, img, image.Pt(0, 0), 1.0)
	return segment.Threshold(effect.Invert(flat), maskLevel)
}

// Проверка реализации интерфейса
var _ port.TemplateSource = (*DirLoader)(nil)
