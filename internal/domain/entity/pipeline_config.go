package entity

import "fmt"

// LabelContour способ выбора контура этикетки
type LabelContour string

const (
	// LabelContourFirst первый найденный контур. После большого закрытия на кадре
	// обычно остаётся один контур, поэтому по умолчанию берётся он.
	LabelContourFirst LabelContour = "first"
	// LabelContourLargest контур с наибольшей площадью
	LabelContourLargest LabelContour = "largest"
)

// PipelineConfig неизменяемые параметры конвейера распознавания.
// Значения подобраны на реальных снимках этикеток.
type PipelineConfig struct {
	// Поиск этикетки
	LabelBlurKernel      int          // медианное размытие канала насыщенности, нечётное
	LabelSaturationCut   float32      // порог насыщенности (инвертированный)
	LabelMergeIterations int          // итерации эрозии и дилатации
	LabelContour         LabelContour // какой контур считать этикеткой
	LabelPadding         int          // белая рамка вокруг выпрямленной этикетки

	// Поиск символов
	SymbolBlurKernel      int
	SymbolCut             float32
	SymbolCloseIterations int
	SymbolOpenIterations  int
	SymbolScale           float64 // увеличение квадратной области символа

	// Очистка символа
	CleanCut              float32
	CleanDilateIterations int

	// Нормализация перед сравнением
	CropBorder int
	CropScale  float64

	// Базовые шаблоны
	BaseTolerance int
	BaseAccept    float64

	// Внутренние метки
	DecodeDetails              bool
	InnerBorder                int
	InnerConsolidateIterations int
	InnerTolerance             int
	InnerAccept                float64

	MaxSide int // кадры больше этого размера уменьшаются, 0 отключает
	Debug   int // 0 только результат, 1 и больше логи этапов
}

// DefaultPipelineConfig параметры по умолчанию
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		LabelBlurKernel:      71,
		LabelSaturationCut:   30,
		LabelMergeIterations: 80,
		LabelContour:         LabelContourFirst,
		LabelPadding:         50,

		SymbolBlurKernel:      3,
		SymbolCut:             50,
		SymbolCloseIterations: 2,
		SymbolOpenIterations:  10,
		SymbolScale:           1.8,

		CleanCut:              64,
		CleanDilateIterations: 3,

		CropBorder: 60,
		CropScale:  1.3,

		BaseTolerance: 2,
		BaseAccept:    0.4,

		DecodeDetails:              true,
		InnerBorder:                20,
		InnerConsolidateIterations: 5,
		InnerTolerance:             0,
		InnerAccept:                0.1,
	}
}

// intParam именованный целочисленный параметр для проверки
type intParam struct {
	name  string
	value int
}

// Validate проверяет параметры. Поля проверяются в фиксированном порядке,
// поэтому при нескольких ошибках всегда возвращается первая.
func (c PipelineConfig) Validate() error {
	for _, k := range []intParam{
		{"label blur kernel", c.LabelBlurKernel},
		{"symbol blur kernel", c.SymbolBlurKernel},
	} {
		if k.value < 1 || k.value%2 == 0 {
			return fmt.Errorf("%s must be a positive odd number, got %d", k.name, k.value)
		}
	}
	for _, v := range []intParam{
		{"label merge iterations", c.LabelMergeIterations},
		{"label padding", c.LabelPadding},
		{"symbol close iterations", c.SymbolCloseIterations},
		{"symbol open iterations", c.SymbolOpenIterations},
		{"clean dilate iterations", c.CleanDilateIterations},
		{"crop border", c.CropBorder},
		{"base tolerance", c.BaseTolerance},
		{"inner border", c.InnerBorder},
		{"inner consolidate iterations", c.InnerConsolidateIterations},
		{"inner tolerance", c.InnerTolerance},
		{"max side", c.MaxSide},
	} {
		if v.value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", v.name, v.value)
		}
	}
	if c.SymbolScale <= 0 || c.CropScale <= 0 {
		return fmt.Errorf("scales must be positive, got symbol=%v crop=%v", c.SymbolScale, c.CropScale)
	}
	if c.BaseAccept < 0 || c.BaseAccept > 1 || c.InnerAccept < 0 || c.InnerAccept > 1 {
		return fmt.Errorf("accept thresholds must be in [0, 1], got base=%v inner=%v", c.BaseAccept, c.InnerAccept)
	}
	switch c.LabelContour {
	case LabelContourFirst, LabelContourLargest:
	default:
		return fmt.Errorf("unknown label contour mode %q", c.LabelContour)
	}
	return nil
}
