package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultPipelineConfig_Valid(t *testing.T) {
	cfg := DefaultPipelineConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, LabelContourFirst, cfg.LabelContour)
	require.InDelta(t, 0.4, cfg.BaseAccept, 1e-9)
	require.InDelta(t, 0.1, cfg.InnerAccept, 1e-9)
	require.InDelta(t, 1.8, cfg.SymbolScale, 1e-9)
	require.InDelta(t, 1.3, cfg.CropScale, 1e-9)
}

func TestPipelineConfig_Validate(t *testing.T) {
	cases := map[string]func(*PipelineConfig){
		"even kernel":       func(c *PipelineConfig) { c.LabelBlurKernel = 70 },
		"zero kernel":       func(c *PipelineConfig) { c.SymbolBlurKernel = 0 },
		"negative padding":  func(c *PipelineConfig) { c.LabelPadding = -1 },
		"zero scale":        func(c *PipelineConfig) { c.SymbolScale = 0 },
		"accept above one":  func(c *PipelineConfig) { c.BaseAccept = 1.5 },
		"unknown contour":   func(c *PipelineConfig) { c.LabelContour = "biggest" },
		"negative max side": func(c *PipelineConfig) { c.MaxSide = -10 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultPipelineConfig()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestPipelineConfig_ValidateReportsFirstField(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.LabelPadding = -1
	cfg.InnerTolerance = -1
	cfg.MaxSide = -1

	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		require.EqualError(t, err, "label padding must not be negative, got -1")
	}
}
