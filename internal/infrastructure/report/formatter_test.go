package report

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"care-label-reader/internal/domain/entity"
)

func sampleReading() *entity.LabelReading {
	region := entity.RotatedRegion{
		Center: entity.Point2f{X: 100, Y: 100},
		Size:   entity.Size2f{W: 50, H: 50},
	}
	return &entity.LabelReading{
		Region: entity.RotatedRegion{Center: entity.Point2f{X: 300, Y: 200}, Size: entity.Size2f{W: 400, H: 200}},
		Symbols: []entity.SymbolReading{
			entity.NewSymbolReading(region, entity.MatchResult{Code: "wash", Score: 0.9},
				&entity.Detail{Inner: &entity.MatchResult{Code: "40", Score: 0.7}, OuterContours: 1}),
			entity.NewSymbolReading(region, entity.Miss(0.1), nil),
		},
	}
}

func TestFormatter_Describe(t *testing.T) {
	f := NewFormatter()
	desc, err := f.Describe(context.Background(), sampleReading())
	require.NoError(t, err)

	require.Contains(t, desc.Text, "Найдено символов: 2, распознано: 1")
	require.Contains(t, desc.Text, "1. стирка, 40°C, деликатный режим [wash; 40; delicate")
	require.Contains(t, desc.Text, "2. не распознано [error]")
	require.Contains(t, desc.Text, "Средняя уверенность: 0.50")
}

func TestFormatter_DescribeEmpty(t *testing.T) {
	f := NewFormatter()
	desc, err := f.Describe(context.Background(), &entity.LabelReading{})
	require.NoError(t, err)
	require.Contains(t, desc.Text, "не найдены")

	_, err = f.Describe(context.Background(), nil)
	require.Error(t, err)
}

func TestTitle(t *testing.T) {
	require.Equal(t, "химчистка, любые растворители кроме трихлорэтилена",
		Title(entity.DecodedInstruction{"dry_clean", "any_solvent_except_TCE"}))
	require.Equal(t, "не гладить", Title(entity.DecodedInstruction{"do_not_iron"}))
	require.Equal(t, "стирка, не распознано", Title(entity.DecodedInstruction{"wash", entity.ErrorSentinel}))
}

func TestFormatter_JSON(t *testing.T) {
	f := NewFormatter()
	raw, err := f.JSON(sampleReading())
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Equal(t, []string{"wash; 40; delicate", "error"}, doc.Codes)
	require.Len(t, doc.IDs, 2)
	require.Equal(t, entity.UnknownInstruction, doc.IDs[1])
	require.Len(t, doc.Symbols, 2)

	first := doc.Symbols[0]
	require.Equal(t, "wash", first.Base)
	require.Equal(t, "40", first.Inner)
	require.NotNil(t, first.InnerScore)
	require.Equal(t, 1, first.OuterContours)
	require.Equal(t, [4]int{75, 75, 50, 50}, first.Box)

	require.Empty(t, doc.Symbols[1].Inner)
	require.Nil(t, doc.Symbols[1].InnerScore)
	require.InDelta(t, 400, doc.Label.Width, 1e-9)
}
