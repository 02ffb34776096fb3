package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSymbolReading_Scenarios(t *testing.T) {
	region := RotatedRegion{Size: Size2f{W: 10, H: 10}}

	a := NewSymbolReading(region, MatchResult{Code: "wash", Score: 0.9},
		&Detail{Inner: &MatchResult{Code: "40", Score: 0.7}})
	require.Equal(t, "wash; 40", a.Code)
	require.Equal(t, 6, a.ID)

	b := NewSymbolReading(region, Miss(0.12), nil)
	require.Equal(t, ErrorSentinel, b.Code)
	require.Equal(t, UnknownInstruction, b.ID)

	c := NewSymbolReading(region, MatchResult{Code: "pro", Score: 0.8},
		&Detail{Inner: &MatchResult{Code: "P", Score: 0.6}})
	require.Equal(t, "dry_clean; any_solvent_except_TCE", c.Code)
	require.Equal(t, 47, c.ID)

	reading := LabelReading{Symbols: []SymbolReading{a, b, c}}
	require.Equal(t, []string{"wash; 40", "error", "dry_clean; any_solvent_except_TCE"}, reading.Codes())
	require.Equal(t, []int{6, -1, 47}, reading.IDs())
	require.Equal(t, 2, reading.Recognized())
}

func TestMatchResult(t *testing.T) {
	require.False(t, Miss(0.3).Matched())
	require.False(t, MatchResult{}.Matched())
	require.True(t, MatchResult{Code: "iron", Score: 0.5}.Matched())
}
