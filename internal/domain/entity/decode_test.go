package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstructionName(t *testing.T) {
	require.Equal(t, "dry_clean", InstructionName("pro"))
	require.Equal(t, "tumble_dry", InstructionName("dry"))
	require.Equal(t, "wash", InstructionName("wash"))
	require.Equal(t, "do_not_wash", InstructionName("wash_not"))
	require.Equal(t, "do_not_dry_clean", InstructionName("pro_not"))
	require.Equal(t, ErrorSentinel, InstructionName(ErrorSentinel))
}

func TestHasDetail(t *testing.T) {
	require.True(t, HasDetail("wash"))
	require.True(t, HasDetail("pro"))
	require.False(t, HasDetail("bleach"))
	require.False(t, HasDetail("wash_not"))
	require.False(t, HasDetail(ErrorSentinel))
}

func TestDecodeInner(t *testing.T) {
	cases := []struct {
		base, inner, want string
	}{
		{"wash", "30", "30"},
		{"wash", "2_dot", "40"},
		{"wash", "6_dot", "95"},
		{"iron", "1_dot", "low_temp"},
		{"dry", "3_dot", "high_temp"},
		{"pro", "A", "any_solvent"},
		{"pro", "P", "any_solvent_except_TCE"},
		{"pro", "W", "wet_clean"},
	}
	for _, tc := range cases {
		got, ok := DecodeInner(tc.base, tc.inner)
		require.True(t, ok, "%s/%s", tc.base, tc.inner)
		require.Equal(t, tc.want, got)
	}

	_, ok := DecodeInner("iron", "4_dot")
	require.False(t, ok)
	_, ok = DecodeInner("bleach", "1_dot")
	require.False(t, ok)
	_, ok = DecodeInner("wash", "A")
	require.False(t, ok)
}

func TestOuterQualifier(t *testing.T) {
	q, ok := OuterQualifier(1)
	require.True(t, ok)
	require.Equal(t, QualifierDelicate, q)

	q, ok = OuterQualifier(2)
	require.True(t, ok)
	require.Equal(t, QualifierVeryDelicate, q)

	for _, n := range []int{0, 3, 7} {
		_, ok = OuterQualifier(n)
		require.False(t, ok)
	}
}

func TestDecode(t *testing.T) {
	t.Run("wash 40 from digits", func(t *testing.T) {
		d := &Detail{Inner: &MatchResult{Code: "40", Score: 0.8}}
		require.Equal(t, "wash; 40", Decode("wash", d).String())
	})

	t.Run("wash 40 from dots", func(t *testing.T) {
		d := &Detail{Inner: &MatchResult{Code: "2_dot", Score: 0.5}}
		require.Equal(t, "wash; 40", Decode("wash", d).String())
	})

	t.Run("inner miss propagates sentinel", func(t *testing.T) {
		d := &Detail{Inner: &MatchResult{Code: ErrorSentinel, Score: 0.05}, OuterContours: 1}
		require.Equal(t, "wash; error; delicate", Decode("wash", d).String())
	})

	t.Run("no inner marks", func(t *testing.T) {
		d := &Detail{OuterContours: 2}
		require.Equal(t, "dry_clean; very_delicate", Decode("pro", d).String())
	})

	t.Run("unlisted pair adds nothing", func(t *testing.T) {
		d := &Detail{Inner: &MatchResult{Code: "5_dot", Score: 0.9}}
		require.Equal(t, "iron", Decode("iron", d).String())
	})

	t.Run("bleach ignores detail", func(t *testing.T) {
		d := &Detail{Inner: &MatchResult{Code: "1_dot", Score: 0.9}, OuterContours: 1}
		require.Equal(t, "bleach", Decode("bleach", d).String())
	})

	t.Run("negative ignores detail", func(t *testing.T) {
		d := &Detail{Inner: &MatchResult{Code: "40", Score: 0.9}}
		require.Equal(t, "do_not_wash", Decode("wash_not", d).String())
	})
}
