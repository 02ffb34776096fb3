package entity

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotatedRegionNormalize(t *testing.T) {
	cases := []struct {
		name  string
		in    RotatedRegion
		angle float64
		size  Size2f
	}{
		{"in range", RotatedRegion{Size: Size2f{W: 10, H: 20}, Angle: 30}, 30, Size2f{W: 10, H: 20}},
		{"upper bound kept", RotatedRegion{Size: Size2f{W: 10, H: 20}, Angle: 45}, 45, Size2f{W: 10, H: 20}},
		{"below -45 folds", RotatedRegion{Size: Size2f{W: 10, H: 20}, Angle: -80}, 10, Size2f{W: 20, H: 10}},
		{"-45 folds", RotatedRegion{Size: Size2f{W: 10, H: 20}, Angle: -45}, 45, Size2f{W: 20, H: 10}},
		{"-90 folds to zero", RotatedRegion{Size: Size2f{W: 10, H: 20}, Angle: -90}, 0, Size2f{W: 20, H: 10}},
		{"above 45 folds", RotatedRegion{Size: Size2f{W: 10, H: 20}, Angle: 80}, -10, Size2f{W: 20, H: 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			require.InDelta(t, tc.angle, got.Angle, 1e-9)
			require.Equal(t, tc.size, got.Size)
			require.Greater(t, got.Angle, -45.0)
			require.LessOrEqual(t, got.Angle, 45.0)
		})
	}
}

func TestRotatedRegionSquared(t *testing.T) {
	r := RotatedRegion{Center: Point2f{X: 50, Y: 40}, Size: Size2f{W: 10, H: 20}, Angle: -12}
	sq := r.Squared(1.8)

	require.True(t, sq.IsSquare())
	require.InDelta(t, 36.0, sq.Size.W, 1e-9)
	require.Equal(t, r.Center, sq.Center)
}

func TestRotatedRegionBounds(t *testing.T) {
	r := RotatedRegion{Center: Point2f{X: 50, Y: 40}, Size: Size2f{W: 20, H: 10}, Angle: 7}
	require.Equal(t, image.Rect(40, 35, 60, 45), r.Bounds())
}

func TestPoint2fPoint(t *testing.T) {
	require.Equal(t, image.Pt(3, 5), Point2f{X: 2.6, Y: 4.5}.Point())
}
