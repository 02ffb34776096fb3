package entity

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseTemplateNames(t *testing.T) {
	require.Equal(t, []string{
		"bleach", "bleach_not",
		"pro", "pro_not",
		"iron", "iron_not",
		"wash", "wash_not",
		"dry", "dry_not",
	}, BaseTemplateNames())
	require.Len(t, InnerTemplateNames(), 15)
}

func TestTemplateSet_PreservesOrder(t *testing.T) {
	set := NewTemplateSet()
	names := []string{"wash", "bleach", "iron", "dry", "pro"}
	for _, n := range names {
		require.NoError(t, set.Add(n, image.NewGray(image.Rect(0, 0, 4, 4))))
	}

	for i := 0; i < 3; i++ {
		require.Equal(t, names, set.Names())
	}
	require.Equal(t, 5, set.Len())

	mask, ok := set.Get("iron")
	require.True(t, ok)
	require.NotNil(t, mask)

	_, ok = set.Get("missing")
	require.False(t, ok)
}

func TestTemplateSet_Rejects(t *testing.T) {
	set := NewTemplateSet()
	mask := image.NewGray(image.Rect(0, 0, 2, 2))

	require.NoError(t, set.Add("wash", mask))
	require.Error(t, set.Add("wash", mask))
	require.Error(t, set.Add("", mask))
	require.Error(t, set.Add("iron", nil))
	require.Error(t, set.Add("dry", image.NewGray(image.Rectangle{})))
	require.Equal(t, 1, set.Len())
}

func TestTemplateSet_EntriesIsCopy(t *testing.T) {
	set := NewTemplateSet()
	require.NoError(t, set.Add("a", image.NewGray(image.Rect(0, 0, 1, 1))))

	entries := set.Entries()
	entries[0].Name = "changed"
	require.Equal(t, []string{"a"}, set.Names())
}
