package artwork

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func img(typ string, position int) ImageEntry {
	return ImageEntry{"type": typ, "position": position}
}

func TestSelectImages_ByPosition(t *testing.T) {
	images := []ImageEntry{img("front", 0), img("back", 1)}

	sel, err := SelectImages(images, "", "1")
	require.NoError(t, err)

	pos, ok := sel.Entry.Position()
	require.True(t, ok)
	assert.Equal(t, 1, pos)
	assert.Equal(t, "back", sel.Type)
}

func TestSelectImages_PositionNotFound(t *testing.T) {
	images := []ImageEntry{img("front", 0), img("back", 1)}

	_, err := SelectImages(images, "", "5")
	assert.ErrorIs(t, err, ErrNoImageAtPosition)
}

// TestSelectImages_MalformedPosition a position that isn't an integer can
// never match an entry; it behaves like an out-of-range position.
func TestSelectImages_MalformedPosition(t *testing.T) {
	images := []ImageEntry{img("front", 0)}

	_, err := SelectImages(images, "", "abc")
	assert.ErrorIs(t, err, ErrNoImageAtPosition)
}

func TestSelectImages_All(t *testing.T) {
	images := []ImageEntry{img("front", 1), img("back", 0), img("front", 0)}

	sel, err := SelectImages(images, TypeAll, "")
	require.NoError(t, err)

	assert.Len(t, sel.Images, 3, "flat list keeps every entry")
	require.Len(t, sel.Groups, 2)
	assert.Len(t, sel.Groups["front"], 2)
	assert.Equal(t, []string{"front", "back"}, sel.Types, "group keys in first-occurrence order")
}

func TestSelectImages_KnownTypeSortedByPosition(t *testing.T) {
	images := []ImageEntry{img("front", 2), img("back", 0), img("front", 1)}

	sel, err := SelectImages(images, "front", "")
	require.NoError(t, err)

	require.Len(t, sel.Images, 2)
	first, _ := sel.Images[0].Position()
	second, _ := sel.Images[1].Position()
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	assert.Equal(t, "front", sel.Type)
}

// TestSelectImages_UnknownTypeFallsBack an unknown type resolves to the
// first group encountered while grouping rather than erroring.
func TestSelectImages_UnknownTypeFallsBack(t *testing.T) {
	images := []ImageEntry{img("front", 0), img("back", 1)}

	sel, err := SelectImages(images, "side", "")
	require.NoError(t, err)

	assert.Equal(t, "front", sel.Type)
	assert.Len(t, sel.Images, 1)
}

func TestSelectImages_TypelessGroupedAsUnspecified(t *testing.T) {
	images := []ImageEntry{{"position": 0}, img("front", 1)}

	sel, err := SelectImages(images, "unspecified", "")
	require.NoError(t, err)

	assert.Equal(t, "unspecified", sel.Type)
	assert.Len(t, sel.Images, 1)
}

// TestSelectImages_NoImages the empty-list guard fires before any grouping
// or position matching, whatever the arguments.
func TestSelectImages_NoImages(t *testing.T) {
	for _, args := range [][2]string{{"", ""}, {TypeAll, ""}, {"front", ""}, {"", "3"}, {"", "abc"}} {
		_, err := SelectImages(nil, args[0], args[1])
		assert.ErrorIs(t, err, ErrNoImages)
	}
}

func TestImageEntryPosition(t *testing.T) {
	cases := []struct {
		name  string
		entry ImageEntry
		want  int
		ok    bool
	}{
		{"json number", ImageEntry{"position": float64(2)}, 2, true},
		{"digit string", ImageEntry{"position": "3"}, 3, true},
		{"missing", ImageEntry{}, 0, false},
		{"non-numeric string", ImageEntry{"position": "n/a"}, 0, false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.entry.Position()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
