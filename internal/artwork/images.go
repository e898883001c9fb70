package artwork

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrNoImages          = errors.New("no images available")
	ErrNoImageAtPosition = errors.New("no image at position")
)

// TypeAll requests every group plus the flat list.
const TypeAll = "all"

// typeless entries are grouped under this key.
const typeUnspecified = "unspecified"

// Selection is the outcome of SelectImages. Exactly one of Entry (position
// lookup) or Images (type lookup / flat list) is meaningful; Groups and
// Types are filled only for the "all" case.
type Selection struct {
	Entry  ImageEntry              `json:"image,omitempty"`
	Type   string                  `json:"type,omitempty"`
	Images []ImageEntry            `json:"images,omitempty"`
	Groups map[string][]ImageEntry `json:"images_by_type,omitempty"`
	Types  []string                `json:"types,omitempty"`
}

// SelectImages filters an artwork's image list. position takes precedence
// over typ; an empty position string means "not requested". A position that
// doesn't parse as an integer can never match and yields the same not-found
// as an out-of-range one.
func SelectImages(images []ImageEntry, typ, position string) (Selection, error) {
	if len(images) == 0 {
		return Selection{}, ErrNoImages
	}

	if strings.TrimSpace(position) != "" {
		want, err := strconv.Atoi(strings.TrimSpace(position))
		if err != nil {
			return Selection{}, ErrNoImageAtPosition
		}
		for _, img := range images {
			if pos, ok := img.Position(); ok && pos == want {
				return Selection{Entry: img, Type: img.Type()}, nil
			}
		}
		return Selection{}, ErrNoImageAtPosition
	}

	groups, order := groupByType(images)

	if typ == "" || typ == TypeAll {
		return Selection{
			Type:   TypeAll,
			Images: images,
			Groups: groups,
			Types:  order,
		}, nil
	}

	// Unknown types fall back to the first group seen while grouping, so
	// the choice is deterministic across runs.
	if _, ok := groups[typ]; !ok {
		typ = order[0]
	}

	selected := append([]ImageEntry(nil), groups[typ]...)
	sort.SliceStable(selected, func(i, j int) bool {
		pi, _ := selected[i].Position()
		pj, _ := selected[j].Position()
		return pi < pj
	})

	return Selection{Type: typ, Images: selected}, nil
}

// groupByType buckets entries by their declared type, recording group keys
// in order of first occurrence.
func groupByType(images []ImageEntry) (map[string][]ImageEntry, []string) {
	groups := make(map[string][]ImageEntry)
	var order []string

	for _, img := range images {
		key := img.Type()
		if key == "" {
			key = typeUnspecified
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], img)
	}

	return groups, order
}
