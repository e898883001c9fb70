package timeline

import (
	"fmt"
	"sort"

	"museum-api/internal/artwork"
)

const (
	SortByDate       = "date"
	SortByPopularity = "popularity"
)

// Timeline is the aggregated view over an artist's extracted works.
// Earliest and Latest are nil when the input is empty.
type Timeline struct {
	Chronological []artwork.Summary            `json:"chronological"`
	ByDecade      map[string][]artwork.Summary `json:"by_decade"`
	Earliest      *artwork.Summary             `json:"-"`
	Latest        *artwork.Summary             `json:"-"`
}

// Build sorts the works and groups them into decade buckets. "date" sorts
// ascending by derived year, "popularity" descending by popularity (absent
// means 0); any other sortBy leaves the input order untouched. Works with no
// derivable year stay in the chronological list but never enter a bucket.
func Build(works []artwork.Summary, sortBy string) Timeline {
	sorted := append([]artwork.Summary(nil), works...)

	switch sortBy {
	case SortByDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Year < sorted[j].Year
		})
	case SortByPopularity:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Popularity > sorted[j].Popularity
		})
	}

	byDecade := make(map[string][]artwork.Summary)
	for _, w := range sorted {
		if w.Year == 0 {
			continue
		}
		label := fmt.Sprintf("%ds", w.Year/10*10)
		byDecade[label] = append(byDecade[label], w)
	}

	t := Timeline{
		Chronological: sorted,
		ByDecade:      byDecade,
	}
	if len(sorted) > 0 {
		t.Earliest = &sorted[0]
		t.Latest = &sorted[len(sorted)-1]
	}
	return t
}
