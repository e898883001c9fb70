package artwork

import (
	"strconv"
	"strings"
)

// Summary is one artwork card extracted from a search-results page.
// Date, Year and Popularity are only filled on the timeline path.
type Summary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	FullTitle  string `json:"fullTitle"`
	Author     string `json:"author"`
	Date       string `json:"date,omitempty"`
	Year       int    `json:"year,omitempty"`
	Popularity int    `json:"popularity,omitempty"`
	ImageURL   string `json:"imageUrl"`
	URL        string `json:"url"`
}

// Detail is the canonical artwork record produced from the site's JSON API.
// Every optional field is default-filled; consumers never see a missing key.
type Detail struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	Artist            string       `json:"artist"`
	Date              string       `json:"date"`
	Medium            string       `json:"medium"`
	Dimensions        string       `json:"dimensions"`
	Description       string       `json:"description"`
	Image             []ImageEntry `json:"image"`
	URL               string       `json:"url"`
	CuratorialInfo    string       `json:"curatorial_info"`
	Provenance        string       `json:"provenance"`
	ExhibitionHistory []string     `json:"exhibition_history"`
	Bibliography      []string     `json:"bibliography"`
	RelatedWorks      []string     `json:"related_works"`
}

// ImageEntry is one entry of an artwork's image list. Besides the type and
// position keys the upstream record carries opaque fields (urls, copyright
// notices) that are passed through unchanged.
type ImageEntry map[string]any

func (e ImageEntry) Type() string {
	if t, ok := e["type"].(string); ok {
		return t
	}
	return ""
}

// Position returns the entry's numeric position. The upstream encodes it
// either as a JSON number or a digit string; anything else reports false.
func (e ImageEntry) Position() (int, bool) {
	switch v := e["position"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
