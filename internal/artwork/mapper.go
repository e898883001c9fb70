package artwork

import (
	"encoding/json"
	"fmt"
	"strings"
)

// rawDetail mirrors the site's JSON record for a single artwork. Only the
// keys we project are declared; image entries stay loosely typed so their
// extra fields survive the round trip.
type rawDetail struct {
	ArkID             string       `json:"arkId"`
	Title             string       `json:"title"`
	Creator           string       `json:"creator"`
	DateCreated       string       `json:"dateCreated"`
	Medium            string       `json:"medium"`
	Dimensions        string       `json:"dimensions"`
	Description       string       `json:"description"`
	Image             []ImageEntry `json:"image"`
	CuratorialInfo    string       `json:"curatorial_info"`
	Provenance        string       `json:"provenance"`
	ExhibitionHistory []string     `json:"exhibition_history"`
	Bibliography      []string     `json:"bibliography"`
	RelatedWorks      []string     `json:"related_works"`
}

// MapDetail projects a raw JSON artwork record into the canonical Detail
// shape. Absent or null upstream fields become empty strings or empty
// sequences; the detail-page URL is always constructed from configuration,
// never read from the record.
func MapDetail(raw []byte, baseURL, apiPath, id string) (Detail, error) {
	var rec rawDetail
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Detail{}, fmt.Errorf("decode artwork record: %w", err)
	}

	if rec.ArkID == "" {
		rec.ArkID = id
	}

	return Detail{
		ID:                rec.ArkID,
		Title:             rec.Title,
		Artist:            rec.Creator,
		Date:              rec.DateCreated,
		Medium:            rec.Medium,
		Dimensions:        rec.Dimensions,
		Description:       rec.Description,
		Image:             emptyIfNilImages(rec.Image),
		URL:               detailURL(baseURL, apiPath, id),
		CuratorialInfo:    rec.CuratorialInfo,
		Provenance:        rec.Provenance,
		ExhibitionHistory: emptyIfNil(rec.ExhibitionHistory),
		Bibliography:      emptyIfNil(rec.Bibliography),
		RelatedWorks:      emptyIfNil(rec.RelatedWorks),
	}, nil
}

func detailURL(baseURL, apiPath, id string) string {
	return strings.TrimRight(baseURL, "/") + apiPath + "/" + id
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyIfNilImages(s []ImageEntry) []ImageEntry {
	if s == nil {
		return []ImageEntry{}
	}
	return s
}
