package artwork

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://museum.example"
const testAPIPath = "/ark:/53355"

func TestMapDetail(t *testing.T) {
	raw := []byte(`{
		"arkId": "cl010062370",
		"title": "Mona Lisa",
		"creator": "Leonardo DA VINCI",
		"dateCreated": "1503 - 1519",
		"medium": "oil on poplar panel",
		"dimensions": "77 x 53 cm",
		"description": "Portrait of Lisa Gherardini.",
		"image": [
			{"type": "front", "position": 0, "urlImage": "/media/a.jpg", "copyright": "RMN"}
		],
		"provenance": "Royal collection",
		"exhibition_history": ["Salon Carré"]
	}`)

	detail, err := MapDetail(raw, testBaseURL, testAPIPath, "cl010062370")
	require.NoError(t, err)

	assert.Equal(t, "cl010062370", detail.ID)
	assert.Equal(t, "Mona Lisa", detail.Title)
	assert.Equal(t, "Leonardo DA VINCI", detail.Artist, "creator maps to artist")
	assert.Equal(t, "1503 - 1519", detail.Date, "dateCreated maps to date")
	assert.Equal(t, "oil on poplar panel", detail.Medium)
	assert.Equal(t, "https://museum.example/ark:/53355/cl010062370", detail.URL)

	require.Len(t, detail.Image, 1)
	assert.Equal(t, "front", detail.Image[0].Type())
	assert.Equal(t, "RMN", detail.Image[0]["copyright"], "opaque image fields pass through")
}

// TestMapDetail_MissingFieldsDefault absent optional fields come back as
// empty strings and empty sequences, never missing keys.
func TestMapDetail_MissingFieldsDefault(t *testing.T) {
	detail, err := MapDetail([]byte(`{"title": "Untitled"}`), testBaseURL, testAPIPath, "cl000000001")
	require.NoError(t, err)

	assert.Equal(t, "cl000000001", detail.ID, "missing arkId falls back to the requested id")
	assert.Empty(t, detail.Artist)
	assert.Empty(t, detail.Date)
	assert.Empty(t, detail.Provenance)
	assert.Empty(t, detail.CuratorialInfo)

	require.NotNil(t, detail.Image)
	require.NotNil(t, detail.ExhibitionHistory)
	require.NotNil(t, detail.Bibliography)
	require.NotNil(t, detail.RelatedWorks)
	assert.Empty(t, detail.Bibliography)
}

func TestMapDetail_NullFieldsDefault(t *testing.T) {
	raw := []byte(`{"arkId": "x", "provenance": null, "bibliography": null, "image": null}`)

	detail, err := MapDetail(raw, testBaseURL, testAPIPath, "x")
	require.NoError(t, err)

	assert.Empty(t, detail.Provenance)
	require.NotNil(t, detail.Bibliography)
	require.NotNil(t, detail.Image)
}

// TestMapDetail_URLAlwaysConstructed the detail URL is built from
// configuration regardless of what the record carries.
func TestMapDetail_URLAlwaysConstructed(t *testing.T) {
	detail, err := MapDetail([]byte(`{}`), testBaseURL+"/", testAPIPath, "cl123")
	require.NoError(t, err)

	assert.Equal(t, "https://museum.example/ark:/53355/cl123", detail.URL)
}

func TestMapDetail_MalformedJSON(t *testing.T) {
	_, err := MapDetail([]byte(`not json`), testBaseURL, testAPIPath, "x")
	assert.Error(t, err)
}
