package offlinekyc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestSummarize_ReferenceOnly(t *testing.T) {
	summary := Summarize(&ParsedDocument{ReferenceID: strp("ref-1")})

	assert.Equal(t, Summary{
		Name:               "N/A",
		DateOfBirthDisplay: "N/A",
		Gender:             "N/A",
		AddressDisplay:     "N/A",
		ReferenceID:        "ref-1",
		HasPhoto:           false,
	}, summary)
}

func TestSummarize_FullDocument(t *testing.T) {
	doc, err := Parse([]byte(fullDocument))
	require.NoError(t, err)

	summary := Summarize(doc)
	assert.Equal(t, "Ravi Kumar", summary.Name)
	assert.Equal(t, "15 August 1995", summary.DateOfBirthDisplay)
	assert.Equal(t, "M", summary.Gender)
	assert.Equal(t, "12, MG Road, near City Mall, Aundh, Pune City, Pune, Maharashtra, 411007", summary.AddressDisplay)
	assert.Equal(t, "567820240312101010123", summary.ReferenceID)
	assert.True(t, summary.HasPhoto)

	// Extraction leaves the date in its raw form.
	assert.Equal(t, "15-08-1995", *doc.PersonalDetails.DateOfBirth)
}

func TestSummarize_IsIdempotent(t *testing.T) {
	doc, err := Parse([]byte(fullDocument))
	require.NoError(t, err)

	assert.Equal(t, Summarize(doc), Summarize(doc))
}

func TestSummarize_NilDocumentIsAllPlaceholders(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, "N/A", summary.Name)
	assert.Equal(t, "N/A", summary.ReferenceID)
	assert.False(t, summary.HasPhoto)
}

func TestSummarize_UnparseableDateFallsBackToRaw(t *testing.T) {
	doc := &ParsedDocument{PersonalDetails: &PersonalDetails{DateOfBirth: strp("1995")}}
	assert.Equal(t, "1995", Summarize(doc).DateOfBirthDisplay)
}

func TestSummarizeIn_UsesLocale(t *testing.T) {
	doc := &ParsedDocument{PersonalDetails: &PersonalDetails{DateOfBirth: strp("15-08-1995")}}
	assert.Equal(t, "August 15, 1995", SummarizeIn(language.AmericanEnglish, doc).DateOfBirthDisplay)
}

func TestSummary_JSONNeverOmitsKeys(t *testing.T) {
	raw, err := json.Marshal(Summarize(&ParsedDocument{}))
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"name", "date_of_birth_display", "gender", "address_display", "reference_id", "has_photo"} {
		assert.Contains(t, fields, key)
	}
}
