package offlinekyc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullDocument = `<?xml version="1.0" encoding="UTF-8"?>
<OfflinePaperlessKyc referenceId="567820240312101010123">
  <UidData>
    <Poi dob="15-08-1995" e="" gender="M" m="a3f9" name="Ravi Kumar"/>
    <Poa careof="S/O Mohan Kumar" country="India" dist="Pune" house="12" landmark="City Mall"
         loc="Aundh" pc="411007" po="Aundh" state="Maharashtra" street="MG Road"
         subdist="Haveli" vtc="Pune City"/>
    <Pht>/9j/4AAQSkZJRgABAgAAAQABAAD</Pht>
  </UidData>
  <Signature>ignored</Signature>
</OfflinePaperlessKyc>`

func strp(s string) *string { return &s }

func TestParse_FullDocumentReproducesEveryField(t *testing.T) {
	doc, err := Parse([]byte(fullDocument))
	require.NoError(t, err)

	expected := &ParsedDocument{
		ReferenceID: strp("567820240312101010123"),
		PersonalDetails: &PersonalDetails{
			Name:          strp("Ravi Kumar"),
			DateOfBirth:   strp("15-08-1995"),
			Gender:        strp("M"),
			DOBMatchScore: strp("a3f9"),
		},
		AddressDetails: &AddressDetails{
			CareOf:          strp("S/O Mohan Kumar"),
			House:           strp("12"),
			Street:          strp("MG Road"),
			Landmark:        strp("City Mall"),
			Locality:        strp("Aundh"),
			VillageTownCity: strp("Pune City"),
			PostOffice:      strp("Aundh"),
			SubDistrict:     strp("Haveli"),
			District:        strp("Pune"),
			State:           strp("Maharashtra"),
			Country:         strp("India"),
			Pincode:         strp("411007"),
		},
		Photo: strp("/9j/4AAQSkZJRgABAgAAAQABAAD"),
	}
	assert.Equal(t, expected, doc)
}

func TestParse_MissingSectionsAreAbsent(t *testing.T) {
	doc, err := Parse([]byte(`<OfflinePaperlessKyc referenceId="42"><UidData/></OfflinePaperlessKyc>`))
	require.NoError(t, err)

	assert.Equal(t, "42", *doc.ReferenceID)
	assert.Nil(t, doc.PersonalDetails)
	assert.Nil(t, doc.AddressDetails)
	assert.Nil(t, doc.Photo)
}

func TestParse_NoContainerKeepsReferenceOnly(t *testing.T) {
	doc, err := Parse([]byte(`<OfflinePaperlessKyc referenceId="42"><Poi name="outside"/></OfflinePaperlessKyc>`))
	require.NoError(t, err)

	assert.Equal(t, "42", *doc.ReferenceID)
	assert.Nil(t, doc.PersonalDetails)
}

func TestParse_MissingRootAttributeIsNotAnError(t *testing.T) {
	doc, err := Parse([]byte(`<OfflinePaperlessKyc><UidData><Poi name="A"/></UidData></OfflinePaperlessKyc>`))
	require.NoError(t, err)

	assert.Nil(t, doc.ReferenceID)
	require.NotNil(t, doc.PersonalDetails)
	assert.Equal(t, "A", *doc.PersonalDetails.Name)
	assert.Nil(t, doc.PersonalDetails.DateOfBirth)
	assert.Nil(t, doc.PersonalDetails.Gender)
	assert.Nil(t, doc.PersonalDetails.DOBMatchScore)
}

func TestParse_EmptyAttributesArePreserved(t *testing.T) {
	doc, err := Parse([]byte(`<R><UidData><Poa house="" dist="Pune"/></UidData></R>`))
	require.NoError(t, err)

	require.NotNil(t, doc.AddressDetails)
	require.NotNil(t, doc.AddressDetails.House)
	assert.Equal(t, "", *doc.AddressDetails.House)
	assert.Nil(t, doc.AddressDetails.Street)
	assert.Equal(t, "Pune", *doc.AddressDetails.District)
	assert.Equal(t, "Pune", FormatAddress(doc.AddressDetails))
}

func TestParse_EmptyPhotoIsAbsent(t *testing.T) {
	doc, err := Parse([]byte("<R><UidData><Pht></Pht></UidData></R>"))
	require.NoError(t, err)
	assert.Nil(t, doc.Photo)
	assert.False(t, doc.HasPhoto())
}

func TestParse_WhitespacePhotoIsKeptVerbatim(t *testing.T) {
	doc, err := Parse([]byte("<R><UidData><Pht>\n  </Pht></UidData></R>"))
	require.NoError(t, err)
	require.NotNil(t, doc.Photo)
	assert.Equal(t, "\n  ", *doc.Photo)
	assert.True(t, doc.HasPhoto())
}

func TestParse_PhotoIsStoredVerbatim(t *testing.T) {
	doc, err := Parse([]byte("<R><UidData><Pht>not base64 at all!</Pht></UidData></R>"))
	require.NoError(t, err)
	require.NotNil(t, doc.Photo)
	assert.Equal(t, "not base64 at all!", *doc.Photo)
}

func TestParse_OnlyFirstSectionIsUsed(t *testing.T) {
	doc, err := Parse([]byte(`<R><UidData><Poi name="first"/><Poi name="second"/></UidData></R>`))
	require.NoError(t, err)
	assert.Equal(t, "first", *doc.PersonalDetails.Name)
}

func TestParse_NoRootIsMalformed(t *testing.T) {
	_, err := Parse([]byte(""))
	require.Error(t, err)

	var malformedErr *MalformedDocumentError
	require.True(t, errors.As(err, &malformedErr))
	assert.ErrorIs(t, err, errNoRoot)
}

func TestParse_LoaderFailureIsMalformedWithCause(t *testing.T) {
	_, err := Parse([]byte("<R><UidData>"))
	require.Error(t, err)

	var malformedErr *MalformedDocumentError
	require.True(t, errors.As(err, &malformedErr))
	var loaderErr *LoaderError
	assert.True(t, errors.As(err, &loaderErr))
}

func TestParser_CustomLoaderErrorIsPropagated(t *testing.T) {
	cause := errors.New("boom")
	p := NewParser(func([]byte) (*Tree, error) { return nil, cause })

	_, err := p.Parse([]byte("<R/>"))
	var malformedErr *MalformedDocumentError
	require.True(t, errors.As(err, &malformedErr))
	assert.ErrorIs(t, err, cause)
}

func TestExtract_NilTreeIsMalformed(t *testing.T) {
	_, err := Extract(nil)
	var malformedErr *MalformedDocumentError
	assert.True(t, errors.As(err, &malformedErr))
}

func TestExtract_TraversalPanicIsMalformed(t *testing.T) {
	tree := &Tree{Root: &Element{Name: "R", Children: []*Element{nil}}}

	doc, err := Extract(tree)
	assert.Nil(t, doc)
	var malformedErr *MalformedDocumentError
	require.True(t, errors.As(err, &malformedErr))
	assert.Equal(t, "walking document", malformedErr.Reason)
}

func TestParsedDocument_WithoutPhoto(t *testing.T) {
	doc, err := Parse([]byte(fullDocument))
	require.NoError(t, err)

	stripped := doc.WithoutPhoto()
	assert.Nil(t, stripped.Photo)
	assert.NotNil(t, doc.Photo)
	assert.Equal(t, doc.PersonalDetails, stripped.PersonalDetails)
}
