package offlinekyc

import "golang.org/x/text/language"

// Summary is the flattened, display-ready view of a ParsedDocument. Every
// field is always populated; absent values render as NotAvailable.
type Summary struct {
	Name               string `json:"name"`
	DateOfBirthDisplay string `json:"date_of_birth_display"`
	Gender             string `json:"gender"`
	AddressDisplay     string `json:"address_display"`
	ReferenceID        string `json:"reference_id"`
	HasPhoto           bool   `json:"has_photo"`
}

// Summarize builds a Summary using DefaultLocale for dates.
func Summarize(doc *ParsedDocument) Summary {
	return SummarizeIn(DefaultLocale, doc)
}

// SummarizeIn builds a Summary, rendering the date of birth in locale.
func SummarizeIn(locale language.Tag, doc *ParsedDocument) Summary {
	if doc == nil {
		doc = &ParsedDocument{}
	}

	var name, dob, gender *string
	if p := doc.PersonalDetails; p != nil {
		name, dob, gender = p.Name, p.DateOfBirth, p.Gender
	}

	return Summary{
		Name:               orNotAvailable(name),
		DateOfBirthDisplay: FormatDateIn(locale, dob),
		Gender:             orNotAvailable(gender),
		AddressDisplay:     FormatAddress(doc.AddressDetails),
		ReferenceID:        orNotAvailable(doc.ReferenceID),
		HasPhoto:           doc.HasPhoto(),
	}
}

func orNotAvailable(v *string) string {
	if v == nil || *v == "" {
		return NotAvailable
	}
	return *v
}
