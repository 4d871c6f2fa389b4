// Package offlinekyc extracts offline KYC XML records into structured data
// and derives the display projections used by registration and voting flows.
//
// Every exported function in this package is free of shared state and safe
// for concurrent use.
package offlinekyc

// NotAvailable is the placeholder rendered for any absent display value.
const NotAvailable = "N/A"

// Element and attribute names of the offline KYC export. Matching is
// case-sensitive.
const (
	elemUIDData  = "UidData"
	elemPersonal = "Poi"
	elemAddress  = "Poa"
	elemPhoto    = "Pht"

	attrReferenceID = "referenceId"
)

// ParsedDocument is the structured form of one offline KYC record. A nil
// pointer means the value was absent from the source document. Values are
// produced once by Extract and must not be modified afterwards.
type ParsedDocument struct {
	ReferenceID     *string          `json:"reference_id,omitempty"`
	PersonalDetails *PersonalDetails `json:"personal_details,omitempty"`
	AddressDetails  *AddressDetails  `json:"address_details,omitempty"`
	Photo           *string          `json:"photo_base64,omitempty"`
}

// PersonalDetails holds the demographic attributes of the Poi node.
type PersonalDetails struct {
	Name *string `json:"name,omitempty"`
	// DateOfBirth is kept in the raw DD-MM-YYYY form; see FormatDate.
	DateOfBirth   *string `json:"dob,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	DOBMatchScore *string `json:"dob_matching_score,omitempty"`
}

// AddressDetails holds the attributes of the Poa node.
type AddressDetails struct {
	CareOf          *string `json:"care_of,omitempty"`
	House           *string `json:"house,omitempty"`
	Street          *string `json:"street,omitempty"`
	Landmark        *string `json:"landmark,omitempty"`
	Locality        *string `json:"locality,omitempty"`
	VillageTownCity *string `json:"village_town_city,omitempty"`
	PostOffice      *string `json:"post_office,omitempty"`
	SubDistrict     *string `json:"sub_district,omitempty"`
	District        *string `json:"district,omitempty"`
	State           *string `json:"state,omitempty"`
	Country         *string `json:"country,omitempty"`
	Pincode         *string `json:"pincode,omitempty"`
}

// HasPhoto reports whether the document carries a non-empty portrait.
func (d *ParsedDocument) HasPhoto() bool {
	return d != nil && d.Photo != nil && *d.Photo != ""
}

// WithoutPhoto returns a shallow copy of d with the portrait dropped, for
// responses that must not echo the image back.
func (d *ParsedDocument) WithoutPhoto() *ParsedDocument {
	if d == nil {
		return nil
	}
	cp := *d
	cp.Photo = nil
	return &cp
}
