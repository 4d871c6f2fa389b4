package offlinekyc

import "strings"

// FormatAddress renders the display address: house, street, landmark
// (as "near <landmark>"), locality, village/town/city, district, state and
// pincode, joined by ", ". Care-of, post office, sub-district and country are
// never part of the display string. Returns NotAvailable when nothing is set.
func FormatAddress(a *AddressDetails) string {
	if a == nil {
		return NotAvailable
	}

	parts := make([]string, 0, 8)
	add := func(prefix string, v *string) {
		if v != nil && *v != "" {
			parts = append(parts, prefix+*v)
		}
	}

	add("", a.House)
	add("", a.Street)
	add("near ", a.Landmark)
	add("", a.Locality)
	add("", a.VillageTownCity)
	add("", a.District)
	add("", a.State)
	add("", a.Pincode)

	if len(parts) == 0 {
		return NotAvailable
	}
	return strings.Join(parts, ", ")
}
