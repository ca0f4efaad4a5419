package party

import "strings"

// StreetAddress is a structured postal address. FullAddress keeps the free-text
// form the operator picked from autocomplete; the other fields are what the
// locker network receives.
type StreetAddress struct {
	street      string
	suburb      string
	city        string
	province    string
	postalCode  string
	fullAddress string
}

func NewStreetAddress(street, suburb, city, province, postalCode, fullAddress string) StreetAddress {
	return StreetAddress{
		street:      strings.TrimSpace(street),
		suburb:      strings.TrimSpace(suburb),
		city:        strings.TrimSpace(city),
		province:    strings.TrimSpace(province),
		postalCode:  strings.TrimSpace(postalCode),
		fullAddress: strings.TrimSpace(fullAddress),
	}
}

func (a StreetAddress) Street() string      { return a.street }
func (a StreetAddress) Suburb() string      { return a.suburb }
func (a StreetAddress) City() string        { return a.city }
func (a StreetAddress) Province() string    { return a.province }
func (a StreetAddress) PostalCode() string  { return a.postalCode }
func (a StreetAddress) FullAddress() string { return a.fullAddress }

// IsZero reports whether no field is set.
func (a StreetAddress) IsZero() bool {
	return a == StreetAddress{}
}

// Label is the one-line form shown to operators: FullAddress when present,
// otherwise the non-empty structured parts joined by commas.
func (a StreetAddress) Label() string {
	if a.fullAddress != "" {
		return a.fullAddress
	}

	parts := make([]string, 0, 5)
	for _, p := range []string{a.street, a.suburb, a.city, a.province, a.postalCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
