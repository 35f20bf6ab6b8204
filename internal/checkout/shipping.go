package checkout

import "strings"

// DefaultCountry is applied when the shipping form leaves country blank.
const DefaultCountry = "Kenya"

// ShippingInfo is the free-text shipping form. Country is always considered
// present; the other four fields gate payment.
type ShippingInfo struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Valid is the single predicate controlling whether payment is reachable:
// street, city, state and postal code must all be non-empty.
func (s ShippingInfo) Valid() bool {
	return strings.TrimSpace(s.Street) != "" &&
		strings.TrimSpace(s.City) != "" &&
		strings.TrimSpace(s.State) != "" &&
		strings.TrimSpace(s.PostalCode) != ""
}
