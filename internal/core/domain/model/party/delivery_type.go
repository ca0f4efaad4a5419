package party

import (
	"fmt"
	"strings"

	"lockerbooking/internal/pkg/errs"
)

// DeliveryType selects how a party hands over or receives parcels.
type DeliveryType int

const (
	// UnknownDeliveryType is the zero value and is never valid.
	UnknownDeliveryType DeliveryType = iota

	// Locker parties use a parcel-locker terminal identified by its code.
	Locker

	// Address parties use a street address.
	Address
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		UnknownDeliveryType: "unknown",
		Locker:              "locker",
		Address:             "address",
	}
}

// ParseDeliveryType converts the stored or transported name ("locker", "address")
// back into a DeliveryType. Matching ignores case and surrounding spaces.
func ParseDeliveryType(s string) (DeliveryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "locker":
		return Locker, nil
	case "address":
		return Address, nil
	default:
		return UnknownDeliveryType, errs.NewValueIsInvalidErrorWithCause(
			"delivery type",
			fmt.Errorf("%q is not one of locker, address", s),
		)
	}
}

func (t DeliveryType) Validate() error {
	if t != Locker && t != Address {
		return errs.NewValueIsInvalidErrorWithCause("delivery type", fmt.Errorf("%d is not a valid delivery type", t))
	}
	return nil
}

func (t DeliveryType) String() string {
	if s, ok := getDeliveryTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}
