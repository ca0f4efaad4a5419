package shipment

import (
	"fmt"
	"strings"

	"lockerbooking/internal/pkg/errs"
)

// PackageSize is the locker compartment size chosen for a booking.
type PackageSize string

const (
	SizeXS PackageSize = "XS"
	SizeS  PackageSize = "S"
	SizeM  PackageSize = "M"
	SizeL  PackageSize = "L"
)

// The service-level strings are part of the locker network's contract.
func getServiceLevelCodes() map[PackageSize]string {
	return map[PackageSize]string{
		SizeXS: "L2LXS - ECO",
		SizeS:  "L2LS - ECO",
		SizeM:  "L2LM - ECO",
		SizeL:  "L2LL - ECO",
	}
}

// PackageSizes lists every size from smallest to largest.
func PackageSizes() []PackageSize {
	return []PackageSize{SizeXS, SizeS, SizeM, SizeL}
}

func ParsePackageSize(s string) (PackageSize, error) {
	size := PackageSize(strings.ToUpper(strings.TrimSpace(s)))
	if err := size.Validate(); err != nil {
		return "", err
	}
	return size, nil
}

func (s PackageSize) Validate() error {
	if _, ok := getServiceLevelCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("package size", fmt.Errorf("%q is not one of XS, S, M, L", string(s)))
	}
	return nil
}

// ServiceLevelCode returns the network code for s, or "" for an invalid size.
func (s PackageSize) ServiceLevelCode() string {
	return getServiceLevelCodes()[s]
}

func (s PackageSize) String() string {
	return string(s)
}
