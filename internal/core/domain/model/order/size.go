package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Size represents the portion size of an order line item.
// It is a closed enum serialized as its lowercase string value.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	SizeUnknown Size = iota

	// Small is the smallest available portion.
	Small

	// Medium is the standard portion.
	Medium

	// Big is the largest available portion.
	Big
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown: "unknown",
		Small:       "small",
		Medium:      "medium",
		Big:         "big",
	}
}

func getValidSizeStrings() map[Size]string {
	//nolint:exhaustive // SizeUnknown is intentionally excluded as it's invalid
	return map[Size]string{
		Small:  "small",
		Medium: "medium",
		Big:    "big",
	}
}

// Validate checks that the Size is one of small, medium or big.
func (s Size) Validate() error {
	if _, ok := getValidSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size is invalid", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the lowercase wire name of the size, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// SizeFromString parses a wire size name into a Size value.
// Returns an error for names that do not match a valid size.
func SizeFromString(s string) (Size, error) {
	for size, str := range getValidSizeStrings() {
		if str == s {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause("size is invalid", fmt.Errorf("%q is not a valid size", s))
}
