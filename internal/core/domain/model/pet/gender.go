package pet

import (
	"fmt"

	"petadoption/internal/pkg/errs"
)

// Gender represents a pet's gender. It is a value object with a fixed set of
// valid values used for display and filtering on the adoption surface.
type Gender int

const (
	// GenderUnknown represents an invalid or undefined gender.
	// This value (0) helps catch uninitialized Gender values.
	GenderUnknown Gender = iota

	// Male is the male gender.
	Male

	// Female is the female gender.
	Female
)

// getValidGenderStrings returns a map of only valid Gender values.
func getValidGenderStrings() map[Gender]string {
	//nolint:exhaustive // GenderUnknown is intentionally excluded as it's invalid
	return map[Gender]string{
		Male:   "male",
		Female: "female",
	}
}

// GenderFromString parses a gender from its wire representation,
// "male" or "female". Any other input is invalid.
func GenderFromString(s string) (Gender, error) {
	for gender, str := range getValidGenderStrings() {
		if str == s {
			return gender, nil
		}
	}
	return GenderUnknown, errs.NewValueIsInvalidErrorWithCause("gender", fmt.Errorf("%q is not a valid gender", s))
}

// Validate checks if the Gender value is valid.
// Valid genders are Male and Female; GenderUnknown and any other values fail.
func (g Gender) Validate() error {
	if _, ok := getValidGenderStrings()[g]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("gender", fmt.Errorf("%d is not a valid gender", g))
	}
	return nil
}

// String returns the wire representation of the gender.
// Returns "Unknown" for invalid values.
// Implements the fmt.Stringer interface.
func (g Gender) String() string {
	if str, ok := getValidGenderStrings()[g]; ok {
		return str
	}
	return "Unknown"
}
