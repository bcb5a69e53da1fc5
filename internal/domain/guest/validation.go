package guest

import (
	"fmt"
	"regexp"

	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/field"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// digitRule describes a digits-only field with a length window.
type digitRule struct {
	label    string
	minLen   int
	maxLen   int
	optional bool
}

var rules = map[field.Name]digitRule{
	field.Phone:          {label: "phone", minLen: 10, maxLen: 15},
	field.PassportSeries: {label: "passport series", minLen: 4, maxLen: 4, optional: true},
	field.PassportNumber: {label: "passport number", minLen: 6, maxLen: 6, optional: true},
}

// ValidateField checks a single guest field. It returns an empty string when
// the value is acceptable, so the caller can re-check a field on every change
// without touching the others. Fields without a rule always pass, and the
// passport fields may be left blank.
func ValidateField(f field.Name, value string) string {
	rule, ok := rules[f]
	if !ok {
		return ""
	}
	if value == "" {
		if rule.optional {
			return ""
		}
		return fmt.Sprintf("%s is required", rule.label)
	}
	if !digitsOnly.MatchString(value) {
		return fmt.Sprintf("%s must contain digits only", rule.label)
	}
	if n := len(value); n < rule.minLen || n > rule.maxLen {
		if rule.minLen == rule.maxLen {
			return fmt.Sprintf("%s must be exactly %d digits", rule.label, rule.minLen)
		}
		return fmt.Sprintf("%s must be %d to %d digits", rule.label, rule.minLen, rule.maxLen)
	}
	return ""
}

// Validate checks phone, passport series and passport number independently.
func Validate(in Input) field.Errors {
	errs := field.Errors{}
	values := map[field.Name]string{
		field.Phone:          in.Phone,
		field.PassportSeries: in.PassportSeries,
		field.PassportNumber: in.PassportNumber,
	}
	for f, v := range values {
		if msg := ValidateField(f, v); msg != "" {
			errs.Add(f, msg)
		}
	}
	return errs
}
