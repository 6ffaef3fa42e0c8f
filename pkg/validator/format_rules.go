package validator

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

var (
	// Email regex - local@domain.tld shaped, no whitespace, single "@",
	// at least one "." in the domain.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Phone regex - E.164: a leading "+" followed by 10-15 digits, nothing else.
	phoneRegex = regexp.MustCompile(`^\+\d{10,15}$`)
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("missing required field: %s", field),
		},
	}
}

// ValidEmail validates that a string is a local@domain.tld shaped email
// address. It does not normalize the value.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "invalid email format",
		},
	}
}

// ValidPhone validates that a string is an E.164 phone number:
// a leading "+" followed by 10-15 digits and no other characters.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phoneRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "invalid phone number format, must be E.164 (e.g. +1234567890)",
		},
	}
}

// ValidIP validates that the trimmed string parses as a syntactically valid
// IPv4 or IPv6 literal.
func ValidIP(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return net.ParseIP(strings.TrimSpace(value)) != nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "invalid IP address",
		},
	}
}
