package services

import (
	"regexp"
	"strings"
)

var (
	// Australian landline or mobile, 0- or +61-prefixed, spaces tolerated.
	phonePattern = regexp.MustCompile(`^(0|\+61)[2-478]( ?\d){7,8}$`)

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// A 4-digit postcode somewhere in the address line.
	postcodePattern = regexp.MustCompile(`\b\d{4}\b`)
)

// ValidPhone reports whether s is a plausible Australian phone number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// ValidAddress reports whether s contains a 4-digit postcode.
func ValidAddress(s string) bool {
	return postcodePattern.MatchString(s)
}

// ValidateCustomer checks the customer block of a quote submission and
// returns a map of field name to error message. An empty map means the
// customer details are acceptable.
func ValidateCustomer(c Customer) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(c.Name) == "" {
		errs["customerName"] = "Customer name is required"
	}
	if strings.TrimSpace(c.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !ValidPhone(c.Phone) {
		errs["phone"] = "Enter a valid Australian phone number"
	}
	if strings.TrimSpace(c.Email) != "" && !ValidEmail(c.Email) {
		errs["email"] = "Enter a valid email address"
	}
	if strings.TrimSpace(c.Address) != "" && !ValidAddress(c.Address) {
		errs["address"] = "Address must include a 4-digit postcode"
	}
	return errs
}
