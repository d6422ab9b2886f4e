package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Thai national ID - 13 digits
	NationalIDPattern = `^\d{13}$`

	// Thai mobile phone - 9 or 10 digits, optional leading 0
	PhonePattern = `^0?\d{8,9}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 1
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	NationalID *regexp.Regexp
	Phone      *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	NationalID: regexp.MustCompile(NationalIDPattern),
	Phone:      regexp.MustCompile(PhonePattern),
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// IsValidNationalID reports whether s is a valid Thai national ID:
// 13 digits whose last digit satisfies the mod-11 check,
// check = (11 - (sum of digits 1..12 weighted 13..2) mod 11) mod 10.
func IsValidNationalID(s string) bool {
	if !CompiledPatterns.NationalID.MatchString(s) {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		sum += int(s[i]-'0') * (13 - i)
	}
	check := (11 - sum%11) % 10
	return int(s[12]-'0') == check
}

// IsValidPhone reports whether s is a plausible Thai phone number.
func IsValidPhone(s string) bool {
	return CompiledPatterns.Phone.MatchString(s)
}
