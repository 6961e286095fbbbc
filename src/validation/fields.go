// Package validation normalizes and checks the reader form fields.
package validation

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

const (
	MinReaderAge = 5
	MaxReaderAge = 120
)

var (
	ErrNationalIDLength   = errors.New("national id must have 11 digits")
	ErrNationalIDChecksum = errors.New("national id check digits do not match")
	ErrEmailFormat        = errors.New("email is not valid")
	ErrPhoneFormat        = errors.New("phone must have 10 or 11 digits including area code")
	ErrPostalCodeFormat   = errors.New("postal code must have 8 digits")
	ErrAgeRange           = errors.New("age must be between 5 and 120 years")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Digits drops every character that is not an ASCII digit.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Text trims surrounding space and composes the string to NFC so accented input
// typed on different keyboards compares equal.
func Text(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NationalID normalizes a CPF to its 11 digits. When checksum is set the two
// verifier digits are checked and repeated-digit sequences are rejected.
func NationalID(raw string, checksum bool) (string, error) {
	digits := Digits(raw)
	if len(digits) != 11 {
		return "", ErrNationalIDLength
	}
	if checksum && !validCPF(digits) {
		return "", ErrNationalIDChecksum
	}
	return digits, nil
}

func validCPF(digits string) bool {
	if strings.Count(digits, digits[:1]) == len(digits) {
		return false
	}
	return cpfDigit(digits[:9]) == digits[9] && cpfDigit(digits[:10]) == digits[10]
}

func cpfDigit(prefix string) byte {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (weight - i)
	}
	rest := sum * 10 % 11
	if rest == 10 {
		rest = 0
	}
	return byte('0' + rest)
}

// Email lower-cases and checks the address shape.
func Email(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if err := engine().Var(email, "required,email"); err != nil {
		return "", ErrEmailFormat
	}
	return email, nil
}

// Phone keeps the digits of a Brazilian phone number with area code.
func Phone(raw string) (string, error) {
	digits := Digits(raw)
	if len(digits) != 10 && len(digits) != 11 {
		return "", ErrPhoneFormat
	}
	return digits, nil
}

// PostalCode accepts an empty value or an 8 digit CEP.
func PostalCode(raw string) (string, error) {
	digits := Digits(raw)
	if digits == "" && strings.TrimSpace(raw) == "" {
		return "", nil
	}
	if len(digits) != 8 {
		return "", ErrPostalCodeFormat
	}
	return digits, nil
}

// Age returns the age in whole years at today.
func Age(birth, today time.Time) int {
	years := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		years--
	}
	return years
}

func BirthDate(birth, today time.Time) error {
	if age := Age(birth, today); age < MinReaderAge || age > MaxReaderAge {
		return ErrAgeRange
	}
	return nil
}
