// Package validate implements the input validation rules for the auth feature.
// Each validator is a standalone predicate with a typed failure, so callers
// can compose them and branch on the exact rule that was violated.
package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation failures. Handlers map these to 400 responses; they are never
// allowed to reach the persistence layer.
var (
	// ErrInvalidPhone indicates the phone number is not an 11-digit local
	// mobile number starting with 09.
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidCode indicates the OTP code is not exactly 6 digits.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrInvalidFullName indicates the full name is out of bounds or
	// contains characters outside the allowed script.
	ErrInvalidFullName = errors.New("invalid full name")
)

var (
	phonePattern = regexp.MustCompile(`^09\d{9}$`)
	codePattern  = regexp.MustCompile(`^\d{6}$`)
	// Persian letters and whitespace only.
	fullNamePattern = regexp.MustCompile(`^[\x{0600}-\x{06FF}\s]+$`)
	nonDigit        = regexp.MustCompile(`\D`)
)

const (
	minFullNameLen = 2
	maxFullNameLen = 100
)

// Phone strips every non-digit character and checks the result against the
// local mobile format (11 digits, leading 09). It returns the normalized
// number, or ErrInvalidPhone.
func Phone(s string) (string, error) {
	clean := nonDigit.ReplaceAllString(s, "")
	if !phonePattern.MatchString(clean) {
		return "", ErrInvalidPhone
	}
	return clean, nil
}

// Code checks that s is exactly 6 numeric digits. The code is compared
// verbatim downstream, so no normalization is applied here.
func Code(s string) error {
	if !codePattern.MatchString(s) {
		return ErrInvalidCode
	}
	return nil
}

// FullName trims surrounding whitespace and checks length (2-100 characters)
// and script (Persian letters and whitespace). It returns the trimmed name,
// or ErrInvalidFullName.
func FullName(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	n := utf8.RuneCountInString(trimmed)
	if n < minFullNameLen || n > maxFullNameLen {
		return "", ErrInvalidFullName
	}
	if !fullNamePattern.MatchString(trimmed) {
		return "", ErrInvalidFullName
	}
	return trimmed, nil
}
