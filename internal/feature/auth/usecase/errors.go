// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user exists for a phone number or ID.
	// Callers treat this as the "absent" outcome, not an infrastructure fault.
	ErrUserNotFound = errors.New("user not found")

	// ErrPhoneAlreadyRegistered is returned when attempting to register a
	// phone number that already has a user.
	ErrPhoneAlreadyRegistered = errors.New("phone number already registered")
)
