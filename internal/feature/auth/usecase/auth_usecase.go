// Package usecase implements the business logic for the auth feature:
// the phone-number / OTP authentication protocol.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"jobpath_backend/internal/feature/auth/domain/entity"
)

// ConsumeOutcome is the result of an OTP consumption attempt.
type ConsumeOutcome int

const (
	// ConsumeNotFound means no live record matched the phone/code pair.
	ConsumeNotFound ConsumeOutcome = iota
	// ConsumeExpired means the code matched but its window had passed;
	// the record has been deleted.
	ConsumeExpired
	// ConsumeValid means the code matched within its window; the record
	// has been deleted.
	ConsumeValid
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrPhoneAlreadyRegistered if a
	// user with the same phone number already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByPhone retrieves the user matching the normalized phone number.
	// It returns ErrUserNotFound if no such user exists.
	FindByPhone(ctx context.Context, phoneNumber string) (*entity.User, error)

	// FindByID retrieves the user matching the given ID.
	// It returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// OTPRepository abstracts the store of live one-time passcodes.
// The store guarantees at most one live code per phone number.
type OTPRepository interface {
	// Issue replaces any existing record for the phone number with a fresh
	// code and returns the new record.
	Issue(ctx context.Context, phoneNumber string) (*entity.OTPCode, error)

	// Consume looks up the record matching the phone/code pair exactly.
	// A match is deleted whether valid or expired; a mismatch leaves the
	// live record untouched and reports ConsumeNotFound.
	Consume(ctx context.Context, phoneNumber, code string) (ConsumeOutcome, error)

	// Purge removes any records for the phone number. Idempotent.
	Purge(ctx context.Context, phoneNumber string) error
}

// SMSSender delivers a one-time passcode to a phone number.
// Delivery failure is an expected outcome, reported as false, never an error.
type SMSSender interface {
	SendOTP(ctx context.Context, phoneNumber, code string) bool
}

// TokenGenerator mints a signed access token for a verified user.
type TokenGenerator interface {
	GenerateToken(userID uint, phoneNumber string) (string, error)
}

// authUsecase sequences identity lookup, OTP issuance, delivery and
// verification into the authentication protocol. It holds no state across
// calls; everything lives in the injected repositories.
type authUsecase struct {
	users  UserRepository
	otps   OTPRepository
	sms    SMSSender
	tokens TokenGenerator
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, otps OTPRepository, sms SMSSender, tokens TokenGenerator) *authUsecase {
	return &authUsecase{
		users:  users,
		otps:   otps,
		sms:    sms,
		tokens: tokens,
	}
}

// issueAndSend creates a fresh code for the phone number and attempts
// delivery. Issuance and delivery are deliberately decoupled: the code is
// persisted before the send attempt, and a failed send does not roll it
// back. Callers surface the send result as otpSent so the client can retry
// delivery without re-issuing.
func (u *authUsecase) issueAndSend(ctx context.Context, phoneNumber string) (bool, error) {
	otp, err := u.otps.Issue(ctx, phoneNumber)
	if err != nil {
		return false, fmt.Errorf("failed to issue otp: %w", err)
	}
	return u.sms.SendOTP(ctx, phoneNumber, otp.Code), nil
}

// CheckPhone reports whether a user exists for the phone number. If one
// does, a fresh OTP is issued (replacing any prior code, consumed or not)
// and delivery is attempted.
func (u *authUsecase) CheckPhone(ctx context.Context, phoneNumber string) (exists, otpSent bool, err error) {
	_, err = u.users.FindByPhone(ctx, phoneNumber)
	if errors.Is(err, ErrUserNotFound) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}

	sent, err := u.issueAndSend(ctx, phoneNumber)
	if err != nil {
		return true, false, err
	}
	return true, sent, nil
}

// Register creates a new user for the phone number and sends the first OTP.
// A duplicate phone number fails with ErrPhoneAlreadyRegistered before any
// issuance or delivery happens.
func (u *authUsecase) Register(ctx context.Context, phoneNumber, fullName string) (otpSent bool, err error) {
	user := &entity.User{
		PhoneNumber: phoneNumber,
		FullName:    fullName,
		Role:        entity.DefaultRole,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return false, err
	}
	return u.issueAndSend(ctx, phoneNumber)
}

// Verify consumes the OTP for the phone number. On a valid code it mints a
// signed access token bound to the verified user. Wrong and expired codes
// both come back as ok=false; the caller is not told which it was.
func (u *authUsecase) Verify(ctx context.Context, phoneNumber, code string) (token string, ok bool, err error) {
	outcome, err := u.otps.Consume(ctx, phoneNumber, code)
	if err != nil {
		return "", false, fmt.Errorf("failed to consume otp: %w", err)
	}

	switch outcome {
	case ConsumeValid:
		// fall through below
	case ConsumeExpired:
		slog.Info("otp verification failed", "phone", phoneNumber, "reason", "expired")
		return "", false, nil
	default:
		slog.Info("otp verification failed", "phone", phoneNumber, "reason", "not found")
		return "", false, nil
	}

	user, err := u.users.FindByPhone(ctx, phoneNumber)
	if err != nil {
		return "", false, fmt.Errorf("failed to load verified user: %w", err)
	}

	token, err = u.tokens.GenerateToken(user.ID, user.PhoneNumber)
	if err != nil {
		return "", false, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, true, nil
}

// Profile returns the user for the given ID.
func (u *authUsecase) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}
