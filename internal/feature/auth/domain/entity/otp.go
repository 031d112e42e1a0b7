package entity

import "time"

// OTPCode represents a live one-time passcode issued for a phone number.
// At most one code exists per phone number; issuing a new one replaces
// any previous record.
type OTPCode struct {
	PhoneNumber string    `json:"phone_number"` // Phone number being authenticated
	Code        string    `json:"code"`         // 6-digit numeric code
	CreatedAt   time.Time `json:"created_at"`   // Issuance time
	ExpiresAt   time.Time `json:"expires_at"`   // CreatedAt + expiry window
}

// IsExpired returns true if the code has passed its expiration time.
func (o *OTPCode) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
