// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer. Presence is checked with Gin binding tags; format rules
// (phone shape, code shape, name script) live in the validate package and
// run in the handlers.
package dto

// CheckPhoneReq represents the request body for /api/auth/check-phone.
type CheckPhoneReq struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// RegisterReq represents the request body for /api/auth/register-send-otp.
type RegisterReq struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	FullName    string `json:"fullName" binding:"required"`
}

// VerifyReq represents the request body for /api/auth/verify-otp.
type VerifyReq struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
}
