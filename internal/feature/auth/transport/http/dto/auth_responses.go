package dto

// CheckPhoneResp is the success response for /api/auth/check-phone.
// OtpSent is only present when a user exists and a send was attempted.
type CheckPhoneResp struct {
	Success bool  `json:"success"`
	Exists  bool  `json:"exists"`
	OtpSent *bool `json:"otpSent,omitempty"`
}

// RegisterResp is the success response for /api/auth/register-send-otp.
type RegisterResp struct {
	Success bool `json:"success"`
	OtpSent bool `json:"otpSent"`
}

// VerifyResp is the response for /api/auth/verify-otp. A wrong or expired
// code yields Success=false with no further detail; a valid code yields
// Success=true and the minted access token.
type VerifyResp struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

// UserResp is the user payload returned by /api/me.
type UserResp struct {
	ID          uint   `json:"id"`
	PhoneNumber string `json:"phoneNumber"`
	FullName    string `json:"fullName,omitempty"`
	Role        string `json:"role"`
}

// ProfileResp is the success response for /api/me.
type ProfileResp struct {
	Success bool     `json:"success"`
	User    UserResp `json:"user"`
}

// ErrorResp is the uniform failure envelope.
type ErrorResp struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
