// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobpath_backend/internal/feature/auth/domain/entity"
	"jobpath_backend/internal/feature/auth/domain/validate"
	"jobpath_backend/internal/feature/auth/transport/http/dto"
	"jobpath_backend/internal/feature/auth/usecase"
	jwtmw "jobpath_backend/internal/platform/jwt"
)

// AuthUsecase defines the usecase for the authentication protocol.
// Following Go convention, the interface is defined by the consumer (handler)
// rather than the provider (usecase).
type AuthUsecase interface {
	// CheckPhone reports whether a user exists for the phone number and,
	// if so, issues and sends a fresh OTP.
	CheckPhone(ctx context.Context, phoneNumber string) (exists, otpSent bool, err error)
	// Register creates a new user and sends the first OTP.
	Register(ctx context.Context, phoneNumber, fullName string) (otpSent bool, err error)
	// Verify consumes the OTP and mints an access token on success.
	Verify(ctx context.Context, phoneNumber, code string) (token string, ok bool, err error)
	// Profile returns the user for the given ID.
	Profile(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler handles HTTP requests for the authentication protocol.
// It binds JSON requests, runs the boundary validators, and maps usecase
// outcomes to the response envelope.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
// Constructor for dependency injection.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// serverError writes the uniform 500 envelope. Infrastructure faults are
// never surfaced verbatim to the caller.
func serverError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, dto.ErrorResp{Success: false, Error: "server error"})
}

// CheckPhone handles POST /api/auth/check-phone.
//   - 400 when the phone number is missing or malformed
//   - {exists:false} for unknown numbers, with no OTP side effects
//   - {exists:true, otpSent} for known numbers, after issue + send
func (h *AuthHandler) CheckPhone(c *gin.Context) {
	var req dto.CheckPhoneReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("check-phone validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Success: false, Error: "invalid phone number"})
		return
	}
	phone, err := validate.Phone(req.PhoneNumber)
	if err != nil {
		slog.Warn("check-phone validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Success: false, Error: "invalid phone number"})
		return
	}

	exists, otpSent, err := h.auth.CheckPhone(c.Request.Context(), phone)
	if err != nil {
		slog.Error("check-phone failed", "error", err, "phone", phone)
		serverError(c)
		return
	}

	resp := dto.CheckPhoneResp{Success: true, Exists: exists}
	if exists {
		resp.OtpSent = &otpSent
	}
	slog.Info("check-phone handled", "phone", phone, "exists", exists, "otp_sent", otpSent)
	c.JSON(http.StatusOK, resp)
}

// Register handles POST /api/auth/register-send-otp.
//   - 400 when the phone number or full name is malformed
//   - 409 when the phone number is already registered (no OTP side effects)
//   - {success:true, otpSent} after create + issue + send
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Success: false, Error: "invalid request"})
		return
	}
	phone, err := validate.Phone(req.PhoneNumber)
	if err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Success: false, Error: "invalid phone number"})
		return
	}
	fullName, err := validate.FullName(req.FullName)
	if err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Success: false, Error: "invalid full name"})
		return
	}

	otpSent, err := h.auth.Register(c.Request.Context(), phone, fullName)
	if err != nil {
		if errors.Is(err, usecase.ErrPhoneAlreadyRegistered) {
			slog.Warn("register conflict", "phone", phone, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorResp{Success: false, Error: "phone number already registered"})
			return
		}
		slog.Error("register failed", "error", err, "phone", phone)
		serverError(c)
		return
	}

	slog.Info("user registered", "phone", phone, "otp_sent", otpSent)
	c.JSON(http.StatusOK, dto.RegisterResp{Success: true, OtpSent: otpSent})
}

// Verify handles POST /api/auth/verify-otp.
//   - 400 when the phone number or code is malformed
//   - {success:false} for a wrong or expired code (no distinction surfaced)
//   - {success:true, token} for a valid code
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("verify-otp validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Success: false, Error: "invalid phone or code"})
		return
	}
	phone, err := validate.Phone(req.PhoneNumber)
	if err != nil {
		slog.Warn("verify-otp validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Success: false, Error: "invalid phone or code"})
		return
	}
	if err := validate.Code(req.OTP); err != nil {
		slog.Warn("verify-otp validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Success: false, Error: "invalid phone or code"})
		return
	}

	token, ok, err := h.auth.Verify(c.Request.Context(), phone, req.OTP)
	if err != nil {
		slog.Error("verify-otp failed", "error", err, "phone", phone)
		serverError(c)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, dto.VerifyResp{Success: false})
		return
	}

	slog.Info("otp verified", "phone", phone)
	c.JSON(http.StatusOK, dto.VerifyResp{Success: true, Token: token})
}

// Me handles GET /api/me. It requires the JWT middleware to have stored the
// authenticated user's ID in the context.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, dto.ErrorResp{Success: false, Error: "unauthorized"})
		return
	}

	user, err := h.auth.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResp{Success: false, Error: "user not found"})
			return
		}
		slog.Error("profile lookup failed", "error", err, "user_id", userID)
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResp{
		Success: true,
		User: dto.UserResp{
			ID:          user.ID,
			PhoneNumber: user.PhoneNumber,
			FullName:    user.FullName,
			Role:        user.Role,
		},
	})
}
