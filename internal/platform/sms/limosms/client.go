package limosms

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"jobpath_backend/internal/feature/auth/usecase"
)

// nonDigit matches characters stripped from mobile numbers before sending.
var nonDigit = regexp.MustCompile(`\D`)

// SMSGateway is the SMSSender implementation backed by the LimoSMS
// pattern-message API. Delivery failures are reported as false, never as
// errors: the caller decides whether to retry, this client does not.
type SMSGateway struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that SMSGateway implements SMSSender.
var _ usecase.SMSSender = (*SMSGateway)(nil)

// NewSMSGateway creates a new SMSGateway instance with the given config and
// HTTP client. The client must carry the request timeout.
func NewSMSGateway(cfg Config, client *http.Client) *SMSGateway {
	return &SMSGateway{cfg: cfg, client: client}
}

// patternRequest is the LimoSMS pattern-message payload. The provider
// substitutes ReplaceToken values into the template identified by OtpId.
type patternRequest struct {
	OtpID        int      `json:"OtpId"`
	ReplaceToken []string `json:"ReplaceToken"`
	MobileNumber string   `json:"MobileNumber"`
}

// patternResponse is the provider's result envelope.
type patternResponse struct {
	Success bool   `json:"Success"`
	Message string `json:"Message"`
}

// SendOTP delivers the code to the phone number as a pattern message.
func (g *SMSGateway) SendOTP(ctx context.Context, phoneNumber, code string) bool {
	return g.sendPattern(ctx, phoneNumber, []string{code})
}

// sendPattern issues one pattern-message call. Network errors, timeouts,
// non-2xx statuses and provider-reported failures all come back as false.
func (g *SMSGateway) sendPattern(ctx context.Context, mobileNumber string, replaceTokens []string) bool {
	if g.cfg.Mode == ModeSimulated {
		slog.Info("sms send skipped (simulated mode)", "phone", mobileNumber)
		return true
	}
	if g.cfg.APIKey == "" {
		slog.Error("LIMOSMS_API_KEY is not set, sms not sent", "phone", mobileNumber)
		return false
	}

	// The provider expects the local format with a leading zero.
	mobile := nonDigit.ReplaceAllString(mobileNumber, "")
	if !strings.HasPrefix(mobile, "0") {
		mobile = "0" + mobile
	}

	payload, err := json.Marshal(patternRequest{
		OtpID:        g.cfg.PatternID,
		ReplaceToken: replaceTokens,
		MobileNumber: mobile,
	})
	if err != nil {
		slog.Error("failed to marshal sms payload", "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		slog.Error("failed to build sms request", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("ApiKey", g.cfg.APIKey)

	res, err := g.client.Do(req)
	if err != nil {
		slog.Error("sms request failed", "phone", mobile, "error", err)
		return false
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// Decode errors are folded into the failure path below.
	var body patternResponse
	_ = json.NewDecoder(res.Body).Decode(&body)

	if res.StatusCode >= 400 || !body.Success {
		slog.Error("sms send rejected", "phone", mobile, "status", res.StatusCode, "message", body.Message)
		return false
	}

	slog.Info("sms sent", "phone", mobile)
	return true
}
