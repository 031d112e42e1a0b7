// Package limosms provides a client for the LimoSMS pattern-message API,
// used to deliver one-time passcodes over SMS.
package limosms

import (
	"os"
	"strconv"
	"time"
)

// Mode selects whether sends actually reach the provider.
type Mode string

const (
	// ModeLive sends real pattern messages through the LimoSMS API.
	ModeLive Mode = "live"
	// ModeSimulated skips the network call and reports success. For local
	// development without a provider account.
	ModeSimulated Mode = "simulated"
)

// Config holds configuration for the LimoSMS API client.
type Config struct {
	APIKey    string        // API key sent in the ApiKey header
	URL       string        // Pattern-message endpoint URL
	PatternID int           // Provider-side message template ID
	Timeout   time.Duration // HTTP request timeout
	Mode      Mode          // live or simulated
}

// LoadConfig loads LimoSMS configuration from environment variables.
func LoadConfig() Config {
	url := os.Getenv("LIMOSMS_API_URL")
	if url == "" {
		url = "https://api.limosms.com/api/sendpatternmessage"
	}

	patternID, err := strconv.Atoi(os.Getenv("LIMOSMS_PATTERN_ID"))
	if err != nil || patternID <= 0 {
		patternID = 1992
	}

	mode := Mode(os.Getenv("SMS_MODE"))
	if mode != ModeSimulated {
		mode = ModeLive
	}

	return Config{
		APIKey:    os.Getenv("LIMOSMS_API_KEY"),
		URL:       url,
		PatternID: patternID,
		Timeout:   20 * time.Second,
		Mode:      mode,
	}
}
