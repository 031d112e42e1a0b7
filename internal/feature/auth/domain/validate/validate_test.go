package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		normalized string
		wantErr    bool
	}{
		{"plain local number", "09123456789", "09123456789", false},
		{"formatted with dashes", "0912-345-6789", "09123456789", false},
		{"formatted with spaces", "0912 345 67 89", "09123456789", false},
		{"too short", "0912345678", "", true},
		{"too long", "091234567890", "", true},
		{"wrong prefix", "08123456789", "", true},
		{"letters only", "abcdefghijk", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Phone(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.normalized, got)
		})
	}
}

func TestCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"six digits", "482913", false},
		{"all zeros", "000000", false},
		{"five digits", "48291", true},
		{"seven digits", "4829131", true},
		{"with letter", "48291a", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Code(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCode)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFullName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		trimmed string
		wantErr bool
	}{
		{"persian name", "علی رضایی", "علی رضایی", false},
		{"surrounding whitespace trimmed", "  سارا محمدی  ", "سارا محمدی", false},
		{"single letter", "ع", "", true},
		{"latin letters", "Ali Rezaei", "", true},
		{"ascii digits", "علی 123", "", true},
		{"too long", strings.Repeat("ع", 101), "", true},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FullName(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFullName)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.trimmed, got)
		})
	}
}
