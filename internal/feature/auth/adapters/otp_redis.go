package adapters

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"jobpath_backend/internal/feature/auth/domain/entity"
	"jobpath_backend/internal/feature/auth/usecase"
)

const (
	// defaultOTPExpiry is the validity window of an issued code.
	defaultOTPExpiry = 5 * time.Minute

	// recordGrace keeps an expired-but-unconsumed record around past its
	// window so a late verification attempt still observes "expired"
	// rather than "not found". Expiry itself is decided from the stored
	// timestamp, not the key TTL.
	recordGrace = 24 * time.Hour
)

// consumeScript atomically compares the submitted code against the live
// record and deletes the record on any match, expired or not. A mismatch
// leaves the record untouched. Returns -1 (no match), 0 (matched, expired)
// or 1 (matched, valid).
var consumeScript = redis.NewScript(`
local code = redis.call('HGET', KEYS[1], 'code')
if not code or code ~= ARGV[1] then
  return -1
end
local exp = redis.call('HGET', KEYS[1], 'expires_at')
redis.call('DEL', KEYS[1])
if tonumber(exp) < tonumber(ARGV[2]) then
  return 0
end
return 1
`)

// OTPRedis implements usecase.OTPRepository using Redis.
// Each phone number maps to a single hash, so issuing a code is an atomic
// overwrite and the at-most-one-live-code invariant holds under concurrent
// requests.
type OTPRedis struct {
	client *redis.Client
	prefix string
	expiry time.Duration

	// now is swapped out in tests to simulate the passage of time.
	now func() time.Time
}

// Compile-time check that OTPRedis implements OTPRepository.
var _ usecase.OTPRepository = (*OTPRedis)(nil)

// NewOTPRedis creates a new OTPRedis instance.
// A non-positive expiry falls back to the default 5-minute window.
func NewOTPRedis(client *redis.Client, prefix string, expiry time.Duration) *OTPRedis {
	if prefix == "" {
		prefix = "otp"
	}
	if expiry <= 0 {
		expiry = defaultOTPExpiry
	}
	return &OTPRedis{
		client: client,
		prefix: prefix,
		expiry: expiry,
		now:    time.Now,
	}
}

// otpKey returns the Redis key for a phone number's live code.
func (r *OTPRedis) otpKey(phoneNumber string) string {
	return fmt.Sprintf("%s:%s", r.prefix, phoneNumber)
}

// generateCode returns a uniformly random 6-digit code (000000-999999,
// zero-padded).
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Issue replaces any existing record for the phone number with a fresh code.
// The DEL/HSET/EXPIRE sequence runs in a MULTI/EXEC transaction so a
// concurrent Consume never observes a half-written record.
func (r *OTPRedis) Issue(ctx context.Context, phoneNumber string) (*entity.OTPCode, error) {
	code, err := generateCode()
	if err != nil {
		return nil, err
	}

	now := r.now()
	otp := &entity.OTPCode{
		PhoneNumber: phoneNumber,
		Code:        code,
		CreatedAt:   now,
		ExpiresAt:   now.Add(r.expiry),
	}

	key := r.otpKey(phoneNumber)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		"code", otp.Code,
		"created_at", otp.CreatedAt.Unix(),
		"expires_at", otp.ExpiresAt.Unix(),
	)
	pipe.Expire(ctx, key, r.expiry+recordGrace)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to store otp: %w", err)
	}

	return otp, nil
}

// Consume attempts to redeem the code for the phone number.
// The compare-and-delete runs server-side, so two concurrent attempts with
// the correct code resolve to exactly one ConsumeValid.
func (r *OTPRedis) Consume(ctx context.Context, phoneNumber, code string) (usecase.ConsumeOutcome, error) {
	res, err := consumeScript.Run(ctx, r.client,
		[]string{r.otpKey(phoneNumber)},
		code, strconv.FormatInt(r.now().Unix(), 10),
	).Int()
	if err != nil {
		return usecase.ConsumeNotFound, fmt.Errorf("failed to consume otp: %w", err)
	}

	switch res {
	case 1:
		return usecase.ConsumeValid, nil
	case 0:
		return usecase.ConsumeExpired, nil
	default:
		return usecase.ConsumeNotFound, nil
	}
}

// Purge removes any record for the phone number. Idempotent.
func (r *OTPRedis) Purge(ctx context.Context, phoneNumber string) error {
	return r.client.Del(ctx, r.otpKey(phoneNumber)).Err()
}
