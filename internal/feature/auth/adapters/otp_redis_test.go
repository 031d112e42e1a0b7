package adapters

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobpath_backend/internal/feature/auth/usecase"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client
}

func TestNewOTPRedis_Defaults(t *testing.T) {
	client := setupTestRedis(t)

	repo := NewOTPRedis(client, "", 0)

	assert.Equal(t, "otp", repo.prefix)
	assert.Equal(t, defaultOTPExpiry, repo.expiry)
}

func TestOTPRedis_Issue(t *testing.T) {
	t.Run("stores a six digit code with a five minute window", func(t *testing.T) {
		client := setupTestRedis(t)
		repo := NewOTPRedis(client, "otp", 5*time.Minute)

		otp, err := repo.Issue(context.Background(), "09123456789")

		require.NoError(t, err)
		assert.Equal(t, "09123456789", otp.PhoneNumber)
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), otp.Code)
		assert.Equal(t, otp.CreatedAt.Add(5*time.Minute), otp.ExpiresAt)

		stored, err := client.HGet(context.Background(), repo.otpKey("09123456789"), "code").Result()
		require.NoError(t, err)
		assert.Equal(t, otp.Code, stored)
	})

	t.Run("re-issuance invalidates the prior code", func(t *testing.T) {
		client := setupTestRedis(t)
		repo := NewOTPRedis(client, "otp", 5*time.Minute)
		ctx := context.Background()

		first, err := repo.Issue(ctx, "09123456789")
		require.NoError(t, err)
		second, err := repo.Issue(ctx, "09123456789")
		require.NoError(t, err)

		// The old code is gone even if it differs from the new one.
		if first.Code != second.Code {
			outcome, err := repo.Consume(ctx, "09123456789", first.Code)
			require.NoError(t, err)
			assert.Equal(t, usecase.ConsumeNotFound, outcome)
		}

		// The fresh code is live.
		outcome, err := repo.Consume(ctx, "09123456789", second.Code)
		require.NoError(t, err)
		assert.Equal(t, usecase.ConsumeValid, outcome)
	})
}

func TestOTPRedis_Consume(t *testing.T) {
	ctx := context.Background()

	t.Run("valid code consumed exactly once", func(t *testing.T) {
		client := setupTestRedis(t)
		repo := NewOTPRedis(client, "otp", 5*time.Minute)

		otp, err := repo.Issue(ctx, "09123456789")
		require.NoError(t, err)

		outcome, err := repo.Consume(ctx, "09123456789", otp.Code)
		require.NoError(t, err)
		assert.Equal(t, usecase.ConsumeValid, outcome)

		// Second attempt with the same code finds nothing.
		outcome, err = repo.Consume(ctx, "09123456789", otp.Code)
		require.NoError(t, err)
		assert.Equal(t, usecase.ConsumeNotFound, outcome)
	})

	t.Run("wrong code leaves the live record intact", func(t *testing.T) {
		client := setupTestRedis(t)
		repo := NewOTPRedis(client, "otp", 5*time.Minute)

		otp, err := repo.Issue(ctx, "09123456789")
		require.NoError(t, err)

		wrong := "000000"
		if otp.Code == wrong {
			wrong = "999999"
		}
		outcome, err := repo.Consume(ctx, "09123456789", wrong)
		require.NoError(t, err)
		assert.Equal(t, usecase.ConsumeNotFound, outcome)

		// The correct code still works afterwards.
		outcome, err = repo.Consume(ctx, "09123456789", otp.Code)
		require.NoError(t, err)
		assert.Equal(t, usecase.ConsumeValid, outcome)
	})

	t.Run("expired code is reported once then gone", func(t *testing.T) {
		client := setupTestRedis(t)
		repo := NewOTPRedis(client, "otp", 5*time.Minute)

		otp, err := repo.Issue(ctx, "09111111111")
		require.NoError(t, err)

		// Move the adapter's clock past the expiry window.
		repo.now = func() time.Time { return otp.ExpiresAt.Add(time.Minute) }

		outcome, err := repo.Consume(ctx, "09111111111", otp.Code)
		require.NoError(t, err)
		assert.Equal(t, usecase.ConsumeExpired, outcome)

		// Expiry detection deleted the record.
		outcome, err = repo.Consume(ctx, "09111111111", otp.Code)
		require.NoError(t, err)
		assert.Equal(t, usecase.ConsumeNotFound, outcome)
	})

	t.Run("fresh issue after expiry is independent of the old code", func(t *testing.T) {
		client := setupTestRedis(t)
		repo := NewOTPRedis(client, "otp", 5*time.Minute)

		old, err := repo.Issue(ctx, "09111111111")
		require.NoError(t, err)

		repo.now = func() time.Time { return old.ExpiresAt.Add(time.Minute) }

		fresh, err := repo.Issue(ctx, "09111111111")
		require.NoError(t, err)

		outcome, err := repo.Consume(ctx, "09111111111", fresh.Code)
		require.NoError(t, err)
		assert.Equal(t, usecase.ConsumeValid, outcome)
	})

	t.Run("unknown phone reports not found", func(t *testing.T) {
		client := setupTestRedis(t)
		repo := NewOTPRedis(client, "otp", 5*time.Minute)

		outcome, err := repo.Consume(ctx, "09999999999", "123456")
		require.NoError(t, err)
		assert.Equal(t, usecase.ConsumeNotFound, outcome)
	})
}

func TestOTPRedis_Purge(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t)
	repo := NewOTPRedis(client, "otp", 5*time.Minute)

	otp, err := repo.Issue(ctx, "09123456789")
	require.NoError(t, err)

	require.NoError(t, repo.Purge(ctx, "09123456789"))

	outcome, err := repo.Consume(ctx, "09123456789", otp.Code)
	require.NoError(t, err)
	assert.Equal(t, usecase.ConsumeNotFound, outcome)

	// Purging again is a no-op.
	assert.NoError(t, repo.Purge(ctx, "09123456789"))
}
