package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisBlacklist(t *testing.T) (*RedisTokenBlacklist, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), config.Redis{Address: mr.Addr()}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewRedisTokenBlacklist(client, logger.Nop()), mr
}

func TestRedisTokenBlacklist_AddOnce(t *testing.T) {
	ctx := context.Background()
	blacklist, mr := newTestRedisBlacklist(t)

	require.NoError(t, blacklist.Add(ctx, "jti-1", time.Now().Add(time.Hour)))
	assert.ErrorIs(t, blacklist.Add(ctx, "jti-1", time.Now().Add(time.Hour)), ErrTokenBlacklisted)

	assert.True(t, mr.Exists(blacklistKeyPrefix+"jti-1"))
	ttl := mr.TTL(blacklistKeyPrefix + "jti-1")
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestRedisTokenBlacklist_IsBlacklisted(t *testing.T) {
	ctx := context.Background()
	blacklist, mr := newTestRedisBlacklist(t)

	blacklisted, err := blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, blacklist.Add(ctx, "jti-1", time.Now().Add(time.Minute)))

	blacklisted, err = blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	// entries disappear together with the token
	mr.FastForward(2 * time.Minute)
	blacklisted, err = blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestRedisTokenBlacklist_AlreadyExpired(t *testing.T) {
	blacklist, mr := newTestRedisBlacklist(t)

	require.NoError(t, blacklist.Add(context.Background(), "old", time.Now().Add(-time.Hour)))
	assert.Equal(t, time.Second, mr.TTL(blacklistKeyPrefix+"old"))
}

func TestRedisTokenBlacklist_Unavailable(t *testing.T) {
	ctx := context.Background()
	blacklist, mr := newTestRedisBlacklist(t)
	mr.Close()

	err := blacklist.Add(ctx, "jti-1", time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrBlacklistUnavailable)

	_, err = blacklist.IsBlacklisted(ctx, "jti-1")
	assert.ErrorIs(t, err, ErrBlacklistUnavailable)
}

func TestNewRedisClient_PingFails(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(context.Background(), config.Redis{Address: addr}, logger.Nop())
	assert.Error(t, err)
}
