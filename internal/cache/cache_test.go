package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			fetches++
			dest.ID = 1
			dest.Text = "first post"
			return nil
		}
	}

	var got payload
	require.NoError(t, Aside(ctx, HomeFeedKey, &got, HomeFeedTTL, fetch(&got)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "first post", got.Text)

	// Second read is served from the cache, fetch does not run again.
	var again payload
	require.NoError(t, Aside(ctx, HomeFeedKey, &again, HomeFeedTTL, fetch(&again)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, got, again)
}

func TestAside_TTLExpiry(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var got payload
	fetch := func() error {
		fetches++
		got = payload{ID: uint(fetches), Text: "v"}
		return nil
	}

	require.NoError(t, Aside(ctx, HomeFeedKey, &got, HomeFeedTTL, fetch))
	mr.FastForward(HomeFeedTTL + time.Second)
	require.NoError(t, Aside(ctx, HomeFeedKey, &got, HomeFeedTTL, fetch))
	assert.Equal(t, 2, fetches)
}

func TestInvalidateHomeFeed(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, HomeFeedKey, payload{ID: 1}, HomeFeedTTL))

	var got payload
	found, err := GetJSON(ctx, HomeFeedKey, &got)
	require.NoError(t, err)
	require.True(t, found)

	InvalidateHomeFeed(ctx)

	found, err = GetJSON(ctx, HomeFeedKey, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClear(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, HomeFeedKey, payload{ID: 1}, HomeFeedTTL))
	require.NoError(t, SetJSON(ctx, PostKey(1), payload{ID: 1}, PostTTL))

	require.NoError(t, Clear(ctx))

	var got payload
	found, err := GetJSON(ctx, HomeFeedKey, &got)
	require.NoError(t, err)
	assert.False(t, found)
	found, err = GetJSON(ctx, PostKey(1), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetJSON_NilClientIsMiss(t *testing.T) {
	SetClient(nil)
	var got payload
	found, err := GetJSON(context.Background(), PostKey(1), &got)
	assert.NoError(t, err)
	assert.False(t, found)
	// Writes are no-ops without a client.
	assert.NoError(t, SetJSON(context.Background(), PostKey(1), payload{}, PostTTL))
}
