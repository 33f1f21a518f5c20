package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix = "post:%d"
	HomeFeedKey   = "feed:home"
)

const (
	// HomeFeedTTL keeps the first home-feed page briefly; stale reads for
	// this interval are acceptable, mutations invalidate eagerly anyway.
	HomeFeedTTL = 20 * time.Second
	PostTTL     = 30 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

// InvalidateHomeFeed drops the cached home-feed page. Called on every post
// create/update/delete so the feed never serves a deleted or edited post for
// longer than one request.
func InvalidateHomeFeed(ctx context.Context) {
	Invalidate(ctx, HomeFeedKey)
}

// Clear flushes the whole cache database.
func Clear(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.FlushDB(ctx).Err()
}
