package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	feedPageKeyPrefix     = "feed:all:page:%d"
	feedPageScanPattern   = "feed:all:page:*"
	profileStatsKeyPrefix = "profile:%d:stats"
)

const (
	// FeedTTL is short: the all-posts feed is the hottest read and the
	// most write-sensitive.
	FeedTTL = 1 * time.Minute
	// ProfileStatsTTL covers follower/following counts on profile pages.
	ProfileStatsTTL = 5 * time.Minute
)

// FeedPageKey is the cache key for one page of the unauthenticated all-posts feed.
func FeedPageKey(page int) string {
	return fmt.Sprintf(feedPageKeyPrefix, page)
}

// ProfileStatsKey is the cache key for a user's profile counters.
func ProfileStatsKey(userID uint) string {
	return fmt.Sprintf(profileStatsKeyPrefix, userID)
}

// Invalidate removes a single key, best-effort.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateProfileStats drops the cached counters for a user.
func InvalidateProfileStats(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfileStatsKey(userID))
}

// InvalidateFeed drops every cached all-posts feed page. Page keys are
// enumerated with SCAN so a growing feed never leaves stale tail pages.
func InvalidateFeed(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, feedPageScanPattern, 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
