package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix = "ideaboard:user:%d"
	ideaKeyPrefix = "ideaboard:idea:%d"
)

// Cache TTLs per entity. Ideas churn more than profiles.
const (
	UserTTL = 5 * time.Minute
	IdeaTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func IdeaKey(ideaID uint) string {
	return fmt.Sprintf(ideaKeyPrefix, ideaID)
}

// Invalidate removes a key from the cache (best effort).
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateIdea(ctx context.Context, ideaID uint) {
	Invalidate(ctx, IdeaKey(ideaID))
}
