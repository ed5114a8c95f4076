package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	revokedKeyPrefix = "fitgoals-revoked||"
	// used when a token carries no expiry
	defaultRevocationTTL = 24 * time.Hour
)

type Checker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

var _ Checker = (*RevocationList)(nil)

// RevocationList keeps logged out tokens in redis until they would expire anyway.
type RevocationList struct {
	redisClient *redis.Client
	now         func() time.Time
}

func NewRevocationList(redisClient *redis.Client) *RevocationList {
	return &RevocationList{
		redisClient: redisClient,
		now:         time.Now,
	}
}

func (rl *RevocationList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultRevocationTTL
	}
	return rl.redisClient.Set(ctx, revokedKeyPrefix+tokenID, rl.now().Unix(), ttl).Err()
}

func (rl *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := rl.redisClient.Get(ctx, revokedKeyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
