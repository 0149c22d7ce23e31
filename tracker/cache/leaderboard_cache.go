// tracker/cache/leaderboard_cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/octofit/go-services/shared/models"
	redisu "github.com/octofit/go-services/shared/redis"
	"github.com/redis/go-redis/v9"
)

// LeaderboardCache keeps the rank-ordered leaderboard of each team warm in
// Redis so the by_team query does not hit MongoDB on every poll. Entries
// expire after the configured TTL; writes through the leaderboard service
// invalidate the affected teams eagerly.
type LeaderboardCache struct {
	redisClient *redis.ClusterClient
	ttl         time.Duration
}

// NewLeaderboardCache creates a new LeaderboardCache instance.
func NewLeaderboardCache(redisClient *redis.ClusterClient, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// GetTeam returns the cached entries for a team and whether the key was warm.
// A cold key or any Redis failure reports (nil, false); the caller falls back
// to the store.
func (lc *LeaderboardCache) GetTeam(ctx context.Context, teamID int) ([]models.Leaderboard, bool) {
	key := fmt.Sprintf(redisu.TeamLeaderboardKeyPrefix, teamID)
	payload, err := lc.redisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("WARN: Failed to read cached leaderboard for team %d: %v", teamID, err)
		return nil, false
	}

	var entries []models.Leaderboard
	if err := json.Unmarshal(payload, &entries); err != nil {
		log.Printf("WARN: Discarding unreadable cached leaderboard for team %d: %v", teamID, err)
		return nil, false
	}
	return entries, true
}

// SetTeam stores a team's entries under the configured TTL. Failures are
// logged and swallowed; the cache is best-effort.
func (lc *LeaderboardCache) SetTeam(ctx context.Context, teamID int, entries []models.Leaderboard) {
	payload, err := json.Marshal(entries)
	if err != nil {
		log.Printf("WARN: Failed to marshal leaderboard for team %d: %v", teamID, err)
		return
	}

	key := fmt.Sprintf(redisu.TeamLeaderboardKeyPrefix, teamID)
	if err := lc.redisClient.Set(ctx, key, payload, lc.ttl).Err(); err != nil {
		log.Printf("WARN: Failed to cache leaderboard for team %d: %v", teamID, err)
	}
}

// InvalidateTeam drops a team's cached entries after a write.
func (lc *LeaderboardCache) InvalidateTeam(ctx context.Context, teamID int) {
	key := fmt.Sprintf(redisu.TeamLeaderboardKeyPrefix, teamID)
	if err := lc.redisClient.Del(ctx, key).Err(); err != nil {
		log.Printf("WARN: Failed to invalidate cached leaderboard for team %d: %v", teamID, err)
	}
}
