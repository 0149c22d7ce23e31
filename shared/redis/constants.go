// shared/redis/constants.go
package redis

// Key constants for cached tracker data. The hash-tag braces keep every key
// for one team on the same cluster slot.
const (
	// TeamLeaderboardKeyPrefix holds the serialized rank-ordered leaderboard
	// for a team: lb_team:{teamID}
	TeamLeaderboardKeyPrefix = "lb_team:{%d}:"
)
