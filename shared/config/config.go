// shared/config/config.go
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Collection names as persisted in MongoDB. The layout is fixed for
// compatibility with existing octofit databases and seed tooling.
const (
	UsersCollection       = "users"
	TeamsCollection       = "teams"
	ActivitiesCollection  = "activities"
	LeaderboardCollection = "leaderboard"
	WorkoutsCollection    = "workouts"
)

// TrackerServiceConfig holds configuration for the tracker service.
type TrackerServiceConfig struct {
	ListenAddr          string        // Address for the HTTP server to listen on (e.g., ":8080")
	ServicePort         int           // Numeric port extracted from ListenAddr
	MongoDBConnStr      string        // MongoDB connection string
	MongoDBDatabase     string        // MongoDB database name (e.g., "octofit_db")
	RedisAddrs          []string      // Redis cluster addresses for the leaderboard cache
	RedisPassword       string        // Redis password for authentication
	LeaderboardCacheTTL time.Duration // How long cached team leaderboards stay warm
}

// LoadTrackerServiceConfig loads configuration from environment variables,
// applying defaults suitable for local development.
func LoadTrackerServiceConfig() (*TrackerServiceConfig, error) {
	cfg := &TrackerServiceConfig{
		ListenAddr:      os.Getenv("TRACKER_SERVICE_LISTEN_ADDR"),
		MongoDBConnStr:  os.Getenv("MONGODB_CONN_STR"),
		MongoDBDatabase: os.Getenv("MONGODB_DATABASE"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.MongoDBConnStr == "" {
		cfg.MongoDBConnStr = "mongodb://localhost:27017"
	}
	if cfg.MongoDBDatabase == "" {
		cfg.MongoDBDatabase = "octofit_db"
	}

	redisAddrsStr := os.Getenv("REDIS_ADDRS")
	if redisAddrsStr == "" {
		cfg.RedisAddrs = []string{"localhost:6379"}
	} else {
		for _, addr := range strings.Split(redisAddrsStr, ",") {
			cfg.RedisAddrs = append(cfg.RedisAddrs, strings.TrimSpace(addr))
		}
	}

	var err error
	cfg.LeaderboardCacheTTL, err = getDuration("LEADERBOARD_CACHE_TTL", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.ServicePort, err = extractPort(cfg.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to extract port from TRACKER_SERVICE_LISTEN_ADDR '%s': %w", cfg.ListenAddr, err)
	}

	return cfg, nil
}

// Helper function to parse duration from environment variable
func getDuration(envKey string, defaultVal time.Duration) (time.Duration, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s: %w", envKey, err)
	}
	return d, nil
}

// extractPort extracts the numeric port from a listen address (e.g., ":8080" -> 8080, "0.0.0.0:8080" -> 8080)
func extractPort(listenAddr string) (int, error) {
	_, portStr, err := net.SplitHostPort(listenAddr)
	if err != nil {
		if strings.HasPrefix(listenAddr, ":") {
			portStr = strings.TrimPrefix(listenAddr, ":")
		} else {
			return 0, fmt.Errorf("invalid ListenAddr format for port extraction: %w", err)
		}
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number '%s': %w", portStr, err)
	}
	return port, nil
}
