// tracker/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/octofit/go-services/shared/api"
	"github.com/octofit/go-services/shared/config"
	mongodbu "github.com/octofit/go-services/shared/mongodb"
	redisu "github.com/octofit/go-services/shared/redis"
	trackerapi "github.com/octofit/go-services/tracker/api"
	"github.com/octofit/go-services/tracker/cache"
	"github.com/octofit/go-services/tracker/service"
	"github.com/octofit/go-services/tracker/store"
)

func main() {
	// --- 1. Load Configuration ---
	cfg, err := config.LoadTrackerServiceConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- 2. Connect to MongoDB ---
	mongoClient, err := mongodbu.NewClient(cfg.MongoDBConnStr, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err = mongoClient.Disconnect(context.Background()); err != nil {
			log.Fatalf("Failed to disconnect from MongoDB: %v", err)
		}
		log.Println("Disconnected from MongoDB.")
	}()

	// Email uniqueness is enforced by the storage engine, not by
	// read-then-write checks in the service layer.
	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer indexCancel()
	if err := mongoClient.EnsureUniqueIndex(indexCtx, config.UsersCollection, "email"); err != nil {
		log.Fatalf("Failed to ensure unique email index: %v", err)
	}

	// --- 3. Connect to Redis (leaderboard cache; optional) ---
	var leaderboardCache *cache.LeaderboardCache
	redisClient, err := redisu.NewRedisClusterClient(cfg.RedisAddrs, cfg.RedisPassword)
	if err != nil {
		log.Printf("WARN: Redis unavailable, leaderboard cache disabled: %v", err)
	} else {
		leaderboardCache = cache.NewLeaderboardCache(redisClient, cfg.LeaderboardCacheTTL)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("WARN: Error closing Redis client: %v", err)
			}
		}()
	}

	// --- 4. Initialize Data Stores (passing MongoDB collections) ---
	userStore := store.NewMongoUserStore(mongoClient.Collection(config.UsersCollection))
	teamStore := store.NewMongoTeamStore(mongoClient.Collection(config.TeamsCollection))
	activityStore := store.NewMongoActivityStore(mongoClient.Collection(config.ActivitiesCollection))
	leaderboardStore := store.NewMongoLeaderboardStore(mongoClient.Collection(config.LeaderboardCollection))
	workoutStore := store.NewMongoWorkoutStore(mongoClient.Collection(config.WorkoutsCollection))

	// --- 5. Initialize Business Logic Services ---
	userService := service.NewUserService(userStore)
	teamService := service.NewTeamService(teamStore, userStore)
	activityService := service.NewActivityService(activityStore)
	leaderboardService := service.NewLeaderboardService(leaderboardStore, leaderboardCache)
	workoutService := service.NewWorkoutService(workoutStore)

	// --- 6. Initialize API Handlers ---
	handlers := trackerapi.NewTrackerAPIHandlers(userService, teamService, activityService, leaderboardService, workoutService)

	// --- 7. Setup HTTP Server and Register Routes ---
	baseServer := api.NewBaseServer(cfg.ListenAddr, log.Default())
	handlers.RegisterRoutes(baseServer.Router)
	baseServer.Router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// --- 8. Start HTTP Server ---
	go func() {
		log.Printf("HTTP server starting on %s...", cfg.ListenAddr)
		if err := baseServer.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed to start: %v", err)
		}
	}()

	// --- 9. Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := baseServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("HTTP server graceful shutdown failed: %v", err)
	}
	log.Println("Server gracefully stopped.")
}
