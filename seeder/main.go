// seeder/main.go
package main

import (
	"context"
	"log"
	"time"

	"github.com/octofit/go-services/shared/config"
	mongodbu "github.com/octofit/go-services/shared/mongodb"
	"github.com/octofit/go-services/tracker/store"
)

// The seeder resets the database to a known fixture roster. It wipes
// the five collections, recreates the unique email index, and inserts
// the fixture records through the same stores the tracker uses.
func main() {
	cfg, err := config.LoadTrackerServiceConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userStore := store.NewMongoUserStore(mongoClient.Collection(config.UsersCollection))
	teamStore := store.NewMongoTeamStore(mongoClient.Collection(config.TeamsCollection))
	activityStore := store.NewMongoActivityStore(mongoClient.Collection(config.ActivitiesCollection))
	leaderboardStore := store.NewMongoLeaderboardStore(mongoClient.Collection(config.LeaderboardCollection))
	workoutStore := store.NewMongoWorkoutStore(mongoClient.Collection(config.WorkoutsCollection))

	log.Println("Clearing existing collections...")
	if err := userStore.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}
	if err := teamStore.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear teams: %v", err)
	}
	if err := activityStore.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear activities: %v", err)
	}
	if err := leaderboardStore.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear leaderboard: %v", err)
	}
	if err := workoutStore.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear workouts: %v", err)
	}

	if err := mongoClient.EnsureUniqueIndex(ctx, config.UsersCollection, "email"); err != nil {
		log.Fatalf("Failed to create unique email index: %v", err)
	}

	for i := range seedTeams {
		if err := teamStore.Insert(ctx, &seedTeams[i]); err != nil {
			log.Fatalf("Failed to insert team %d: %v", seedTeams[i].ID, err)
		}
	}
	log.Printf("Inserted %d teams.", len(seedTeams))

	for i := range seedUsers {
		if err := userStore.Insert(ctx, &seedUsers[i]); err != nil {
			log.Fatalf("Failed to insert user %d: %v", seedUsers[i].ID, err)
		}
	}
	log.Printf("Inserted %d users.", len(seedUsers))

	for i := range seedActivities {
		if err := activityStore.Insert(ctx, &seedActivities[i]); err != nil {
			log.Fatalf("Failed to insert activity %d: %v", seedActivities[i].ID, err)
		}
	}
	log.Printf("Inserted %d activities.", len(seedActivities))

	for i := range seedLeaderboard {
		if err := leaderboardStore.Insert(ctx, &seedLeaderboard[i]); err != nil {
			log.Fatalf("Failed to insert leaderboard entry %d: %v", seedLeaderboard[i].ID, err)
		}
	}
	log.Printf("Inserted %d leaderboard entries.", len(seedLeaderboard))

	for i := range seedWorkouts {
		if err := workoutStore.Insert(ctx, &seedWorkouts[i]); err != nil {
			log.Fatalf("Failed to insert workout %d: %v", seedWorkouts[i].ID, err)
		}
	}
	log.Printf("Inserted %d workouts.", len(seedWorkouts))

	log.Println("Database seeding complete.")
}
