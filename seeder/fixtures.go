// seeder/fixtures.go
package main

import "github.com/octofit/go-services/shared/models"

func intPtr(v int) *int { return &v }

// Fixture roster: 2 teams, 12 users (6 per team), 12 activities, 12
// leaderboard entries with externally assigned ranks, 6 workouts.

var seedTeams = []models.Team{
	{ID: 1, Name: "Harbor Striders", Description: "Early-morning running crew from the waterfront"},
	{ID: 2, Name: "Summit Circuit", Description: "Strength and interval training group"},
}

var seedUsers = []models.User{
	// Harbor Striders
	{ID: 1, Name: "Mara Voss", Email: "mara.voss@octofit.test", TeamID: intPtr(1), Role: "member"},
	{ID: 2, Name: "Deniz Aydin", Email: "deniz.aydin@octofit.test", TeamID: intPtr(1), Role: "member"},
	{ID: 3, Name: "Theo Lindqvist", Email: "theo.lindqvist@octofit.test", TeamID: intPtr(1), Role: "member"},
	{ID: 4, Name: "Priya Raman", Email: "priya.raman@octofit.test", TeamID: intPtr(1), Role: "member"},
	{ID: 5, Name: "Jonas Keller", Email: "jonas.keller@octofit.test", TeamID: intPtr(1), Role: "member"},
	{ID: 6, Name: "Alba Ferrer", Email: "alba.ferrer@octofit.test", TeamID: intPtr(1), Role: "member"},
	// Summit Circuit
	{ID: 7, Name: "Ryo Nakamura", Email: "ryo.nakamura@octofit.test", TeamID: intPtr(2), Role: "member"},
	{ID: 8, Name: "Ines Duarte", Email: "ines.duarte@octofit.test", TeamID: intPtr(2), Role: "member"},
	{ID: 9, Name: "Callum Frost", Email: "callum.frost@octofit.test", TeamID: intPtr(2), Role: "member"},
	{ID: 10, Name: "Zofia Nowak", Email: "zofia.nowak@octofit.test", TeamID: intPtr(2), Role: "member"},
	{ID: 11, Name: "Ethan Brooks", Email: "ethan.brooks@octofit.test", TeamID: intPtr(2), Role: "member"},
	{ID: 12, Name: "Leila Haddad", Email: "leila.haddad@octofit.test", TeamID: intPtr(2), Role: "member"},
}

var seedActivities = []models.Activity{
	// Harbor Striders
	{ID: 1, UserID: 1, ActivityType: "Running", Duration: 45, Distance: 8.5, Calories: 640, Date: "2026-08-24"},
	{ID: 2, UserID: 2, ActivityType: "Cycling", Duration: 60, Distance: 24.0, Calories: 780, Date: "2026-08-24"},
	{ID: 3, UserID: 3, ActivityType: "Swimming", Duration: 30, Distance: 1.8, Calories: 410, Date: "2026-08-25"},
	{ID: 4, UserID: 4, ActivityType: "Weight Training", Duration: 90, Distance: 0.0, Calories: 580, Date: "2026-08-25"},
	{ID: 5, UserID: 5, ActivityType: "Running", Duration: 50, Distance: 10.2, Calories: 730, Date: "2026-08-26"},
	{ID: 6, UserID: 6, ActivityType: "Cycling", Duration: 40, Distance: 16.5, Calories: 520, Date: "2026-08-26"},
	// Summit Circuit
	{ID: 7, UserID: 7, ActivityType: "Running", Duration: 55, Distance: 12.0, Calories: 820, Date: "2026-08-24"},
	{ID: 8, UserID: 8, ActivityType: "Boxing", Duration: 75, Distance: 0.0, Calories: 900, Date: "2026-08-24"},
	{ID: 9, UserID: 9, ActivityType: "Weight Training", Duration: 70, Distance: 0.0, Calories: 540, Date: "2026-08-25"},
	{ID: 10, UserID: 10, ActivityType: "Running", Duration: 35, Distance: 7.4, Calories: 490, Date: "2026-08-25"},
	{ID: 11, UserID: 11, ActivityType: "Swimming", Duration: 60, Distance: 3.2, Calories: 750, Date: "2026-08-26"},
	{ID: 12, UserID: 12, ActivityType: "Cycling", Duration: 45, Distance: 19.0, Calories: 610, Date: "2026-08-26"},
}

var seedLeaderboard = []models.Leaderboard{
	// Harbor Striders
	{ID: 1, UserID: 1, TeamID: 1, TotalPoints: 640, Rank: 6},
	{ID: 2, UserID: 2, TeamID: 1, TotalPoints: 780, Rank: 3},
	{ID: 3, UserID: 3, TeamID: 1, TotalPoints: 410, Rank: 12},
	{ID: 4, UserID: 4, TeamID: 1, TotalPoints: 580, Rank: 8},
	{ID: 5, UserID: 5, TeamID: 1, TotalPoints: 730, Rank: 5},
	{ID: 6, UserID: 6, TeamID: 1, TotalPoints: 520, Rank: 10},
	// Summit Circuit
	{ID: 7, UserID: 7, TeamID: 2, TotalPoints: 820, Rank: 2},
	{ID: 8, UserID: 8, TeamID: 2, TotalPoints: 900, Rank: 1},
	{ID: 9, UserID: 9, TeamID: 2, TotalPoints: 540, Rank: 9},
	{ID: 10, UserID: 10, TeamID: 2, TotalPoints: 490, Rank: 11},
	{ID: 11, UserID: 11, TeamID: 2, TotalPoints: 750, Rank: 4},
	{ID: 12, UserID: 12, TeamID: 2, TotalPoints: 610, Rank: 7},
}

var seedWorkouts = []models.Workout{
	{ID: 1, Name: "Full Body Circuit", Description: "High-intensity strength circuit", Difficulty: models.DifficultyHard, Duration: 45},
	{ID: 2, Name: "Tempo Intervals", Description: "Track intervals at threshold pace", Difficulty: models.DifficultyMedium, Duration: 30},
	{ID: 3, Name: "Long Steady Run", Description: "Aerobic base building run", Difficulty: models.DifficultyMedium, Duration: 60},
	{ID: 4, Name: "Hill Repeats", Description: "Short, steep climbs at max effort", Difficulty: models.DifficultyHard, Duration: 40},
	{ID: 5, Name: "Mobility Flow", Description: "Stretching and joint mobility session", Difficulty: models.DifficultyEasy, Duration: 25},
	{ID: 6, Name: "Sprint Pyramid", Description: "Ascending and descending sprint sets", Difficulty: models.DifficultyHard, Duration: 20},
}
