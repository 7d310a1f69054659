// Command seed populates the database with a demo account, profile and a
// week of progress history for local development.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/zoro-coderr/aihealthcoach/internal/config"
	"github.com/zoro-coderr/aihealthcoach/internal/domain"
	"github.com/zoro-coderr/aihealthcoach/internal/engine"
	"github.com/zoro-coderr/aihealthcoach/internal/repository"
	repoMongo "github.com/zoro-coderr/aihealthcoach/internal/repository/mongo"
)

const (
	demoEmail    = "demo@aihealthcoach.local"
	demoPassword = "demo-password-123"
)

func main() {
	log.Println("Seeding demo data...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	dbClient, err := repoMongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := repoMongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	userRepo := repoMongo.NewMongoUserRepository(appDB)
	progressRepo := repoMongo.NewMongoProgressRepository(appDB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Idempotent on the demo email: bail out if the account already exists.
	if _, err := userRepo.GetByEmail(ctx, demoEmail); err == nil {
		log.Printf("Demo user %s already exists, nothing to do.", demoEmail)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("FATAL: Failed to check for demo user: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("FATAL: Failed to hash demo password: %v", err)
	}

	user := &domain.User{
		Name:         "Demo User",
		Email:        demoEmail,
		PasswordHash: string(hashedPassword),
	}
	userID, err := userRepo.Create(ctx, user)
	if err != nil {
		log.Fatalf("FATAL: Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %s (%s)", demoEmail, userID.Hex())

	profile := &domain.Profile{
		Age:           28,
		Weight:        75,
		Height:        175,
		Gender:        domain.GenderMale,
		ActivityLevel: domain.ActivityModeratelyActive,
		FitnessGoals:  []string{domain.GoalWeightLoss},
		Preferences: domain.Preferences{
			WorkoutTypes:        []string{"running", "strength"},
			Duration:            45,
			DaysPerWeek:         4,
			DietaryRestrictions: []string{domain.RestrictionGlutenFree},
		},
	}
	if err := userRepo.UpdateProfile(ctx, userID, profile); err != nil {
		log.Fatalf("FATAL: Failed to set demo profile: %v", err)
	}

	targets := engine.ComputeTargets(profile)
	log.Printf("Demo targets: %d kcal (P %dg / C %dg / F %dg)",
		targets.DailyCalories, targets.Macros.Protein, targets.Macros.Carbs, targets.Macros.Fats)

	// One week of history, oldest first; the last entry is yesterday with a
	// missed workout and a calorie overshoot so the coach endpoints have
	// something to react to.
	now := time.Now().UTC()
	entries := []domain.ProgressEntry{
		{WorkoutCompleted: true, CaloriesConsumed: 2200},
		{WorkoutCompleted: true, CaloriesConsumed: 2350},
		{WorkoutCompleted: false, CaloriesConsumed: 2500},
		{WorkoutCompleted: true, CaloriesConsumed: 2100},
		{WorkoutCompleted: true, CaloriesConsumed: 2250},
		{WorkoutCompleted: true, CaloriesConsumed: 2300},
		{WorkoutCompleted: false, CaloriesConsumed: float64(targets.DailyCalories) * 1.3},
	}
	for i := range entries {
		entries[i].UserID = userID
		entries[i].TargetCalories = float64(targets.DailyCalories)
		entries[i].Date = now.AddDate(0, 0, -(len(entries) - i))
		if _, err := progressRepo.Create(ctx, &entries[i]); err != nil {
			log.Fatalf("FATAL: Failed to create progress entry %d: %v", i, err)
		}
	}
	log.Printf("Created %d progress entries.", len(entries))

	log.Println("Seeding complete.")
}
