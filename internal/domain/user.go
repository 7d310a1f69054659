package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender type for the profile's gender field
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel type for the profile's activity level field
type ActivityLevel string

// The four supported activity levels. Anything else falls back to the
// sedentary factor in the nutrition calculator.
const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
)

// Well-known fitness goal values.
const (
	GoalWeightLoss = "weight_loss"
	GoalMuscleGain = "muscle_gain"
	GoalEndurance  = "endurance"
	GoalStrength   = "strength"
)

// Well-known dietary restriction values.
const (
	RestrictionVegan      = "vegan"
	RestrictionVegetarian = "vegetarian"
	RestrictionGlutenFree = "gluten_free"
)

// Preferences holds the user's workout and diet preferences.
type Preferences struct {
	WorkoutTypes        []string `bson:"workoutTypes,omitempty" json:"workoutTypes,omitempty"`
	Duration            int      `bson:"duration,omitempty" json:"duration,omitempty"` // minutes per session
	DaysPerWeek         int      `bson:"daysPerWeek,omitempty" json:"daysPerWeek,omitempty"`
	DietaryRestrictions []string `bson:"dietaryRestrictions,omitempty" json:"dietaryRestrictions,omitempty"`
}

// Profile is the biometric and goal data the personalization engine runs on.
// Numeric ranges (age 13-120, weight 30-300 kg, height 100-250 cm) are
// enforced by request validation at the API layer; the engine itself stays
// permissive and treats missing collections as empty.
type Profile struct {
	Age           int           `bson:"age" json:"age"`
	Weight        float64       `bson:"weight" json:"weight"` // kg
	Height        float64       `bson:"height" json:"height"` // cm
	Gender        Gender        `bson:"gender" json:"gender"`
	ActivityLevel ActivityLevel `bson:"activityLevel" json:"activityLevel"`
	FitnessGoals  []string      `bson:"fitnessGoals,omitempty" json:"fitnessGoals,omitempty"`
	Preferences   Preferences   `bson:"preferences,omitempty" json:"preferences"`
}

// HasGoal reports whether the profile lists the given fitness goal.
// Safe to call on a nil profile or a profile without goals.
func (p *Profile) HasGoal(goal string) bool {
	if p == nil {
		return false
	}
	for _, g := range p.FitnessGoals {
		if g == goal {
			return true
		}
	}
	return false
}

// HasDietaryRestriction reports whether the profile lists the given
// dietary restriction. Safe to call on a nil profile.
func (p *Profile) HasDietaryRestriction(restriction string) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Preferences.DietaryRestrictions {
		if r == restriction {
			return true
		}
	}
	return false
}

// User represents an account in the system. The profile is optional until
// the user fills it in; coach endpoints require it to be set.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Profile      *Profile           `bson:"profile,omitempty" json:"profile,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
