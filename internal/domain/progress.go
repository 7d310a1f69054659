package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressEntry is one day's logged outcome for a user. The recommendation
// engine only ever looks at the most recent entry; the rest of the history
// is kept for the user's own review.
type ProgressEntry struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID `bson:"userId" json:"userId"`
	Date             time.Time          `bson:"date" json:"date"`
	WorkoutCompleted bool               `bson:"workoutCompleted" json:"workoutCompleted"`
	CaloriesConsumed float64            `bson:"caloriesConsumed" json:"caloriesConsumed"`
	TargetCalories   float64            `bson:"targetCalories" json:"targetCalories"`
	Weight           *float64           `bson:"weight,omitempty" json:"weight,omitempty"` // optional weigh-in, kg
	Notes            string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}
