// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is one movement prescription within a TrainingSession.
// RPE and RestSeconds are pointers so "not prescribed" survives the
// round trip to storage instead of collapsing to zero.
type Exercise struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID primitive.ObjectID `bson:"sessionId" json:"sessionId"`
	Name      string             `bson:"name" json:"name"`
	Sets      int                `bson:"sets" json:"sets"` // 1-10
	Reps      int                `bson:"reps" json:"reps"` // 1-50
	RPE       *int               `bson:"rpe,omitempty" json:"rpe,omitempty"`                 // 1-10
	RestSec   *int               `bson:"restSeconds,omitempty" json:"restSeconds,omitempty"` // 0-600
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LibraryExercise is a read-only catalog entry. Adding one to a session
// copies its values into a new Exercise; there is no live reference back.
type LibraryExercise struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Category     string             `bson:"category" json:"category"`
	Muscles      []string           `bson:"muscles,omitempty" json:"muscles,omitempty"`
	Equipment    string             `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Instructions string             `bson:"instructions,omitempty" json:"instructions,omitempty"`
}
