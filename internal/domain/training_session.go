// internal/domain/training_session.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionType enumerates workout session categories.
type SessionType string

const (
	SessionPush     SessionType = "Push"
	SessionPull     SessionType = "Pull"
	SessionLegs     SessionType = "Legs"
	SessionFullBody SessionType = "Full Body"
	SessionUpper    SessionType = "Upper"
	SessionLower    SessionType = "Lower"
	SessionCardio   SessionType = "Cardio"
	SessionRecovery SessionType = "Recovery"
)

// TrainingSession is a single scheduled workout within a Program.
// Its effective owner is the parent program's CoachID; every mutation
// goes through that chain.
type TrainingSession struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProgramID  primitive.ObjectID `bson:"programId" json:"programId"`
	Name       string             `bson:"name" json:"name"`
	WeekNumber int                `bson:"weekNumber" json:"weekNumber"`
	DayNumber  int                `bson:"dayNumber" json:"dayNumber"`
	Type       SessionType        `bson:"type" json:"type"`
	TargetRPE  int                `bson:"targetRpe" json:"targetRpe"` // 1-10
	Duration   int                `bson:"duration" json:"duration"`   // minutes, 15-180
	Order      int                `bson:"order" json:"order"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
