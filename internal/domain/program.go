// internal/domain/program.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramType enumerates the kinds of training a program targets.
type ProgramType string

const (
	ProgramCardio      ProgramType = "Cardio"
	ProgramHypertrophy ProgramType = "Hypertrophie"
	ProgramStrength    ProgramType = "Force"
	ProgramEndurance   ProgramType = "Endurance"
	ProgramMixed       ProgramType = "Mixte"
)

// ProgramLevel enumerates who a program is written for.
type ProgramLevel string

const (
	LevelBeginner     ProgramLevel = "Débutant"
	LevelIntermediate ProgramLevel = "Intermédiaire"
	LevelAdvanced     ProgramLevel = "Avancé"
)

// ProgramStatus tracks whether a program is visible to assigned athletes.
type ProgramStatus string

const (
	StatusDraft     ProgramStatus = "draft"
	StatusPublished ProgramStatus = "published"
)

// Program is a multi-week training plan authored by a coach.
// Invariant: the owner referenced by CoachID must have IsCoach = true.
type Program struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID         primitive.ObjectID `bson:"coachId" json:"coachId"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description" json:"description"`
	Type            ProgramType        `bson:"type" json:"type"`
	Level           ProgramLevel       `bson:"level" json:"level"`
	DurationWeeks   int                `bson:"durationWeeks" json:"durationWeeks"`
	SessionsPerWeek int                `bson:"sessionsPerWeek" json:"sessionsPerWeek"`
	Status          ProgramStatus      `bson:"status" json:"status"`

	// ImageURL distinguishes "absent" (nil) from "explicitly cleared"
	// (pointer to empty string) at the persistence boundary.
	ImageURL *string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
