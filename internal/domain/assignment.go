package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramAssignment grants an athlete visibility into a coach's program.
// It is read-only from the athlete's side; only the owning coach creates
// or deactivates it.
type ProgramAssignment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProgramID primitive.ObjectID `bson:"programId" json:"programId"`
	CoachID   primitive.ObjectID `bson:"coachId" json:"coachId"` // denormalized for auth queries
	AthleteID primitive.ObjectID `bson:"athleteId" json:"athleteId"`
	StartDate time.Time          `bson:"startDate" json:"startDate"`
	EndDate   *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
