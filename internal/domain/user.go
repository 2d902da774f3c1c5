package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the system, either a coach or an athlete.
// The IsCoach flag is the only role distinction: coaches author programs,
// athletes consume the programs assigned to them.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // unique
	PasswordHash string             `bson:"passwordHash" json:"-"`
	IsCoach      bool               `bson:"isCoach" json:"isCoach"`

	// Profile fields, all optional.
	Bio   string `bson:"bio,omitempty" json:"bio,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`

	// Notification preferences.
	NotifyEmail bool `bson:"notifyEmail" json:"notifyEmail"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
