package repository

import (
	"context"

	"peakform/coach-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProgramRepository defines the interface for interacting with program data.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Program, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Program, error)
	Update(ctx context.Context, program *domain.Program) error
	Delete(ctx context.Context, id, coachID primitive.ObjectID) error
}

// SessionRepository defines the interface for interacting with training
// session data.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.TrainingSession) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSession, error)
	GetByProgramID(ctx context.Context, programID primitive.ObjectID) ([]domain.TrainingSession, error)
	Update(ctx context.Context, session *domain.TrainingSession) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByProgramID(ctx context.Context, programID primitive.ObjectID) error
}

// ExerciseRepository defines the interface for interacting with exercise
// data (the per-session prescriptions, not the library catalog).
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetBySessionID(ctx context.Context, sessionID primitive.ObjectID) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteBySessionID(ctx context.Context, sessionID primitive.ObjectID) error
}

// AssignmentRepository defines the interface for interacting with
// program assignment data.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.ProgramAssignment) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgramAssignment, error)
	GetActiveByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.ProgramAssignment, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.ProgramAssignment, error)
	HasActiveAssignment(ctx context.Context, athleteID, programID primitive.ObjectID) (bool, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) error
}

// LibraryRepository exposes the read-only exercise catalog.
type LibraryRepository interface {
	GetAll(ctx context.Context) ([]domain.LibraryExercise, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.LibraryExercise, error)
}
