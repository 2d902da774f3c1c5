package service

import (
	"context"
	"errors"

	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrExerciseCreationFailed = errors.New("failed to create exercise")
	ErrLibraryEntryNotFound   = errors.New("library exercise not found")
)

// ExerciseInput carries the full shape required to create an exercise.
// LibraryID, when set, seeds name and notes from the catalog entry by
// value copy; the stored exercise keeps no reference back.
type ExerciseInput struct {
	Name      string
	Sets      int
	Reps      int
	RPE       *int
	RestSec   *int
	Notes     string
	Order     int
	LibraryID *primitive.ObjectID
}

// ExerciseUpdate carries partial-update fields; nil means "leave as is".
type ExerciseUpdate struct {
	Name    *string
	Sets    *int
	Reps    *int
	RPE     *int
	RestSec *int
	Notes   *string
	Order   *int
}

// ExerciseService owns exercise CRUD under a session, plus the
// read-only library catalog.
type ExerciseService interface {
	CreateExercise(ctx context.Context, coachID, sessionID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error)
	ListExercises(ctx context.Context, sessionID primitive.ObjectID) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, coachID, exerciseID primitive.ObjectID, update ExerciseUpdate) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, coachID, exerciseID primitive.ObjectID) error
	ListLibrary(ctx context.Context) ([]domain.LibraryExercise, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	libraryRepo  repository.LibraryRepository
	verifier     *OwnershipVerifier
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(
	exerciseRepo repository.ExerciseRepository,
	libraryRepo repository.LibraryRepository,
	verifier *OwnershipVerifier,
) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		libraryRepo:  libraryRepo,
		verifier:     verifier,
	}
}

// CreateExercise inserts an exercise under a session whose parent
// program the coach owns.
func (s *exerciseService) CreateExercise(ctx context.Context, coachID, sessionID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error) {
	if _, _, err := s.verifier.Session(ctx, coachID, sessionID); err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{
		SessionID: sessionID,
		Name:      input.Name,
		Sets:      input.Sets,
		Reps:      input.Reps,
		RPE:       input.RPE,
		RestSec:   input.RestSec,
		Notes:     input.Notes,
		Order:     input.Order,
	}

	if input.LibraryID != nil {
		entry, err := s.libraryRepo.GetByID(ctx, *input.LibraryID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrLibraryEntryNotFound
			}
			return nil, err
		}
		// One-time value copy; explicit fields in the request win.
		if exercise.Name == "" {
			exercise.Name = entry.Name
		}
		if exercise.Notes == "" {
			exercise.Notes = entry.Instructions
		}
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, ErrExerciseCreationFailed
	}
	exercise.ID = exerciseID
	return exercise, nil
}

// ListExercises returns a session's exercises ascending by order. Open
// to any authenticated user.
func (s *exerciseService) ListExercises(ctx context.Context, sessionID primitive.ObjectID) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetBySessionID(ctx, sessionID)
}

// UpdateExercise applies partial-update semantics after walking the
// Exercise → Session → Program ownership chain.
func (s *exerciseService) UpdateExercise(ctx context.Context, coachID, exerciseID primitive.ObjectID, update ExerciseUpdate) (*domain.Exercise, error) {
	exercise, _, err := s.verifier.Exercise(ctx, coachID, exerciseID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		exercise.Name = *update.Name
	}
	if update.Sets != nil {
		exercise.Sets = *update.Sets
	}
	if update.Reps != nil {
		exercise.Reps = *update.Reps
	}
	if update.RPE != nil {
		exercise.RPE = update.RPE
	}
	if update.RestSec != nil {
		exercise.RestSec = update.RestSec
	}
	if update.Notes != nil {
		exercise.Notes = *update.Notes
	}
	if update.Order != nil {
		exercise.Order = *update.Order
	}

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// DeleteExercise removes an exercise after the ownership chain check.
func (s *exerciseService) DeleteExercise(ctx context.Context, coachID, exerciseID primitive.ObjectID) error {
	if _, _, err := s.verifier.Exercise(ctx, coachID, exerciseID); err != nil {
		return err
	}
	err := s.exerciseRepo.Delete(ctx, exerciseID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrExerciseNotFound
	}
	return err
}

// ListLibrary returns the read-only exercise catalog.
func (s *exerciseService) ListLibrary(ctx context.Context) ([]domain.LibraryExercise, error) {
	return s.libraryRepo.GetAll(ctx)
}
