package service

import (
	"context"
	"errors"

	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shared sentinel errors for ownership checks across resources.
var (
	ErrProgramNotFound  = errors.New("program not found")
	ErrSessionNotFound  = errors.New("training session not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrAccessDenied     = errors.New("access denied")
)

// OwnershipVerifier resolves a resource's ownership chain
// (Exercise → TrainingSession → Program) and checks the acting coach
// against the program's owner. Every session/exercise mutation funnels
// through here instead of re-implementing the chain per handler.
type OwnershipVerifier struct {
	programRepo  repository.ProgramRepository
	sessionRepo  repository.SessionRepository
	exerciseRepo repository.ExerciseRepository
}

// NewOwnershipVerifier wires the verifier onto the repositories it walks.
func NewOwnershipVerifier(
	programRepo repository.ProgramRepository,
	sessionRepo repository.SessionRepository,
	exerciseRepo repository.ExerciseRepository,
) *OwnershipVerifier {
	return &OwnershipVerifier{
		programRepo:  programRepo,
		sessionRepo:  sessionRepo,
		exerciseRepo: exerciseRepo,
	}
}

// Program loads a program and verifies coachID owns it.
func (v *OwnershipVerifier) Program(ctx context.Context, coachID, programID primitive.ObjectID) (*domain.Program, error) {
	program, err := v.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if program.CoachID != coachID {
		return nil, ErrAccessDenied
	}
	return program, nil
}

// Session loads a session and verifies coachID owns its parent program.
func (v *OwnershipVerifier) Session(ctx context.Context, coachID, sessionID primitive.ObjectID) (*domain.TrainingSession, *domain.Program, error) {
	session, err := v.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, err
	}
	program, err := v.Program(ctx, coachID, session.ProgramID)
	if err != nil {
		return nil, nil, err
	}
	return session, program, nil
}

// Exercise loads an exercise and verifies coachID owns it through the
// full parent chain.
func (v *OwnershipVerifier) Exercise(ctx context.Context, coachID, exerciseID primitive.ObjectID) (*domain.Exercise, *domain.TrainingSession, error) {
	exercise, err := v.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrExerciseNotFound
		}
		return nil, nil, err
	}
	session, _, err := v.Session(ctx, coachID, exercise.SessionID)
	if err != nil {
		return nil, nil, err
	}
	return exercise, session, nil
}
