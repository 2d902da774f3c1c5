package service

import (
	"context"
	"errors"

	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrSessionCreationFailed = errors.New("failed to create training session")

// SessionInput carries the full shape required to create a session.
type SessionInput struct {
	Name       string
	WeekNumber int
	DayNumber  int
	Type       domain.SessionType
	TargetRPE  int
	Duration   int
	Order      int
	Notes      string
}

// SessionUpdate carries partial-update fields; nil means "leave as is".
type SessionUpdate struct {
	Name       *string
	WeekNumber *int
	DayNumber  *int
	Type       *domain.SessionType
	TargetRPE  *int
	Duration   *int
	Order      *int
	Notes      *string
}

// SessionService owns training session CRUD under a program.
type SessionService interface {
	CreateSession(ctx context.Context, coachID, programID primitive.ObjectID, input SessionInput) (*domain.TrainingSession, error)
	GetSession(ctx context.Context, sessionID primitive.ObjectID) (*domain.TrainingSession, error)
	ListSessions(ctx context.Context, programID primitive.ObjectID) ([]domain.TrainingSession, error)
	UpdateSession(ctx context.Context, coachID, sessionID primitive.ObjectID, update SessionUpdate) (*domain.TrainingSession, error)
	DeleteSession(ctx context.Context, coachID, sessionID primitive.ObjectID) error
}

type sessionService struct {
	sessionRepo  repository.SessionRepository
	exerciseRepo repository.ExerciseRepository
	verifier     *OwnershipVerifier
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	exerciseRepo repository.ExerciseRepository,
	verifier *OwnershipVerifier,
) SessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		exerciseRepo: exerciseRepo,
		verifier:     verifier,
	}
}

// CreateSession inserts a session under a program the coach owns.
func (s *sessionService) CreateSession(ctx context.Context, coachID, programID primitive.ObjectID, input SessionInput) (*domain.TrainingSession, error) {
	if _, err := s.verifier.Program(ctx, coachID, programID); err != nil {
		return nil, err
	}

	session := &domain.TrainingSession{
		ProgramID:  programID,
		Name:       input.Name,
		WeekNumber: input.WeekNumber,
		DayNumber:  input.DayNumber,
		Type:       input.Type,
		TargetRPE:  input.TargetRPE,
		Duration:   input.Duration,
		Order:      input.Order,
		Notes:      input.Notes,
	}

	sessionID, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, ErrSessionCreationFailed
	}
	session.ID = sessionID
	return session, nil
}

// GetSession returns a session. Reads are open to any authenticated
// user; only mutations walk the ownership chain.
func (s *sessionService) GetSession(ctx context.Context, sessionID primitive.ObjectID) (*domain.TrainingSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// ListSessions returns a program's sessions in schedule order.
func (s *sessionService) ListSessions(ctx context.Context, programID primitive.ObjectID) ([]domain.TrainingSession, error) {
	return s.sessionRepo.GetByProgramID(ctx, programID)
}

// UpdateSession applies partial-update semantics after verifying the
// caller owns the parent program.
func (s *sessionService) UpdateSession(ctx context.Context, coachID, sessionID primitive.ObjectID, update SessionUpdate) (*domain.TrainingSession, error) {
	session, _, err := s.verifier.Session(ctx, coachID, sessionID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		session.Name = *update.Name
	}
	if update.WeekNumber != nil {
		session.WeekNumber = *update.WeekNumber
	}
	if update.DayNumber != nil {
		session.DayNumber = *update.DayNumber
	}
	if update.Type != nil {
		session.Type = *update.Type
	}
	if update.TargetRPE != nil {
		session.TargetRPE = *update.TargetRPE
	}
	if update.Duration != nil {
		session.Duration = *update.Duration
	}
	if update.Order != nil {
		session.Order = *update.Order
	}
	if update.Notes != nil {
		session.Notes = *update.Notes
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// DeleteSession removes a session and its exercises.
func (s *sessionService) DeleteSession(ctx context.Context, coachID, sessionID primitive.ObjectID) error {
	if _, _, err := s.verifier.Session(ctx, coachID, sessionID); err != nil {
		return err
	}
	if err := s.exerciseRepo.DeleteBySessionID(ctx, sessionID); err != nil {
		return err
	}
	err := s.sessionRepo.Delete(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSessionNotFound
	}
	return err
}
