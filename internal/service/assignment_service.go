package service

import (
	"context"
	"errors"
	"time"

	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrAthleteNotFound    = errors.New("athlete user not found")
	ErrAthleteIsCoach     = errors.New("target user is a coach, not an athlete")
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// AssignmentWithProgram pairs an assignment with its resolved program,
// the shape the athlete-facing list returns.
type AssignmentWithProgram struct {
	Assignment domain.ProgramAssignment
	Program    *domain.Program
}

// AssignmentService links athletes to programs on behalf of coaches.
type AssignmentService interface {
	AssignProgram(ctx context.Context, coachID, programID, athleteID primitive.ObjectID, startDate time.Time, endDate *time.Time) (*domain.ProgramAssignment, error)
	ListForUser(ctx context.Context, userID primitive.ObjectID, isCoach bool) ([]AssignmentWithProgram, error)
	DeactivateAssignment(ctx context.Context, coachID, assignmentID primitive.ObjectID) error
}

type assignmentService struct {
	userRepo       repository.UserRepository
	programRepo    repository.ProgramRepository
	assignmentRepo repository.AssignmentRepository
	verifier       *OwnershipVerifier
}

// NewAssignmentService creates a new instance of assignmentService.
func NewAssignmentService(
	userRepo repository.UserRepository,
	programRepo repository.ProgramRepository,
	assignmentRepo repository.AssignmentRepository,
	verifier *OwnershipVerifier,
) AssignmentService {
	return &assignmentService{
		userRepo:       userRepo,
		programRepo:    programRepo,
		assignmentRepo: assignmentRepo,
		verifier:       verifier,
	}
}

// AssignProgram links an athlete to a program the coach owns. The
// target must be an athlete; assigning a coach to a program is refused.
func (s *assignmentService) AssignProgram(ctx context.Context, coachID, programID, athleteID primitive.ObjectID, startDate time.Time, endDate *time.Time) (*domain.ProgramAssignment, error) {
	if _, err := s.verifier.Program(ctx, coachID, programID); err != nil {
		return nil, err
	}

	athlete, err := s.userRepo.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}
	if athlete.IsCoach {
		return nil, ErrAthleteIsCoach
	}

	assignment := &domain.ProgramAssignment{
		ProgramID: programID,
		CoachID:   coachID,
		AthleteID: athleteID,
		StartDate: startDate,
		EndDate:   endDate,
		IsActive:  true,
	}

	assignmentID, err := s.assignmentRepo.Create(ctx, assignment)
	if err != nil {
		return nil, err
	}
	assignment.ID = assignmentID
	return assignment, nil
}

// ListForUser returns the caller's assignments with each nested
// program resolved. An athlete sees their active assignments; a coach
// sees every assignment they created.
func (s *assignmentService) ListForUser(ctx context.Context, userID primitive.ObjectID, isCoach bool) ([]AssignmentWithProgram, error) {
	var assignments []domain.ProgramAssignment
	var err error
	if isCoach {
		assignments, err = s.assignmentRepo.GetByCoachID(ctx, userID)
	} else {
		assignments, err = s.assignmentRepo.GetActiveByAthleteID(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.ProgramID)
	}
	programs, err := s.programRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]*domain.Program, len(programs))
	for i := range programs {
		byID[programs[i].ID] = &programs[i]
	}

	result := make([]AssignmentWithProgram, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, AssignmentWithProgram{
			Assignment: a,
			Program:    byID[a.ProgramID],
		})
	}
	return result, nil
}

// DeactivateAssignment turns an assignment off; only the coach who owns
// the underlying program may do so.
func (s *assignmentService) DeactivateAssignment(ctx context.Context, coachID, assignmentID primitive.ObjectID) error {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}
	if assignment.CoachID != coachID {
		return ErrAccessDenied
	}
	return s.assignmentRepo.Deactivate(ctx, assignmentID)
}
