package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/repository"
	"peakform/coach-app/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrProgramCreationFailed = errors.New("failed to create program")
	ErrUploadURLFailed       = errors.New("failed to generate upload URL")
)

// ProgramInput carries the full shape required to create a program.
type ProgramInput struct {
	Name            string
	Description     string
	Type            domain.ProgramType
	Level           domain.ProgramLevel
	DurationWeeks   int
	SessionsPerWeek int
	Status          domain.ProgramStatus
	ImageURL        *string
}

// ProgramUpdate carries partial-update fields; nil means "leave as is".
// ImageURL pointing at an empty string clears the image.
type ProgramUpdate struct {
	Name            *string
	Description     *string
	Type            *domain.ProgramType
	Level           *domain.ProgramLevel
	DurationWeeks   *int
	SessionsPerWeek *int
	Status          *domain.ProgramStatus
	ImageURL        *string
}

// ProgramImageUpload is the result of requesting a cover image slot:
// the client PUTs the file to UploadURL, then saves ImageURL on the
// program via a regular update. ImageURL is a stable application URL;
// the /files route presigns a fresh S3 download on every read, so the
// stored value never expires.
type ProgramImageUpload struct {
	UploadURL string
	ImageURL  string
}

// ProgramService owns program CRUD, publication and visibility rules.
type ProgramService interface {
	CreateProgram(ctx context.Context, coachID primitive.ObjectID, input ProgramInput) (*domain.Program, error)
	ListPrograms(ctx context.Context, userID primitive.ObjectID, isCoach bool) ([]domain.Program, error)
	GetProgram(ctx context.Context, userID primitive.ObjectID, isCoach bool, programID primitive.ObjectID) (*domain.Program, error)
	UpdateProgram(ctx context.Context, coachID, programID primitive.ObjectID, update ProgramUpdate) (*domain.Program, error)
	DeleteProgram(ctx context.Context, coachID, programID primitive.ObjectID) error
	SetProgramStatus(ctx context.Context, coachID, programID primitive.ObjectID, status domain.ProgramStatus) (*domain.Program, error)
	ImageUploadURL(ctx context.Context, coachID, programID primitive.ObjectID, contentType string) (*ProgramImageUpload, error)
	ImageDownloadURL(ctx context.Context, imageID string) (string, error)
}

type programService struct {
	programRepo    repository.ProgramRepository
	sessionRepo    repository.SessionRepository
	exerciseRepo   repository.ExerciseRepository
	assignmentRepo repository.AssignmentRepository
	verifier       *OwnershipVerifier
	fileStorage    storage.FileStorage
	baseURL        string
}

// NewProgramService creates a new instance of programService. baseURL
// is the public base URL of the application, used to build the stable
// image links handed out to clients.
func NewProgramService(
	programRepo repository.ProgramRepository,
	sessionRepo repository.SessionRepository,
	exerciseRepo repository.ExerciseRepository,
	assignmentRepo repository.AssignmentRepository,
	verifier *OwnershipVerifier,
	fileStorage storage.FileStorage,
	baseURL string,
) ProgramService {
	return &programService{
		programRepo:    programRepo,
		sessionRepo:    sessionRepo,
		exerciseRepo:   exerciseRepo,
		assignmentRepo: assignmentRepo,
		verifier:       verifier,
		fileStorage:    fileStorage,
		baseURL:        strings.TrimRight(baseURL, "/"),
	}
}

// CreateProgram inserts a new program owned by the acting coach.
// The role middleware guarantees coachID belongs to a coach, which
// upholds the owner-must-be-a-coach invariant.
func (s *programService) CreateProgram(ctx context.Context, coachID primitive.ObjectID, input ProgramInput) (*domain.Program, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required to create a program")
	}

	status := input.Status
	if status == "" {
		status = domain.StatusDraft
	}

	program := &domain.Program{
		CoachID:         coachID,
		Name:            input.Name,
		Description:     input.Description,
		Type:            input.Type,
		Level:           input.Level,
		DurationWeeks:   input.DurationWeeks,
		SessionsPerWeek: input.SessionsPerWeek,
		Status:          status,
		ImageURL:        input.ImageURL,
	}

	programID, err := s.programRepo.Create(ctx, program)
	if err != nil {
		return nil, ErrProgramCreationFailed
	}
	program.ID = programID
	return program, nil
}

// ListPrograms returns the programs visible to a user: their own for a
// coach, or the programs reachable through active assignments for an
// athlete. An empty result is an empty slice, never an error.
func (s *programService) ListPrograms(ctx context.Context, userID primitive.ObjectID, isCoach bool) ([]domain.Program, error) {
	if isCoach {
		return s.programRepo.GetByCoachID(ctx, userID)
	}

	assignments, err := s.assignmentRepo.GetActiveByAthleteID(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.ProgramID)
	}
	return s.programRepo.GetByIDs(ctx, ids)
}

// GetProgram returns a single program if the caller may see it: the
// owning coach, or an athlete holding an active assignment.
func (s *programService) GetProgram(ctx context.Context, userID primitive.ObjectID, isCoach bool, programID primitive.ObjectID) (*domain.Program, error) {
	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	if isCoach {
		if program.CoachID != userID {
			return nil, ErrAccessDenied
		}
		return program, nil
	}

	assigned, err := s.assignmentRepo.HasActiveAssignment(ctx, userID, programID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, ErrAccessDenied
	}
	return program, nil
}

// UpdateProgram applies partial-update semantics: only non-nil fields
// of the update change the stored program.
func (s *programService) UpdateProgram(ctx context.Context, coachID, programID primitive.ObjectID, update ProgramUpdate) (*domain.Program, error) {
	program, err := s.verifier.Program(ctx, coachID, programID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		program.Name = *update.Name
	}
	if update.Description != nil {
		program.Description = *update.Description
	}
	if update.Type != nil {
		program.Type = *update.Type
	}
	if update.Level != nil {
		program.Level = *update.Level
	}
	if update.DurationWeeks != nil {
		program.DurationWeeks = *update.DurationWeeks
	}
	if update.SessionsPerWeek != nil {
		program.SessionsPerWeek = *update.SessionsPerWeek
	}
	if update.Status != nil {
		program.Status = *update.Status
	}
	if update.ImageURL != nil {
		if *update.ImageURL == "" {
			program.ImageURL = nil
		} else {
			program.ImageURL = update.ImageURL
		}
	}

	if err := s.programRepo.Update(ctx, program); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// DeleteProgram removes a program with its sessions and exercises.
func (s *programService) DeleteProgram(ctx context.Context, coachID, programID primitive.ObjectID) error {
	if _, err := s.verifier.Program(ctx, coachID, programID); err != nil {
		return err
	}

	sessions, err := s.sessionRepo.GetByProgramID(ctx, programID)
	if err != nil {
		return err
	}
	for _, session := range sessions {
		if err := s.exerciseRepo.DeleteBySessionID(ctx, session.ID); err != nil {
			return err
		}
	}
	if err := s.sessionRepo.DeleteByProgramID(ctx, programID); err != nil {
		return err
	}

	err = s.programRepo.Delete(ctx, programID, coachID)
	if errors.Is(err, repository.ErrNotFound) {
		// Ownership was already verified; a miss here means the program
		// vanished between the check and the delete.
		return ErrProgramNotFound
	}
	return err
}

// SetProgramStatus flips a program between draft and published.
func (s *programService) SetProgramStatus(ctx context.Context, coachID, programID primitive.ObjectID, status domain.ProgramStatus) (*domain.Program, error) {
	program, err := s.verifier.Program(ctx, coachID, programID)
	if err != nil {
		return nil, err
	}
	program.Status = status
	if err := s.programRepo.Update(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

// ImageUploadURL generates a presigned PUT slot for a program cover
// image. The object key is random so re-uploads never collide. The
// returned ImageURL points at the application's /files route rather
// than at S3 directly, so it stays valid after the presign expires.
func (s *programService) ImageUploadURL(ctx context.Context, coachID, programID primitive.ObjectID, contentType string) (*ProgramImageUpload, error) {
	if _, err := s.verifier.Program(ctx, coachID, programID); err != nil {
		return nil, err
	}

	imageID := uuid.NewString()
	objectKey := fmt.Sprintf("programs/%s", imageID)
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLFailed
	}
	imageURL := fmt.Sprintf("%s/api/v1/files/programs/%s", s.baseURL, imageID)
	return &ProgramImageUpload{UploadURL: uploadURL, ImageURL: imageURL}, nil
}

// ImageDownloadURL presigns a short-lived S3 download URL for a stored
// cover image. Called on every read of the stable /files link.
func (s *programService) ImageDownloadURL(ctx context.Context, imageID string) (string, error) {
	objectKey := fmt.Sprintf("programs/%s", imageID)
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", ErrUploadURLFailed
	}
	return url, nil
}
