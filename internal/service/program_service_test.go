package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/repository"
	"peakform/coach-app/internal/storage"
)

type programEnv struct {
	svc         ProgramService
	programs    *mockProgramRepo
	sessions    *mockSessionRepo
	exercises   *mockExerciseRepo
	assignments *mockAssignmentRepo
	files       *mockFileStorage
}

func newProgramEnv() *programEnv {
	env := &programEnv{
		programs:    &mockProgramRepo{},
		sessions:    &mockSessionRepo{},
		exercises:   &mockExerciseRepo{},
		assignments: &mockAssignmentRepo{},
		files:       &mockFileStorage{},
	}
	verifier := NewOwnershipVerifier(env.programs, env.sessions, env.exercises)
	env.svc = NewProgramService(env.programs, env.sessions, env.exercises, env.assignments, verifier, env.files, "https://app.example.com/")
	return env
}

func TestCreateProgramDefaultsToDraft(t *testing.T) {
	env := newProgramEnv()
	coach := primitive.NewObjectID()
	newID := primitive.NewObjectID()

	env.programs.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Program) bool {
		return p.CoachID == coach && p.Status == domain.StatusDraft
	})).Return(newID, nil)

	program, err := env.svc.CreateProgram(context.Background(), coach, ProgramInput{
		Name:            "Plan A",
		Description:     "Un plan de reprise progressive.",
		Type:            domain.ProgramMixed,
		Level:           domain.LevelBeginner,
		DurationWeeks:   8,
		SessionsPerWeek: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, newID, program.ID)
	assert.Equal(t, domain.StatusDraft, program.Status)
}

func TestListProgramsCoachSeesOwnOnly(t *testing.T) {
	env := newProgramEnv()
	coach := primitive.NewObjectID()

	own := []domain.Program{{ID: primitive.NewObjectID(), CoachID: coach}}
	env.programs.On("GetByCoachID", mock.Anything, coach).Return(own, nil)

	programs, err := env.svc.ListPrograms(context.Background(), coach, true)
	require.NoError(t, err)
	assert.Equal(t, own, programs)
	env.assignments.AssertNotCalled(t, "GetActiveByAthleteID", mock.Anything, mock.Anything)
}

func TestListProgramsAthleteSeesAssignedOnly(t *testing.T) {
	env := newProgramEnv()
	athlete := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()

	env.assignments.On("GetActiveByAthleteID", mock.Anything, athlete).Return([]domain.ProgramAssignment{
		{ID: primitive.NewObjectID(), ProgramID: p1, AthleteID: athlete, IsActive: true},
		{ID: primitive.NewObjectID(), ProgramID: p2, AthleteID: athlete, IsActive: true},
	}, nil)
	env.programs.On("GetByIDs", mock.Anything, []primitive.ObjectID{p1, p2}).Return([]domain.Program{
		{ID: p1, Name: "Plan A"},
		{ID: p2, Name: "Plan B"},
	}, nil)

	programs, err := env.svc.ListPrograms(context.Background(), athlete, false)
	require.NoError(t, err)
	require.Len(t, programs, 2)
	assert.Equal(t, "Plan A", programs[0].Name)
}

func TestGetProgramAthleteWithoutAssignment(t *testing.T) {
	env := newProgramEnv()
	athlete := primitive.NewObjectID()
	programID := primitive.NewObjectID()

	env.programs.On("GetByID", mock.Anything, programID).
		Return(&domain.Program{ID: programID, CoachID: primitive.NewObjectID()}, nil)
	env.assignments.On("HasActiveAssignment", mock.Anything, athlete, programID).Return(false, nil)

	_, err := env.svc.GetProgram(context.Background(), athlete, false, programID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetProgramAthleteWithAssignment(t *testing.T) {
	env := newProgramEnv()
	athlete := primitive.NewObjectID()
	programID := primitive.NewObjectID()

	env.programs.On("GetByID", mock.Anything, programID).
		Return(&domain.Program{ID: programID, Name: "Plan A"}, nil)
	env.assignments.On("HasActiveAssignment", mock.Anything, athlete, programID).Return(true, nil)

	program, err := env.svc.GetProgram(context.Background(), athlete, false, programID)
	require.NoError(t, err)
	assert.Equal(t, "Plan A", program.Name)
}

func TestUpdateProgramPartialAndImageClear(t *testing.T) {
	env := newProgramEnv()
	coach := primitive.NewObjectID()
	programID := primitive.NewObjectID()
	oldImage := "https://s3/old.jpg"

	stored := &domain.Program{
		ID:            programID,
		CoachID:       coach,
		Name:          "Plan A",
		Description:   "Une description suffisamment longue.",
		DurationWeeks: 8,
		ImageURL:      &oldImage,
	}
	env.programs.On("GetByID", mock.Anything, programID).Return(stored, nil)
	env.programs.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Program) bool {
		// Name changed, image cleared, everything else untouched.
		return p.Name == "Plan B" && p.ImageURL == nil && p.DurationWeeks == 8
	})).Return(nil)

	name := "Plan B"
	empty := ""
	program, err := env.svc.UpdateProgram(context.Background(), coach, programID, ProgramUpdate{
		Name:     &name,
		ImageURL: &empty,
	})
	require.NoError(t, err)
	assert.Nil(t, program.ImageURL)
	env.programs.AssertExpectations(t)
}

func TestDeleteProgramCascades(t *testing.T) {
	env := newProgramEnv()
	coach := primitive.NewObjectID()
	programID := primitive.NewObjectID()
	s1 := primitive.NewObjectID()
	s2 := primitive.NewObjectID()

	env.programs.On("GetByID", mock.Anything, programID).
		Return(&domain.Program{ID: programID, CoachID: coach}, nil)
	env.sessions.On("GetByProgramID", mock.Anything, programID).Return([]domain.TrainingSession{
		{ID: s1, ProgramID: programID},
		{ID: s2, ProgramID: programID},
	}, nil)
	env.exercises.On("DeleteBySessionID", mock.Anything, s1).Return(nil)
	env.exercises.On("DeleteBySessionID", mock.Anything, s2).Return(nil)
	env.sessions.On("DeleteByProgramID", mock.Anything, programID).Return(nil)
	env.programs.On("Delete", mock.Anything, programID, coach).Return(nil)

	require.NoError(t, env.svc.DeleteProgram(context.Background(), coach, programID))
	env.exercises.AssertExpectations(t)
	env.sessions.AssertExpectations(t)
	env.programs.AssertExpectations(t)
}

func TestDeleteForeignProgramTouchesNothing(t *testing.T) {
	env := newProgramEnv()
	programID := primitive.NewObjectID()

	env.programs.On("GetByID", mock.Anything, programID).
		Return(&domain.Program{ID: programID, CoachID: primitive.NewObjectID()}, nil)

	err := env.svc.DeleteProgram(context.Background(), primitive.NewObjectID(), programID)
	assert.ErrorIs(t, err, ErrAccessDenied)
	env.sessions.AssertNotCalled(t, "DeleteByProgramID", mock.Anything, mock.Anything)
	env.programs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestImageUploadURLUsesRandomKey(t *testing.T) {
	env := newProgramEnv()
	coach := primitive.NewObjectID()
	programID := primitive.NewObjectID()

	var objectKey string
	env.programs.On("GetByID", mock.Anything, programID).
		Return(&domain.Program{ID: programID, CoachID: coach}, nil)
	env.files.On("GeneratePresignedUploadURL", mock.Anything, mock.MatchedBy(func(key string) bool {
		objectKey = key
		return strings.HasPrefix(key, "programs/")
	}), "image/png", storage.DefaultPresignedURLExpiry).Return("https://s3/upload", nil)

	upload, err := env.svc.ImageUploadURL(context.Background(), coach, programID, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://s3/upload", upload.UploadURL)
	// The returned link is a stable application URL for the uploaded
	// object, not a presigned one that would expire.
	assert.Equal(t, "https://app.example.com/api/v1/files/"+objectKey, upload.ImageURL)
	env.files.AssertNotCalled(t, "GeneratePresignedDownloadURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestImageDownloadURLPresignsFresh(t *testing.T) {
	env := newProgramEnv()

	env.files.On("GeneratePresignedDownloadURL", mock.Anything, "programs/cover-1", storage.DefaultPresignedURLExpiry).
		Return("https://s3/get?X-Amz-Expires=900", nil)

	url, err := env.svc.ImageDownloadURL(context.Background(), "cover-1")
	require.NoError(t, err)
	assert.Equal(t, "https://s3/get?X-Amz-Expires=900", url)
}

func TestGetProgramMissing(t *testing.T) {
	env := newProgramEnv()
	programID := primitive.NewObjectID()

	env.programs.On("GetByID", mock.Anything, programID).Return(nil, repository.ErrNotFound)

	_, err := env.svc.GetProgram(context.Background(), primitive.NewObjectID(), true, programID)
	assert.ErrorIs(t, err, ErrProgramNotFound)
}
