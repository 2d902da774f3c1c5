package api

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"peakform/coach-app/internal/config"
	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/service"
)

const (
	testJWTSecret   = "test-secret"
	testAdminSecret = "test-admin-secret"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, name, email, password string, isCoach bool) (*domain.User, error) {
	args := m.Called(ctx, name, email, password, isCoach)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(1).(*domain.User)
	return args.String(0), user, args.Error(2)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update service.ProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, userID, update)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	return m.Called(ctx, userID).Error(0)
}

type mockProgramService struct{ mock.Mock }

func (m *mockProgramService) CreateProgram(ctx context.Context, coachID primitive.ObjectID, input service.ProgramInput) (*domain.Program, error) {
	args := m.Called(ctx, coachID, input)
	program, _ := args.Get(0).(*domain.Program)
	return program, args.Error(1)
}

func (m *mockProgramService) ListPrograms(ctx context.Context, userID primitive.ObjectID, isCoach bool) ([]domain.Program, error) {
	args := m.Called(ctx, userID, isCoach)
	programs, _ := args.Get(0).([]domain.Program)
	return programs, args.Error(1)
}

func (m *mockProgramService) GetProgram(ctx context.Context, userID primitive.ObjectID, isCoach bool, programID primitive.ObjectID) (*domain.Program, error) {
	args := m.Called(ctx, userID, isCoach, programID)
	program, _ := args.Get(0).(*domain.Program)
	return program, args.Error(1)
}

func (m *mockProgramService) UpdateProgram(ctx context.Context, coachID, programID primitive.ObjectID, update service.ProgramUpdate) (*domain.Program, error) {
	args := m.Called(ctx, coachID, programID, update)
	program, _ := args.Get(0).(*domain.Program)
	return program, args.Error(1)
}

func (m *mockProgramService) DeleteProgram(ctx context.Context, coachID, programID primitive.ObjectID) error {
	return m.Called(ctx, coachID, programID).Error(0)
}

func (m *mockProgramService) SetProgramStatus(ctx context.Context, coachID, programID primitive.ObjectID, status domain.ProgramStatus) (*domain.Program, error) {
	args := m.Called(ctx, coachID, programID, status)
	program, _ := args.Get(0).(*domain.Program)
	return program, args.Error(1)
}

func (m *mockProgramService) ImageUploadURL(ctx context.Context, coachID, programID primitive.ObjectID, contentType string) (*service.ProgramImageUpload, error) {
	args := m.Called(ctx, coachID, programID, contentType)
	upload, _ := args.Get(0).(*service.ProgramImageUpload)
	return upload, args.Error(1)
}

func (m *mockProgramService) ImageDownloadURL(ctx context.Context, imageID string) (string, error) {
	args := m.Called(ctx, imageID)
	return args.String(0), args.Error(1)
}

type mockSessionService struct{ mock.Mock }

func (m *mockSessionService) CreateSession(ctx context.Context, coachID, programID primitive.ObjectID, input service.SessionInput) (*domain.TrainingSession, error) {
	args := m.Called(ctx, coachID, programID, input)
	session, _ := args.Get(0).(*domain.TrainingSession)
	return session, args.Error(1)
}

func (m *mockSessionService) GetSession(ctx context.Context, sessionID primitive.ObjectID) (*domain.TrainingSession, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*domain.TrainingSession)
	return session, args.Error(1)
}

func (m *mockSessionService) ListSessions(ctx context.Context, programID primitive.ObjectID) ([]domain.TrainingSession, error) {
	args := m.Called(ctx, programID)
	sessions, _ := args.Get(0).([]domain.TrainingSession)
	return sessions, args.Error(1)
}

func (m *mockSessionService) UpdateSession(ctx context.Context, coachID, sessionID primitive.ObjectID, update service.SessionUpdate) (*domain.TrainingSession, error) {
	args := m.Called(ctx, coachID, sessionID, update)
	session, _ := args.Get(0).(*domain.TrainingSession)
	return session, args.Error(1)
}

func (m *mockSessionService) DeleteSession(ctx context.Context, coachID, sessionID primitive.ObjectID) error {
	return m.Called(ctx, coachID, sessionID).Error(0)
}

type mockExerciseService struct{ mock.Mock }

func (m *mockExerciseService) CreateExercise(ctx context.Context, coachID, sessionID primitive.ObjectID, input service.ExerciseInput) (*domain.Exercise, error) {
	args := m.Called(ctx, coachID, sessionID, input)
	exercise, _ := args.Get(0).(*domain.Exercise)
	return exercise, args.Error(1)
}

func (m *mockExerciseService) ListExercises(ctx context.Context, sessionID primitive.ObjectID) ([]domain.Exercise, error) {
	args := m.Called(ctx, sessionID)
	exercises, _ := args.Get(0).([]domain.Exercise)
	return exercises, args.Error(1)
}

func (m *mockExerciseService) UpdateExercise(ctx context.Context, coachID, exerciseID primitive.ObjectID, update service.ExerciseUpdate) (*domain.Exercise, error) {
	args := m.Called(ctx, coachID, exerciseID, update)
	exercise, _ := args.Get(0).(*domain.Exercise)
	return exercise, args.Error(1)
}

func (m *mockExerciseService) DeleteExercise(ctx context.Context, coachID, exerciseID primitive.ObjectID) error {
	return m.Called(ctx, coachID, exerciseID).Error(0)
}

func (m *mockExerciseService) ListLibrary(ctx context.Context) ([]domain.LibraryExercise, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]domain.LibraryExercise)
	return entries, args.Error(1)
}

type mockAssignmentService struct{ mock.Mock }

func (m *mockAssignmentService) AssignProgram(ctx context.Context, coachID, programID, athleteID primitive.ObjectID, startDate time.Time, endDate *time.Time) (*domain.ProgramAssignment, error) {
	args := m.Called(ctx, coachID, programID, athleteID, startDate, endDate)
	assignment, _ := args.Get(0).(*domain.ProgramAssignment)
	return assignment, args.Error(1)
}

func (m *mockAssignmentService) ListForUser(ctx context.Context, userID primitive.ObjectID, isCoach bool) ([]service.AssignmentWithProgram, error) {
	args := m.Called(ctx, userID, isCoach)
	assignments, _ := args.Get(0).([]service.AssignmentWithProgram)
	return assignments, args.Error(1)
}

func (m *mockAssignmentService) DeactivateAssignment(ctx context.Context, coachID, assignmentID primitive.ObjectID) error {
	return m.Called(ctx, coachID, assignmentID).Error(0)
}

// testEnv wires a full router over mocked services.
type testEnv struct {
	router      *gin.Engine
	auth        *mockAuthService
	users       *mockUserService
	programs    *mockProgramService
	sessions    *mockSessionService
	exercises   *mockExerciseService
	assignments *mockAssignmentService
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		auth:        &mockAuthService{},
		users:       &mockUserService{},
		programs:    &mockProgramService{},
		sessions:    &mockSessionService{},
		exercises:   &mockExerciseService{},
		assignments: &mockAssignmentService{},
	}

	cfg := &config.Config{}
	cfg.JWT.Secret = testJWTSecret
	cfg.Admin.Secret = testAdminSecret

	env.router = gin.New()
	SetupRoutes(
		env.router,
		cfg,
		NewAuthHandler(env.auth),
		NewUserHandler(env.users),
		NewProgramHandler(env.programs),
		NewSessionHandler(env.sessions),
		NewExerciseHandler(env.exercises),
		NewAssignmentHandler(env.assignments),
	)
	return env
}

// token signs a bearer token the way the auth service does.
func token(t *testing.T, userID primitive.ObjectID, isCoach bool) string {
	t.Helper()
	claims := jwt.MapClaims{
		"uid":   userID.Hex(),
		"coach": isCoach,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

// doRequest performs a JSON request against the test router.
func (env *testEnv) doRequest(method, path, bearer, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}
