package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"peakform/coach-app/internal/domain"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockProgramRepo struct{ mock.Mock }

func (m *mockProgramRepo) Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error) {
	args := m.Called(ctx, program)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockProgramRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	args := m.Called(ctx, id)
	program, _ := args.Get(0).(*domain.Program)
	return program, args.Error(1)
}

func (m *mockProgramRepo) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Program, error) {
	args := m.Called(ctx, coachID)
	programs, _ := args.Get(0).([]domain.Program)
	return programs, args.Error(1)
}

func (m *mockProgramRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Program, error) {
	args := m.Called(ctx, ids)
	programs, _ := args.Get(0).([]domain.Program)
	return programs, args.Error(1)
}

func (m *mockProgramRepo) Update(ctx context.Context, program *domain.Program) error {
	return m.Called(ctx, program).Error(0)
}

func (m *mockProgramRepo) Delete(ctx context.Context, id, coachID primitive.ObjectID) error {
	return m.Called(ctx, id, coachID).Error(0)
}

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Create(ctx context.Context, session *domain.TrainingSession) (primitive.ObjectID, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockSessionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSession, error) {
	args := m.Called(ctx, id)
	session, _ := args.Get(0).(*domain.TrainingSession)
	return session, args.Error(1)
}

func (m *mockSessionRepo) GetByProgramID(ctx context.Context, programID primitive.ObjectID) ([]domain.TrainingSession, error) {
	args := m.Called(ctx, programID)
	sessions, _ := args.Get(0).([]domain.TrainingSession)
	return sessions, args.Error(1)
}

func (m *mockSessionRepo) Update(ctx context.Context, session *domain.TrainingSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSessionRepo) DeleteByProgramID(ctx context.Context, programID primitive.ObjectID) error {
	return m.Called(ctx, programID).Error(0)
}

type mockExerciseRepo struct{ mock.Mock }

func (m *mockExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	args := m.Called(ctx, exercise)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockExerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	args := m.Called(ctx, id)
	exercise, _ := args.Get(0).(*domain.Exercise)
	return exercise, args.Error(1)
}

func (m *mockExerciseRepo) GetBySessionID(ctx context.Context, sessionID primitive.ObjectID) ([]domain.Exercise, error) {
	args := m.Called(ctx, sessionID)
	exercises, _ := args.Get(0).([]domain.Exercise)
	return exercises, args.Error(1)
}

func (m *mockExerciseRepo) Update(ctx context.Context, exercise *domain.Exercise) error {
	return m.Called(ctx, exercise).Error(0)
}

func (m *mockExerciseRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockExerciseRepo) DeleteBySessionID(ctx context.Context, sessionID primitive.ObjectID) error {
	return m.Called(ctx, sessionID).Error(0)
}

type mockAssignmentRepo struct{ mock.Mock }

func (m *mockAssignmentRepo) Create(ctx context.Context, assignment *domain.ProgramAssignment) (primitive.ObjectID, error) {
	args := m.Called(ctx, assignment)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockAssignmentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgramAssignment, error) {
	args := m.Called(ctx, id)
	assignment, _ := args.Get(0).(*domain.ProgramAssignment)
	return assignment, args.Error(1)
}

func (m *mockAssignmentRepo) GetActiveByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.ProgramAssignment, error) {
	args := m.Called(ctx, athleteID)
	assignments, _ := args.Get(0).([]domain.ProgramAssignment)
	return assignments, args.Error(1)
}

func (m *mockAssignmentRepo) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.ProgramAssignment, error) {
	args := m.Called(ctx, coachID)
	assignments, _ := args.Get(0).([]domain.ProgramAssignment)
	return assignments, args.Error(1)
}

func (m *mockAssignmentRepo) HasActiveAssignment(ctx context.Context, athleteID, programID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, athleteID, programID)
	return args.Bool(0), args.Error(1)
}

func (m *mockAssignmentRepo) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockLibraryRepo struct{ mock.Mock }

func (m *mockLibraryRepo) GetAll(ctx context.Context) ([]domain.LibraryExercise, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]domain.LibraryExercise)
	return entries, args.Error(1)
}

func (m *mockLibraryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.LibraryExercise, error) {
	args := m.Called(ctx, id)
	entry, _ := args.Get(0).(*domain.LibraryExercise)
	return entry, args.Error(1)
}

type mockFileStorage struct{ mock.Mock }

func (m *mockFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, contentType, expiry)
	return args.String(0), args.Error(1)
}

func (m *mockFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiry)
	return args.String(0), args.Error(1)
}

func (m *mockFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	return m.Called(ctx, objectKey).Error(0)
}
