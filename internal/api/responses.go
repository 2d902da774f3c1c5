package api

import (
	"time"

	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/service"
)

// UserResponse is the API representation of a user account.
type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsCoach     bool      `json:"isCoach"`
	Bio         string    `json:"bio,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	NotifyEmail bool      `json:"notifyEmail"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MapUserToResponse converts a domain.User to an API UserResponse.
func MapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID.Hex(),
		Name:        user.Name,
		Email:       user.Email,
		IsCoach:     user.IsCoach,
		Bio:         user.Bio,
		Phone:       user.Phone,
		NotifyEmail: user.NotifyEmail,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// ProgramResponse is the API representation of a program.
// UserID mirrors CoachID for clients that key the owner as userId.
type ProgramResponse struct {
	ID              string    `json:"id"`
	CoachID         string    `json:"coachId"`
	UserID          string    `json:"userId"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	Level           string    `json:"level"`
	DurationWeeks   int       `json:"durationWeeks"`
	SessionsPerWeek int       `json:"sessionsPerWeek"`
	Status          string    `json:"status"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// MapProgramToResponse converts a domain.Program to an API ProgramResponse.
func MapProgramToResponse(p *domain.Program) ProgramResponse {
	coachID := p.CoachID.Hex()
	return ProgramResponse{
		ID:              p.ID.Hex(),
		CoachID:         coachID,
		UserID:          coachID,
		Name:            p.Name,
		Description:     p.Description,
		Type:            string(p.Type),
		Level:           string(p.Level),
		DurationWeeks:   p.DurationWeeks,
		SessionsPerWeek: p.SessionsPerWeek,
		Status:          string(p.Status),
		ImageURL:        p.ImageURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// SessionResponse is the API representation of a training session.
type SessionResponse struct {
	ID         string    `json:"id"`
	ProgramID  string    `json:"programId"`
	Name       string    `json:"name"`
	WeekNumber int       `json:"weekNumber"`
	DayNumber  int       `json:"dayNumber"`
	Type       string    `json:"type"`
	TargetRPE  int       `json:"targetRpe"`
	Duration   int       `json:"duration"`
	Order      int       `json:"order"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// MapSessionToResponse converts a domain.TrainingSession to an API SessionResponse.
func MapSessionToResponse(s *domain.TrainingSession) SessionResponse {
	return SessionResponse{
		ID:         s.ID.Hex(),
		ProgramID:  s.ProgramID.Hex(),
		Name:       s.Name,
		WeekNumber: s.WeekNumber,
		DayNumber:  s.DayNumber,
		Type:       string(s.Type),
		TargetRPE:  s.TargetRPE,
		Duration:   s.Duration,
		Order:      s.Order,
		Notes:      s.Notes,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// ExerciseResponse is the API representation of an exercise.
type ExerciseResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Name      string    `json:"name"`
	Sets      int       `json:"sets"`
	Reps      int       `json:"reps"`
	RPE       *int      `json:"rpe,omitempty"`
	RestSec   *int      `json:"restSeconds,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MapExerciseToResponse converts a domain.Exercise to an API ExerciseResponse.
func MapExerciseToResponse(e *domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:        e.ID.Hex(),
		SessionID: e.SessionID.Hex(),
		Name:      e.Name,
		Sets:      e.Sets,
		Reps:      e.Reps,
		RPE:       e.RPE,
		RestSec:   e.RestSec,
		Notes:     e.Notes,
		Order:     e.Order,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// LibraryExerciseResponse is the API representation of a catalog entry.
type LibraryExerciseResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Muscles      []string `json:"muscles,omitempty"`
	Equipment    string   `json:"equipment,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
}

// MapLibraryExerciseToResponse converts a catalog entry to its API shape.
func MapLibraryExerciseToResponse(le *domain.LibraryExercise) LibraryExerciseResponse {
	return LibraryExerciseResponse{
		ID:           le.ID.Hex(),
		Name:         le.Name,
		Category:     le.Category,
		Muscles:      le.Muscles,
		Equipment:    le.Equipment,
		Instructions: le.Instructions,
	}
}

// AssignmentResponse is the API representation of a program assignment,
// with the program embedded when it could be resolved.
type AssignmentResponse struct {
	ID        string           `json:"id"`
	ProgramID string           `json:"programId"`
	CoachID   string           `json:"coachId"`
	AthleteID string           `json:"athleteId"`
	StartDate time.Time        `json:"startDate"`
	EndDate   *time.Time       `json:"endDate,omitempty"`
	IsActive  bool             `json:"isActive"`
	Program   *ProgramResponse `json:"program,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// MapAssignmentToResponse converts a bare assignment to its API shape.
func MapAssignmentToResponse(a *domain.ProgramAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:        a.ID.Hex(),
		ProgramID: a.ProgramID.Hex(),
		CoachID:   a.CoachID.Hex(),
		AthleteID: a.AthleteID.Hex(),
		StartDate: a.StartDate,
		EndDate:   a.EndDate,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// MapAssignmentWithProgramToResponse embeds the resolved program.
func MapAssignmentWithProgramToResponse(awp *service.AssignmentWithProgram) AssignmentResponse {
	resp := MapAssignmentToResponse(&awp.Assignment)
	if awp.Program != nil {
		p := MapProgramToResponse(awp.Program)
		resp.Program = &p
	}
	return resp
}
