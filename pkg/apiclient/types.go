package apiclient

import "time"

// User mirrors the server's user representation.
type User struct {
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

// Program mirrors the server's program representation.
type Program struct {
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

// Session mirrors the server's training session representation.
type Session struct {
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

// Exercise mirrors the server's exercise representation.
type Exercise struct {
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

// LibraryExercise mirrors a server catalog entry.
type LibraryExercise struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Muscles      []string `json:"muscles,omitempty"`
	Equipment    string   `json:"equipment,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
}

// Assignment mirrors the server's assignment representation, with the
// program embedded when the server resolved it.
type Assignment struct {
	ID        string     `json:"id"`
	ProgramID string     `json:"programId"`
	CoachID   string     `json:"coachId"`
	AthleteID string     `json:"athleteId"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	IsActive  bool       `json:"isActive"`
	Program   *Program   `json:"program,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ImageUpload is the server's answer to an image upload request.
type ImageUpload struct {
	UploadURL string `json:"uploadUrl"`
	ImageURL  string `json:"imageUrl"`
}

// ProgramInput is the payload to create a program.
type ProgramInput struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Type            string  `json:"type"`
	Level           string  `json:"level"`
	DurationWeeks   int     `json:"durationWeeks"`
	SessionsPerWeek int     `json:"sessionsPerWeek"`
	Status          string  `json:"status,omitempty"`
	ImageURL        *string `json:"imageUrl,omitempty"`
}

// ProgramUpdate is the partial payload to update a program; nil fields
// are omitted from the request and left unchanged server-side.
type ProgramUpdate struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	Type            *string `json:"type,omitempty"`
	Level           *string `json:"level,omitempty"`
	DurationWeeks   *int    `json:"durationWeeks,omitempty"`
	SessionsPerWeek *int    `json:"sessionsPerWeek,omitempty"`
	Status          *string `json:"status,omitempty"`
	ImageURL        *string `json:"imageUrl,omitempty"`
}

// SessionInput is the payload to create a training session.
type SessionInput struct {
	Name       string `json:"name"`
	WeekNumber int    `json:"weekNumber"`
	DayNumber  int    `json:"dayNumber"`
	Type       string `json:"type"`
	TargetRPE  int    `json:"targetRpe"`
	Duration   int    `json:"duration"`
	Order      int    `json:"order"`
	Notes      string `json:"notes,omitempty"`
}

// SessionUpdate is the partial payload to update a session.
type SessionUpdate struct {
	Name       *string `json:"name,omitempty"`
	WeekNumber *int    `json:"weekNumber,omitempty"`
	DayNumber  *int    `json:"dayNumber,omitempty"`
	Type       *string `json:"type,omitempty"`
	TargetRPE  *int    `json:"targetRpe,omitempty"`
	Duration   *int    `json:"duration,omitempty"`
	Order      *int    `json:"order,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// ExerciseInput is the payload to create an exercise. LibraryID, when
// set, seeds the exercise from a catalog entry.
type ExerciseInput struct {
	Name      string `json:"name,omitempty"`
	Sets      int    `json:"sets"`
	Reps      int    `json:"reps"`
	RPE       *int   `json:"rpe,omitempty"`
	RestSec   *int   `json:"restSeconds,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Order     int    `json:"order"`
	LibraryID string `json:"libraryId,omitempty"`
}

// ExerciseUpdate is the partial payload to update an exercise.
type ExerciseUpdate struct {
	Name    *string `json:"name,omitempty"`
	Sets    *int    `json:"sets,omitempty"`
	Reps    *int    `json:"reps,omitempty"`
	RPE     *int    `json:"rpe,omitempty"`
	RestSec *int    `json:"restSeconds,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Order   *int    `json:"order,omitempty"`
}

// AssignmentInput is the payload to assign a program to an athlete.
type AssignmentInput struct {
	AthleteID string     `json:"athleteId"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ProfileUpdate is the partial payload for PUT /me.
type ProfileUpdate struct {
	Name        *string `json:"name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	NotifyEmail *bool   `json:"notifyEmail,omitempty"`
}
