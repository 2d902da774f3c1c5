package apiclient

import (
	"context"
	"net/http"
	"sync"
)

// mutation carries the pending flag every mutator exposes.
type mutation struct {
	mu      sync.Mutex
	pending bool
}

// Pending reports whether a mutation is in flight.
func (m *mutation) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}

// run wraps fn with the pending flag and the notification/invalidation
// contract: on error an error toast with the server's message, on
// success the given toast plus a Notify of every stale key. Pending
// always resets.
func (m *mutation) run(c *Client, successMsg string, staleKeys []string, fn func() error) error {
	m.mu.Lock()
	m.pending = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.pending = false
		m.mu.Unlock()
	}()

	if err := fn(); err != nil {
		c.notifier.Error(err.Error())
		return err
	}

	c.notifier.Success(successMsg)
	for _, key := range staleKeys {
		c.store.Notify(key)
	}
	return nil
}

// ProgramMutator groups the program write operations.
type ProgramMutator struct {
	mutation
	c *Client
}

// Programs returns a fresh program mutator.
func (c *Client) Programs() *ProgramMutator { return &ProgramMutator{c: c} }

// Create creates a program.
func (m *ProgramMutator) Create(ctx context.Context, input ProgramInput) (*Program, error) {
	var out struct {
		Program *Program `json:"program"`
	}
	err := m.run(m.c, "Programme créé avec succès", []string{KeyPrograms}, func() error {
		return m.c.do(ctx, http.MethodPost, "/api/v1/programs", input, &out)
	})
	return out.Program, err
}

// Update partially updates a program.
func (m *ProgramMutator) Update(ctx context.Context, programID string, update ProgramUpdate) (*Program, error) {
	var out struct {
		Program *Program `json:"program"`
	}
	keys := []string{KeyProgram(programID), KeyPrograms}
	err := m.run(m.c, "Programme mis à jour", keys, func() error {
		return m.c.do(ctx, http.MethodPut, "/api/v1/programs/"+programID, update, &out)
	})
	return out.Program, err
}

// Delete removes a program and everything under it.
func (m *ProgramMutator) Delete(ctx context.Context, programID string) error {
	keys := []string{KeyProgram(programID), KeyPrograms}
	return m.run(m.c, "Programme supprimé", keys, func() error {
		return m.c.do(ctx, http.MethodDelete, "/api/v1/programs/"+programID, nil, nil)
	})
}

// Publish makes a program visible to its assigned athletes.
func (m *ProgramMutator) Publish(ctx context.Context, programID string) (*Program, error) {
	return m.setStatus(ctx, programID, "publish", "Programme publié")
}

// Unpublish puts a program back in draft.
func (m *ProgramMutator) Unpublish(ctx context.Context, programID string) (*Program, error) {
	return m.setStatus(ctx, programID, "unpublish", "Programme dépublié")
}

func (m *ProgramMutator) setStatus(ctx context.Context, programID, action, successMsg string) (*Program, error) {
	var out struct {
		Program *Program `json:"program"`
	}
	keys := []string{KeyProgram(programID), KeyPrograms}
	err := m.run(m.c, successMsg, keys, func() error {
		return m.c.do(ctx, http.MethodPost, "/api/v1/programs/"+programID+"/"+action, nil, &out)
	})
	return out.Program, err
}

// RequestImageUpload asks for a presigned upload slot for the
// program's cover image. No keys go stale until the follow-up Update
// stores the image URL.
func (m *ProgramMutator) RequestImageUpload(ctx context.Context, programID, contentType string) (*ImageUpload, error) {
	var out ImageUpload
	body := map[string]string{"contentType": contentType}
	if err := m.c.do(ctx, http.MethodPost, "/api/v1/programs/"+programID+"/image-upload-url", body, &out); err != nil {
		m.c.notifier.Error(err.Error())
		return nil, err
	}
	return &out, nil
}

// SessionMutator groups the training session write operations.
type SessionMutator struct {
	mutation
	c *Client
}

// Sessions returns a fresh session mutator.
func (c *Client) Sessions() *SessionMutator { return &SessionMutator{c: c} }

// Create creates a session under a program.
func (m *SessionMutator) Create(ctx context.Context, programID string, input SessionInput) (*Session, error) {
	var out struct {
		Session *Session `json:"session"`
	}
	err := m.run(m.c, "Séance créée avec succès", []string{KeySessions(programID)}, func() error {
		return m.c.do(ctx, http.MethodPost, "/api/v1/programs/"+programID+"/sessions", input, &out)
	})
	return out.Session, err
}

// Update partially updates a session. The program id drives the
// session-list invalidation.
func (m *SessionMutator) Update(ctx context.Context, programID, sessionID string, update SessionUpdate) (*Session, error) {
	var out struct {
		Session *Session `json:"session"`
	}
	err := m.run(m.c, "Séance mise à jour", []string{KeySessions(programID)}, func() error {
		return m.c.do(ctx, http.MethodPut, "/api/v1/trainings/"+sessionID, update, &out)
	})
	return out.Session, err
}

// Delete removes a session and its exercises.
func (m *SessionMutator) Delete(ctx context.Context, programID, sessionID string) error {
	return m.run(m.c, "Séance supprimée", []string{KeySessions(programID)}, func() error {
		return m.c.do(ctx, http.MethodDelete, "/api/v1/trainings/"+sessionID, nil, nil)
	})
}

// ExerciseMutator groups the exercise write operations.
type ExerciseMutator struct {
	mutation
	c *Client
}

// Exercises returns a fresh exercise mutator.
func (c *Client) Exercises() *ExerciseMutator { return &ExerciseMutator{c: c} }

// Create creates an exercise under a session.
func (m *ExerciseMutator) Create(ctx context.Context, sessionID string, input ExerciseInput) (*Exercise, error) {
	var out struct {
		Exercise *Exercise `json:"exercise"`
	}
	err := m.run(m.c, "Exercice créé avec succès", []string{KeyExercises(sessionID)}, func() error {
		return m.c.do(ctx, http.MethodPost, "/api/v1/trainings/"+sessionID+"/exercises", input, &out)
	})
	return out.Exercise, err
}

// Update partially updates an exercise.
func (m *ExerciseMutator) Update(ctx context.Context, sessionID, exerciseID string, update ExerciseUpdate) (*Exercise, error) {
	var out struct {
		Exercise *Exercise `json:"exercise"`
	}
	err := m.run(m.c, "Exercice mis à jour", []string{KeyExercises(sessionID)}, func() error {
		return m.c.do(ctx, http.MethodPut, "/api/v1/trainings/"+sessionID+"/exercises/"+exerciseID, update, &out)
	})
	return out.Exercise, err
}

// Delete removes an exercise.
func (m *ExerciseMutator) Delete(ctx context.Context, sessionID, exerciseID string) error {
	return m.run(m.c, "Exercice supprimé", []string{KeyExercises(sessionID)}, func() error {
		return m.c.do(ctx, http.MethodDelete, "/api/v1/trainings/"+sessionID+"/exercises/"+exerciseID, nil, nil)
	})
}

// AssignmentMutator groups the assignment write operations.
type AssignmentMutator struct {
	mutation
	c *Client
}

// Assignments returns a fresh assignment mutator.
func (c *Client) Assignments() *AssignmentMutator { return &AssignmentMutator{c: c} }

// Assign links a program to an athlete.
func (m *AssignmentMutator) Assign(ctx context.Context, programID string, input AssignmentInput) (*Assignment, error) {
	var out struct {
		Assignment *Assignment `json:"assignment"`
	}
	err := m.run(m.c, "Programme assigné avec succès", []string{KeyAssignments}, func() error {
		return m.c.do(ctx, http.MethodPost, "/api/v1/programs/"+programID+"/assignments", input, &out)
	})
	return out.Assignment, err
}

// Deactivate ends an assignment.
func (m *AssignmentMutator) Deactivate(ctx context.Context, assignmentID string) error {
	return m.run(m.c, "Assignation désactivée", []string{KeyAssignments}, func() error {
		return m.c.do(ctx, http.MethodDelete, "/api/v1/assignments/"+assignmentID, nil, nil)
	})
}
