package apiclient

import (
	"context"
	"errors"
	"sync"
)

// Refresh keys shared between the watchers and the mutation helpers.
const (
	KeyPrograms    = "programs"
	KeyAssignments = "assignments"
	KeyLibrary     = "library"
)

// KeyProgram is the per-program refresh key.
func KeyProgram(id string) string { return "program-" + id }

// KeySessions is the per-program session-list refresh key.
func KeySessions(programID string) string { return "sessions-" + programID }

// KeyExercises is the per-session exercise-list refresh key.
func KeyExercises(sessionID string) string { return "exercises-" + sessionID }

// Watcher tracks one remote read: a data snapshot plus loading and
// error state. It fetches once on creation, again whenever one of its
// refresh keys is notified, and on explicit Refetch. A disabled
// watcher (required id missing) never fetches and reports loading
// false with zero data.
type Watcher[T any] struct {
	mu      sync.Mutex
	loading bool
	err     error
	data    T

	ctx      context.Context
	cancel   context.CancelFunc
	fetch    func(ctx context.Context) (T, error)
	unsubs   []func()
	disabled bool
	closed   bool
}

func newWatcher[T any](ctx context.Context, c *Client, keys []string, disabled bool, fetch func(ctx context.Context) (T, error)) *Watcher[T] {
	wctx, cancel := context.WithCancel(ctx)
	w := &Watcher[T]{
		ctx:      wctx,
		cancel:   cancel,
		fetch:    fetch,
		disabled: disabled,
	}
	if disabled {
		return w
	}

	for _, key := range keys {
		w.unsubs = append(w.unsubs, c.store.Subscribe(key, w.Refetch))
	}
	w.Refetch()
	return w
}

// Loading reports whether a fetch is in flight.
func (w *Watcher[T]) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

// Err returns the last fetch error, nil after a successful fetch.
func (w *Watcher[T]) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Data returns the last successful snapshot; the zero value until the
// first fetch completes.
func (w *Watcher[T]) Data() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.data
}

// Refetch re-runs the fetch unconditionally and replaces the snapshot
// wholesale on success. No-op on a disabled or closed watcher.
func (w *Watcher[T]) Refetch() {
	w.mu.Lock()
	if w.disabled || w.closed {
		w.mu.Unlock()
		return
	}
	w.loading = true
	w.mu.Unlock()

	data, err := w.fetch(w.ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.loading = false
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			// Read failures surface one fixed message regardless of
			// what the server said.
			w.err = errors.New(readErrorMessage)
		} else {
			w.err = err
		}
		return
	}
	w.err = nil
	w.data = data
}

// Close cancels the watcher's context and removes its subscriptions.
func (w *Watcher[T]) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	unsubs := w.unsubs
	w.unsubs = nil
	w.mu.Unlock()

	w.cancel()
	for _, unsub := range unsubs {
		unsub()
	}
}

// WatchPrograms watches the caller's program list.
func (c *Client) WatchPrograms(ctx context.Context) *Watcher[[]Program] {
	return newWatcher(ctx, c, []string{KeyPrograms}, false, func(ctx context.Context) ([]Program, error) {
		var out struct {
			Programs []Program `json:"programs"`
		}
		if err := c.do(ctx, "GET", "/api/v1/programs", nil, &out); err != nil {
			return nil, err
		}
		return out.Programs, nil
	})
}

// WatchProgram watches a single program. An empty id disables the
// watcher.
func (c *Client) WatchProgram(ctx context.Context, programID string) *Watcher[*Program] {
	keys := []string{KeyProgram(programID), KeyPrograms}
	return newWatcher(ctx, c, keys, programID == "", func(ctx context.Context) (*Program, error) {
		var out struct {
			Program *Program `json:"program"`
		}
		if err := c.do(ctx, "GET", "/api/v1/programs/"+programID, nil, &out); err != nil {
			return nil, err
		}
		return out.Program, nil
	})
}

// WatchSessions watches a program's session list. An empty program id
// disables the watcher.
func (c *Client) WatchSessions(ctx context.Context, programID string) *Watcher[[]Session] {
	return newWatcher(ctx, c, []string{KeySessions(programID)}, programID == "", func(ctx context.Context) ([]Session, error) {
		var out struct {
			Sessions []Session `json:"sessions"`
		}
		if err := c.do(ctx, "GET", "/api/v1/programs/"+programID+"/sessions", nil, &out); err != nil {
			return nil, err
		}
		return out.Sessions, nil
	})
}

// WatchExercises watches a session's exercise list. An empty session
// id disables the watcher.
func (c *Client) WatchExercises(ctx context.Context, sessionID string) *Watcher[[]Exercise] {
	return newWatcher(ctx, c, []string{KeyExercises(sessionID)}, sessionID == "", func(ctx context.Context) ([]Exercise, error) {
		var out struct {
			Exercises []Exercise `json:"exercises"`
		}
		if err := c.do(ctx, "GET", "/api/v1/trainings/"+sessionID+"/exercises", nil, &out); err != nil {
			return nil, err
		}
		return out.Exercises, nil
	})
}

// WatchAssignments watches the caller's assignments.
func (c *Client) WatchAssignments(ctx context.Context) *Watcher[[]Assignment] {
	return newWatcher(ctx, c, []string{KeyAssignments}, false, func(ctx context.Context) ([]Assignment, error) {
		var out struct {
			Assignments []Assignment `json:"assignments"`
		}
		if err := c.do(ctx, "GET", "/api/v1/assignments", nil, &out); err != nil {
			return nil, err
		}
		return out.Assignments, nil
	})
}

// WatchLibrary watches the read-only exercise catalog.
func (c *Client) WatchLibrary(ctx context.Context) *Watcher[[]LibraryExercise] {
	return newWatcher(ctx, c, []string{KeyLibrary}, false, func(ctx context.Context) ([]LibraryExercise, error) {
		var out struct {
			Library []LibraryExercise `json:"library"`
		}
		if err := c.do(ctx, "GET", "/api/v1/library", nil, &out); err != nil {
			return nil, err
		}
		return out.Library, nil
	})
}
