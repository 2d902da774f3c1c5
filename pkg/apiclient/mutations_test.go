package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureNotifier records every toast for assertions.
type captureNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *captureNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *captureNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *captureNotifier) lastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

func (n *captureNotifier) lastSuccess() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.successes) == 0 {
		return ""
	}
	return n.successes[len(n.successes)-1]
}

func TestCreateProgramNotifiesAndInvalidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/programs", r.URL.Path)

		var in ProgramInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Programme créé avec succès",
			"program": Program{ID: "p1", Name: in.Name, Status: "draft"},
		})
	}))
	defer srv.Close()

	notifier := &captureNotifier{}
	c := New(srv.URL, WithNotifier(notifier))
	m := c.Programs()

	program, err := m.Create(context.Background(), ProgramInput{Name: "Plan A"})
	require.NoError(t, err)
	require.NotNil(t, program)
	assert.Equal(t, "p1", program.ID)

	assert.Equal(t, "Programme créé avec succès", notifier.lastSuccess())
	assert.Empty(t, notifier.errors)
	assert.Equal(t, uint64(1), c.Store().Count(KeyPrograms))
	assert.False(t, m.Pending())
}

func TestMutationSurfacesServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Erreur de validation"})
	}))
	defer srv.Close()

	notifier := &captureNotifier{}
	c := New(srv.URL, WithNotifier(notifier))
	m := c.Programs()

	_, err := m.Create(context.Background(), ProgramInput{Name: "x"})
	require.Error(t, err)
	assert.Equal(t, "Erreur de validation", err.Error())
	assert.Equal(t, "Erreur de validation", notifier.lastError())
	assert.Empty(t, notifier.successes)

	// A failed mutation never marks anything stale.
	assert.Equal(t, uint64(0), c.Store().Count(KeyPrograms))
	assert.False(t, m.Pending())
}

func TestMutationFallbackMessageWhenBodyUnparseable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	notifier := &captureNotifier{}
	c := New(srv.URL, WithNotifier(notifier))

	err := c.Programs().Delete(context.Background(), "p1")
	require.Error(t, err)
	assert.Equal(t, fallbackErrorMessage, err.Error())
	assert.Equal(t, fallbackErrorMessage, notifier.lastError())
}

func TestUpdateProgramInvalidatesBothKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/v1/programs/p1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"program": Program{ID: "p1", Name: "Plan B"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	name := "Plan B"
	program, err := c.Programs().Update(context.Background(), "p1", ProgramUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Plan B", program.Name)

	assert.Equal(t, uint64(1), c.Store().Count(KeyProgram("p1")))
	assert.Equal(t, uint64(1), c.Store().Count(KeyPrograms))
}

func TestExerciseMutationsInvalidateSessionKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"exercise": Exercise{ID: "e1", SessionID: "s1", Name: "Squat"},
			})
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	m := c.Exercises()

	_, err := m.Create(context.Background(), "s1", ExerciseInput{Name: "Squat", Sets: 3, Reps: 5, Order: 1})
	require.NoError(t, err)
	require.NoError(t, m.Delete(context.Background(), "s1", "e1"))

	assert.Equal(t, uint64(2), c.Store().Count(KeyExercises("s1")))
}

// Create-then-list: a program created through the mutator shows up in
// a subscribed watcher without an explicit refetch.
func TestCreateThenListScenario(t *testing.T) {
	var (
		mu       sync.Mutex
		programs []Program
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case r.Method == http.MethodPost:
			var in ProgramInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			p := Program{ID: "p1", Name: in.Name, Status: "draft"}
			programs = append(programs, p)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{"message": "Programme créé avec succès", "program": p})
		default:
			json.NewEncoder(w).Encode(map[string]interface{}{"programs": programs})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	w := c.WatchPrograms(context.Background())
	defer w.Close()
	require.Empty(t, w.Data())

	_, err := c.Programs().Create(context.Background(), ProgramInput{Name: "Plan A"})
	require.NoError(t, err)

	require.Len(t, w.Data(), 1)
	assert.Equal(t, "Plan A", w.Data()[0].Name)
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"token": "jwt-token",
				"user":  User{ID: "u1", Email: "coach@example.com", IsCoach: true},
			})
		case "/api/v1/me":
			assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]interface{}{"user": User{ID: "u1"}})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.Login(context.Background(), "coach@example.com", "secret123")
	require.NoError(t, err)
	assert.True(t, user.IsCoach)
	assert.Equal(t, "jwt-token", c.Token())

	_, err = c.Me(context.Background())
	require.NoError(t, err)
}
