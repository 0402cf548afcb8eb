// Package store implements the application state store: the single
// in-memory data model, its mutation API, validation, hydration repair,
// and the tag/sort utilities built on top of it.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"taskdeck/internal/model"
)

const appVersion = "1"

// Default column titles seeded into every new workspace.
var defaultColumnTitles = [3]string{"To Do", "In Progress", "Done"}

const (
	defaultWorkspaceName = "Personal"
	defaultTheme         = "system"
	placeholderTitle     = "Untitled task"
)

// Persister is the durable-storage boundary. Persist is fire-and-forget and
// debounced by the implementation; PersistNow writes synchronously.
type Persister interface {
	Load() ([]byte, bool)
	Persist(data []byte)
	PersistNow(data []byte) error
	Warning() bool
}

// Store owns the application state. All mutations run synchronously under
// a single mutex, preserving the single-writer model even though the HTTP
// layer serves requests concurrently.
type Store struct {
	mu    sync.Mutex
	state *model.State
	sink  Persister
	log   zerolog.Logger

	now   func() time.Time
	newID func() string
}

func New(sink Persister, log zerolog.Logger) *Store {
	return &Store{
		sink:  sink,
		log:   log.With().Str("component", "store").Logger(),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// initializeDefaultData builds the default single-workspace, three-column,
// zero-task state. It is the single construction/reset entry point.
func (s *Store) initializeDefaultData() *model.State {
	st := &model.State{
		AppVersion:      appVersion,
		Theme:           defaultTheme,
		Columns:         make(map[string]*model.Column),
		Tasks:           make(map[string]*model.Task),
		ColumnTaskOrder: make(map[string][]string),
		Templates:       make(map[string]*model.Template),
		ActiveFilters:   model.ActiveFilters{Tags: []string{}, Priorities: []string{}},
		Toasts:          []*model.Toast{},
	}
	w := &model.Workspace{ID: s.newID(), Name: defaultWorkspaceName}
	for _, title := range defaultColumnTitles {
		col := &model.Column{ID: s.newID(), WorkspaceID: w.ID, Title: title}
		st.Columns[col.ID] = col
		st.ColumnTaskOrder[col.ID] = []string{}
		w.Columns = append(w.Columns, col.ID)
	}
	st.Workspaces = []*model.Workspace{w}
	st.CurrentWorkspaceID = w.ID
	return st
}

// FullReset rehydrates the store to the default state and persists
// synchronously, so the reset survives an immediate page close.
func (s *Store) FullReset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.initializeDefaultData()
	s.persistNowLocked()
}

// StorageWarning reports whether the last durable write failed.
func (s *Store) StorageWarning() bool {
	return s.sink.Warning()
}

// persistLocked serializes the persisted subset of state and hands it to
// the sink, debounced. Must be called with the mutex held.
func (s *Store) persistLocked() {
	s.sink.Persist(s.encodeSnapshotLocked())
}

func (s *Store) persistNowLocked() {
	if err := s.sink.PersistNow(s.encodeSnapshotLocked()); err != nil {
		s.log.Error().Err(err).Msg("synchronous persist failed")
	}
}

// View runs fn with read access to the state under the store mutex. fn must
// not retain references to state internals beyond the call.
func (s *Store) View(fn func(st *model.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}
