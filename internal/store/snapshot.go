package store

import (
	"encoding/json"

	"taskdeck/internal/model"
)

// Snapshot is the persisted-subset representation of store state, and also
// the backup-file format. Transient UI fields are never part of it.
// ActiveFilters stays raw because legacy snapshots stored it as a bare tag
// array; hydration migrates either shape.
type Snapshot struct {
	AppVersion         string                    `json:"appVersion"`
	Theme              string                    `json:"theme"`
	CurrentWorkspaceID string                    `json:"currentWorkspaceId"`
	Workspaces         []*model.Workspace        `json:"workspaces"`
	Columns            map[string]*model.Column  `json:"columns"`
	Tasks              map[string]*model.Task    `json:"tasks"`
	ColumnTaskOrder    map[string][]string       `json:"columnTaskOrder"`
	ActiveFilters      json.RawMessage           `json:"activeFilters,omitempty"`
}

// encodeSnapshotLocked marshals the persisted subset of the current state.
// Must be called with the mutex held.
func (s *Store) encodeSnapshotLocked() []byte {
	data, err := json.Marshal(s.snapshotLocked())
	if err != nil {
		// State is always composed of marshalable values; this indicates
		// internal corruption rather than bad input.
		s.log.Error().Err(err).Msg("snapshot marshal failed")
		return nil
	}
	return data
}

func (s *Store) snapshotLocked() *Snapshot {
	filters, _ := json.Marshal(s.state.ActiveFilters)
	return &Snapshot{
		AppVersion:         s.state.AppVersion,
		Theme:              s.state.Theme,
		CurrentWorkspaceID: s.state.CurrentWorkspaceID,
		Workspaces:         s.state.Workspaces,
		Columns:            s.state.Columns,
		Tasks:              s.state.Tasks,
		ColumnTaskOrder:    s.state.ColumnTaskOrder,
		ActiveFilters:      filters,
	}
}

// ExportSnapshot returns the current persisted-subset snapshot. The caller
// must treat it as read-only; it shares entity pointers with live state.
func (s *Store) ExportSnapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// decodeFilters parses the current {tags, priorities} filter shape out of a
// raw snapshot field, or migrates the legacy single-array shape. Entries
// that are not well-formed strings are dropped.
func decodeFilters(raw json.RawMessage) model.ActiveFilters {
	out := model.ActiveFilters{Tags: []string{}, Priorities: []string{}}
	if len(raw) == 0 {
		return out
	}
	var current struct {
		Tags       []interface{} `json:"tags"`
		Priorities []interface{} `json:"priorities"`
	}
	if err := json.Unmarshal(raw, &current); err == nil {
		out.Tags = stringEntries(current.Tags, NormalizeTag)
		out.Priorities = stringEntries(current.Priorities, model.NormalizePriority)
		return out
	}
	var legacy []interface{}
	if err := json.Unmarshal(raw, &legacy); err == nil {
		out.Tags = stringEntries(legacy, NormalizeTag)
	}
	return out
}

func stringEntries(entries []interface{}, normalize func(string) string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, e := range entries {
		s, ok := e.(string)
		if !ok {
			continue
		}
		if n := normalize(s); n != "" && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
