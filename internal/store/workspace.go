package store

import "taskdeck/internal/model"

// CreateWorkspace validates the name, creates the workspace with the three
// default columns, and makes it the active workspace.
func (s *Store) CreateWorkspace(name string) (*model.Workspace, *Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized, verr := validateName(s.state, KindWorkspace, name, NameContext{})
	if verr != nil {
		return nil, verr
	}

	w := &model.Workspace{ID: s.newID(), Name: normalized}
	for _, title := range defaultColumnTitles {
		col := &model.Column{ID: s.newID(), WorkspaceID: w.ID, Title: title}
		s.state.Columns[col.ID] = col
		s.state.ColumnTaskOrder[col.ID] = []string{}
		w.Columns = append(w.Columns, col.ID)
	}
	s.state.Workspaces = append(s.state.Workspaces, w)
	s.state.CurrentWorkspaceID = w.ID
	pruneTagFilters(s.state)
	s.persistLocked()
	return w, nil
}

func (s *Store) RenameWorkspace(id, name string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.state.Workspace(id)
	if w == nil {
		return errInvalidTarget("workspace not found")
	}
	normalized, verr := validateName(s.state, KindWorkspace, name, NameContext{})
	if verr != nil {
		return verr
	}
	w.Name = normalized
	s.persistLocked()
	return nil
}

// DeleteWorkspace removes a workspace and cascades to its columns and their
// tasks. Deleting the last remaining workspace is refused. If the deleted
// workspace was active, the first remaining one becomes active and tag
// filters are re-pruned against it.
func (s *Store) DeleteWorkspace(id string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.state.Workspace(id)
	if w == nil {
		return errInvalidTarget("workspace not found")
	}
	if len(s.state.Workspaces) == 1 {
		return errInvalidTarget("cannot delete the last workspace")
	}

	for _, colID := range w.Columns {
		s.deleteColumnLocked(colID)
	}
	for tid, tpl := range s.state.Templates {
		if tpl.WorkspaceID == id {
			delete(s.state.Templates, tid)
		}
	}
	kept := s.state.Workspaces[:0]
	for _, other := range s.state.Workspaces {
		if other.ID != id {
			kept = append(kept, other)
		}
	}
	s.state.Workspaces = kept

	if s.state.CurrentWorkspaceID == id {
		s.state.CurrentWorkspaceID = s.state.Workspaces[0].ID
		pruneTagFilters(s.state)
	}
	s.persistLocked()
	return nil
}

// SwitchWorkspace makes a workspace active and prunes tag filters that have
// no occurrence in it. Priority filters carry over untouched.
func (s *Store) SwitchWorkspace(id string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Workspace(id) == nil {
		return errInvalidTarget("workspace not found")
	}
	s.state.CurrentWorkspaceID = id
	pruneTagFilters(s.state)
	s.persistLocked()
	return nil
}

// ReorderWorkspaceColumns replaces a workspace's column order wholesale.
// Supplied ids must belong to the workspace; columns the caller omitted
// keep their relative order at the end.
func (s *Store) ReorderWorkspaceColumns(workspaceID string, columnIDs []string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.state.Workspace(workspaceID)
	if w == nil {
		return errInvalidTarget("workspace not found")
	}
	owned := make(map[string]bool, len(w.Columns))
	for _, id := range w.Columns {
		owned[id] = true
	}

	next := []string{}
	placed := make(map[string]bool)
	for _, id := range columnIDs {
		if !owned[id] {
			return errInvalidTarget("column does not belong to this workspace")
		}
		if placed[id] {
			continue
		}
		placed[id] = true
		next = append(next, id)
	}
	for _, id := range w.Columns {
		if !placed[id] {
			next = append(next, id)
		}
	}
	w.Columns = next
	s.persistLocked()
	return nil
}

// SetTheme stores the UI theme preference.
func (s *Store) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Theme = theme
	s.persistLocked()
}
