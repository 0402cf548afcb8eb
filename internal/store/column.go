package store

import "taskdeck/internal/model"

func (s *Store) CreateColumn(workspaceID, title string) (*model.Column, *Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized, verr := validateName(s.state, KindColumn, title, NameContext{WorkspaceID: workspaceID})
	if verr != nil {
		return nil, verr
	}
	w := s.state.Workspace(workspaceID)
	col := &model.Column{ID: s.newID(), WorkspaceID: workspaceID, Title: normalized}
	s.state.Columns[col.ID] = col
	s.state.ColumnTaskOrder[col.ID] = []string{}
	w.Columns = append(w.Columns, col.ID)
	s.persistLocked()
	return col, nil
}

func (s *Store) RenameColumn(id, title string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.state.Columns[id]
	if col == nil {
		return errInvalidTarget("column not found")
	}
	normalized, verr := validateName(s.state, KindColumn, title, NameContext{
		WorkspaceID:     col.WorkspaceID,
		ExcludeColumnID: id,
	})
	if verr != nil {
		return verr
	}
	col.Title = normalized
	s.persistLocked()
	return nil
}

// DeleteColumn removes a column and every task in it.
func (s *Store) DeleteColumn(id string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.state.Columns[id]
	if col == nil {
		return errInvalidTarget("column not found")
	}
	s.deleteColumnLocked(id)
	if w := s.state.Workspace(col.WorkspaceID); w != nil {
		kept := w.Columns[:0]
		for _, cid := range w.Columns {
			if cid != id {
				kept = append(kept, cid)
			}
		}
		w.Columns = kept
	}
	s.persistLocked()
	return nil
}

// deleteColumnLocked removes the column, its order list, and its tasks, but
// leaves the owning workspace's column list to the caller.
func (s *Store) deleteColumnLocked(id string) {
	for _, taskID := range s.state.ColumnTaskOrder[id] {
		delete(s.state.Tasks, taskID)
		if s.state.ActiveTaskID == taskID {
			s.state.ActiveTaskID = ""
		}
	}
	delete(s.state.ColumnTaskOrder, id)
	delete(s.state.Columns, id)
}

func (s *Store) SetColumnShowCompleted(id string, show bool) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.state.Columns[id]
	if col == nil {
		return errInvalidTarget("column not found")
	}
	col.ShowCompleted = show
	s.persistLocked()
	return nil
}
