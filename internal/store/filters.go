package store

import "taskdeck/internal/model"

// ToggleTagFilter adds the tag to the active filter set, or removes it if
// already present.
func (s *Store) ToggleTagFilter(tag string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := NormalizeTag(tag)
	if normalized == "" {
		return errRequired("tag")
	}
	f := &s.state.ActiveFilters
	if f.HasTag(normalized) {
		kept := f.Tags[:0]
		for _, t := range f.Tags {
			if t != normalized {
				kept = append(kept, t)
			}
		}
		f.Tags = kept
	} else {
		f.Tags = append(f.Tags, normalized)
	}
	s.persistLocked()
	return nil
}

// TogglePriorityFilter adds or removes one of the four priorities in the
// active filter set.
func (s *Store) TogglePriorityFilter(priority string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.NormalizePriority(priority)
	if p == "" {
		return errInvalidTarget("unknown priority")
	}
	f := &s.state.ActiveFilters
	if f.HasPriority(p) {
		kept := f.Priorities[:0]
		for _, pr := range f.Priorities {
			if pr != p {
				kept = append(kept, pr)
			}
		}
		f.Priorities = kept
	} else {
		f.Priorities = append(f.Priorities, p)
	}
	s.persistLocked()
	return nil
}

// ClearFilters empties both filter sets. Idempotent.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveFilters = model.ActiveFilters{Tags: []string{}, Priorities: []string{}}
	s.persistLocked()
}

// ActiveFilters returns a copy of the current filter selection.
func (s *Store) ActiveFilters() model.ActiveFilters {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := model.ActiveFilters{
		Tags:       append([]string{}, s.state.ActiveFilters.Tags...),
		Priorities: append([]string{}, s.state.ActiveFilters.Priorities...),
	}
	return out
}

// QueryColumnTasks returns the tasks of a column that pass the active
// filters and search query, sorted by the given mode.
func (s *Store) QueryColumnTasks(columnID string, mode SortMode, query string) ([]*model.Task, *Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.state.Columns[columnID]
	if col == nil {
		return nil, errInvalidTarget("column not found")
	}
	ranks := ManualRanks(s.state, col.WorkspaceID)
	tasks := []*model.Task{}
	for _, id := range s.state.ColumnTaskOrder[columnID] {
		t := s.state.Tasks[id]
		if t == nil || !TaskMatchesFilters(t, s.state.ActiveFilters, query) {
			continue
		}
		if t.IsCompleted && !col.ShowCompleted {
			continue
		}
		tasks = append(tasks, t)
	}
	SortTaskObjects(tasks, mode, ranks)
	return tasks, nil
}
