package store

import "taskdeck/internal/model"

// SubtaskPatch is a partial update of one subtask.
type SubtaskPatch struct {
	Text *string
	Done *bool
}

func normalizeSubtasks(raw []model.Subtask) []model.Subtask {
	out := []model.Subtask{}
	for _, st := range raw {
		text := NormalizeName(st.Text)
		if text == "" {
			continue
		}
		out = append(out, model.Subtask{Text: text, Done: st.Done})
	}
	return out
}

func (s *Store) AddSubtask(taskID, text string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.state.Tasks[taskID]
	if t == nil {
		return errInvalidTarget("task not found")
	}
	normalized := NormalizeName(text)
	if normalized == "" {
		return errRequired("text")
	}
	t.Subtasks = append(t.Subtasks, model.Subtask{Text: normalized})
	s.persistLocked()
	return nil
}

func (s *Store) UpdateSubtask(taskID string, index int, patch SubtaskPatch) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.state.Tasks[taskID]
	if t == nil {
		return errInvalidTarget("task not found")
	}
	if index < 0 || index >= len(t.Subtasks) {
		return errInvalidTarget("subtask index out of range")
	}
	if patch.Text != nil {
		text := NormalizeName(*patch.Text)
		if text == "" {
			return errRequired("text")
		}
		t.Subtasks[index].Text = text
	}
	if patch.Done != nil {
		t.Subtasks[index].Done = *patch.Done
	}
	s.persistLocked()
	return nil
}

func (s *Store) DeleteSubtask(taskID string, index int) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.state.Tasks[taskID]
	if t == nil {
		return errInvalidTarget("task not found")
	}
	if index < 0 || index >= len(t.Subtasks) {
		return errInvalidTarget("subtask index out of range")
	}
	t.Subtasks = append(t.Subtasks[:index], t.Subtasks[index+1:]...)
	s.persistLocked()
	return nil
}

// ReorderSubtasks replaces the whole subtask list. Each element is
// re-normalized to {text, done}, which discards malformed entries produced
// by a stale UI list. Acceptable under the single-writer assumption.
func (s *Store) ReorderSubtasks(taskID string, subtasks []model.Subtask) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.state.Tasks[taskID]
	if t == nil {
		return errInvalidTarget("task not found")
	}
	t.Subtasks = normalizeSubtasks(subtasks)
	s.persistLocked()
	return nil
}
