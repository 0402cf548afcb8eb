package store

import (
	"strings"

	"taskdeck/internal/model"
)

// TaskPayload is the structured create input.
type TaskPayload struct {
	Title       string
	Description string
	Color       string
	DueDate     string
	Priority    string
	Tags        []string
	Subtasks    []model.Subtask
}

// TaskPatch is a partial update; nil fields keep their current value.
type TaskPatch struct {
	Title       *string
	Description *string
	Color       *string
	DueDate     *string
	Priority    *string
	Tags        *[]string
	ColumnID    *string
	IsCompleted *bool
}

// CreateTaskFromText creates a task from raw quick-add text. A leading
// "/name" selects a template from the column's workspace; hashtag tokens in
// the remaining text become tags before the title is validated.
func (s *Store) CreateTaskFromText(columnID, text string) (*model.Task, *Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.state.Columns[columnID]
	if col == nil {
		return nil, errInvalidTarget("column not found")
	}

	payload := TaskPayload{}
	if name, rest, ok := ParseTemplateCommand(text); ok {
		tpl := s.findTemplateLocked(col.WorkspaceID, name)
		if tpl == nil {
			return nil, errInvalidTarget("no template named " + name)
		}
		payload.Description = tpl.Description
		payload.Color = tpl.Color
		payload.Priority = tpl.Priority
		payload.Tags = append(payload.Tags, tpl.Tags...)
		payload.Subtasks = append(payload.Subtasks, tpl.Subtasks...)
		text = rest
		if NormalizeName(text) == "" {
			text = tpl.Name
		}
	}

	title, tags := ExtractTags(text)
	payload.Title = title
	payload.Tags = append(payload.Tags, tags...)
	return s.createTaskLocked(columnID, payload)
}

// CreateTask creates a task from a structured payload.
func (s *Store) CreateTask(columnID string, payload TaskPayload) (*model.Task, *Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Columns[columnID] == nil {
		return nil, errInvalidTarget("column not found")
	}
	return s.createTaskLocked(columnID, payload)
}

func (s *Store) createTaskLocked(columnID string, payload TaskPayload) (*model.Task, *Error) {
	title, verr := validateName(s.state, KindTask, payload.Title, NameContext{})
	if verr != nil {
		return nil, verr
	}

	subtasks := normalizeSubtasks(payload.Subtasks)
	t := &model.Task{
		ID:          s.newID(),
		ColumnID:    columnID,
		Title:       title,
		Tags:        NormalizeTags(payload.Tags),
		Priority:    model.NormalizePriority(payload.Priority),
		Description: payload.Description,
		Color:       payload.Color,
		DueDate:     payload.DueDate,
		Subtasks:    subtasks,
		CreatedAt:   s.now(),
	}
	s.state.Tasks[t.ID] = t
	s.state.ColumnTaskOrder[columnID] = append(s.state.ColumnTaskOrder[columnID], t.ID)
	s.persistLocked()
	return t, nil
}

// UpdateTask applies a partial patch. Changing ColumnID atomically moves
// the task to the end of the target column's order list.
func (s *Store) UpdateTask(id string, patch TaskPatch) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.state.Tasks[id]
	if t == nil {
		return errInvalidTarget("task not found")
	}

	if patch.Title != nil {
		title, verr := validateName(s.state, KindTask, *patch.Title, NameContext{})
		if verr != nil {
			return verr
		}
		t.Title = title
	}
	if patch.ColumnID != nil && *patch.ColumnID != t.ColumnID {
		target := s.state.Columns[*patch.ColumnID]
		if target == nil {
			return errInvalidTarget("target column not found")
		}
		s.removeFromOrderLocked(t.ColumnID, id)
		s.state.ColumnTaskOrder[target.ID] = append(s.state.ColumnTaskOrder[target.ID], id)
		t.ColumnID = target.ID
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Color != nil {
		t.Color = *patch.Color
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.Priority != nil {
		t.Priority = model.NormalizePriority(*patch.Priority)
	}
	if patch.Tags != nil {
		t.Tags = NormalizeTags(*patch.Tags)
	}
	if patch.IsCompleted != nil {
		setCompleted(t, *patch.IsCompleted, s)
	}
	s.persistLocked()
	return nil
}

func setCompleted(t *model.Task, done bool, s *Store) {
	if done == t.IsCompleted {
		return
	}
	t.IsCompleted = done
	if done {
		now := s.now()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
}

func (s *Store) DeleteTask(id string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.state.Tasks[id]
	if t == nil {
		return errInvalidTarget("task not found")
	}
	s.removeFromOrderLocked(t.ColumnID, id)
	delete(s.state.Tasks, id)
	if s.state.ActiveTaskID == id {
		s.state.ActiveTaskID = ""
	}
	s.persistLocked()
	return nil
}

// MoveTask moves a task from one column to a position in another (or the
// same) column. The index is clamped to [0, len(target)].
func (s *Store) MoveTask(id, fromColumnID, toColumnID string, index int) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.state.Tasks[id]
	if t == nil {
		return errInvalidTarget("task not found")
	}
	if t.ColumnID != fromColumnID {
		return errInvalidTarget("task is not in the source column")
	}
	if s.state.Columns[toColumnID] == nil {
		return errInvalidTarget("target column not found")
	}

	s.removeFromOrderLocked(fromColumnID, id)
	target := s.state.ColumnTaskOrder[toColumnID]
	if index < 0 {
		index = 0
	}
	if index > len(target) {
		index = len(target)
	}
	target = append(target, "")
	copy(target[index+1:], target[index:])
	target[index] = id
	s.state.ColumnTaskOrder[toColumnID] = target
	t.ColumnID = toColumnID
	s.persistLocked()
	return nil
}

// ReorderColumnTasks replaces a column's manual order wholesale. The open
// and completed lists render separately in the UI but share one order
// array, so tasks the caller omitted are preserved: open ones first, then
// completed ones, each keeping their previous relative order.
func (s *Store) ReorderColumnTasks(columnID string, taskIDs []string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Columns[columnID] == nil {
		return errInvalidTarget("column not found")
	}

	next := []string{}
	placed := make(map[string]bool)
	for _, id := range taskIDs {
		t := s.state.Tasks[id]
		if t == nil || t.ColumnID != columnID || placed[id] {
			continue
		}
		placed[id] = true
		next = append(next, id)
	}
	var omittedDone []string
	for _, id := range s.state.ColumnTaskOrder[columnID] {
		if placed[id] {
			continue
		}
		if t := s.state.Tasks[id]; t != nil && t.IsCompleted {
			omittedDone = append(omittedDone, id)
			continue
		}
		placed[id] = true
		next = append(next, id)
	}
	next = append(next, omittedDone...)
	s.state.ColumnTaskOrder[columnID] = next
	s.persistLocked()
	return nil
}

func (s *Store) removeFromOrderLocked(columnID, taskID string) {
	order := s.state.ColumnTaskOrder[columnID]
	kept := order[:0]
	for _, id := range order {
		if id != taskID {
			kept = append(kept, id)
		}
	}
	s.state.ColumnTaskOrder[columnID] = kept
}

// SetDueDate attaches a due date string to the task. The value is opaque:
// it is not date-validated beyond being stored.
func (s *Store) SetDueDate(id, dueDate string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.state.Tasks[id]
	if t == nil {
		return errInvalidTarget("task not found")
	}
	t.DueDate = strings.TrimSpace(dueDate)
	s.persistLocked()
	return nil
}

// SetPriority sets the task priority; values outside the four enumerated
// ones are coerced to none.
func (s *Store) SetPriority(id, priority string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.state.Tasks[id]
	if t == nil {
		return errInvalidTarget("task not found")
	}
	t.Priority = model.NormalizePriority(priority)
	s.persistLocked()
	return nil
}

// SetActiveTask marks a task as focused in the UI. Transient; not persisted.
func (s *Store) SetActiveTask(id string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Tasks[id] == nil {
		return errInvalidTarget("task not found")
	}
	s.state.ActiveTaskID = id
	return nil
}

func (s *Store) ClearActiveTask() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveTaskID = ""
}
