package store

import (
	"strings"

	"taskdeck/internal/model"
)

// TemplatePayload is the create/update input for task templates.
type TemplatePayload struct {
	Name        string
	Description string
	Tags        []string
	Priority    string
	Color       string
	Subtasks    []model.Subtask
}

func (s *Store) CreateTemplate(workspaceID string, payload TemplatePayload) (*model.Template, *Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Workspace(workspaceID) == nil {
		return nil, errInvalidTarget("workspace not found")
	}
	name, verr := validateName(s.state, KindWorkspace, payload.Name, NameContext{})
	if verr != nil {
		return nil, verr
	}
	tpl := &model.Template{
		ID:          s.newID(),
		WorkspaceID: workspaceID,
		Name:        name,
		Description: payload.Description,
		Tags:        NormalizeTags(payload.Tags),
		Priority:    model.NormalizePriority(payload.Priority),
		Color:       payload.Color,
		Subtasks:    normalizeSubtasks(payload.Subtasks),
	}
	s.state.Templates[tpl.ID] = tpl
	return tpl, nil
}

func (s *Store) UpdateTemplate(id string, payload TemplatePayload) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tpl := s.state.Templates[id]
	if tpl == nil {
		return errInvalidTarget("template not found")
	}
	name, verr := validateName(s.state, KindWorkspace, payload.Name, NameContext{})
	if verr != nil {
		return verr
	}
	tpl.Name = name
	tpl.Description = payload.Description
	tpl.Tags = NormalizeTags(payload.Tags)
	tpl.Priority = model.NormalizePriority(payload.Priority)
	tpl.Color = payload.Color
	tpl.Subtasks = normalizeSubtasks(payload.Subtasks)
	return nil
}

func (s *Store) DeleteTemplate(id string) *Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Templates[id] == nil {
		return errInvalidTarget("template not found")
	}
	delete(s.state.Templates, id)
	return nil
}

// WorkspaceTemplates lists a workspace's templates. Order is unspecified.
func (s *Store) WorkspaceTemplates(workspaceID string) []*model.Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*model.Template
	for _, tpl := range s.state.Templates {
		if tpl.WorkspaceID == workspaceID {
			out = append(out, tpl)
		}
	}
	return out
}

// findTemplateLocked resolves a "/name" command against a workspace's
// templates, case-insensitively. The command token has no spaces, so the
// match also ignores hyphens-for-spaces in the template name.
func (s *Store) findTemplateLocked(workspaceID, name string) *model.Template {
	want := strings.ToLower(name)
	for _, tpl := range s.state.Templates {
		if tpl.WorkspaceID != workspaceID {
			continue
		}
		got := strings.ToLower(tpl.Name)
		if got == want || strings.ReplaceAll(got, " ", "-") == want {
			return tpl
		}
	}
	return nil
}
