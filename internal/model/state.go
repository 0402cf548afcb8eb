package model

// State is the single in-memory application state. It is owned by the store
// and only ever mutated through the store's mutation API; entities are
// mutated in place and never replaced wholesale outside of hydration.
type State struct {
	AppVersion         string
	Theme              string
	CurrentWorkspaceID string
	Workspaces         []*Workspace
	Columns            map[string]*Column
	Tasks              map[string]*Task
	ColumnTaskOrder    map[string][]string
	Templates          map[string]*Template
	ActiveFilters      ActiveFilters

	// Transient UI state, never persisted.
	ActiveTaskID string
	Dialog       Dialog
	Toasts       []*Toast
}

// Workspace returns the workspace with the given id, or nil.
func (s *State) Workspace(id string) *Workspace {
	for _, w := range s.Workspaces {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// ActiveWorkspace returns the currently selected workspace, or nil if the
// current id does not resolve.
func (s *State) ActiveWorkspace() *Workspace {
	return s.Workspace(s.CurrentWorkspaceID)
}

// WorkspaceTags collects the tag vocabulary of a workspace: every tag
// carried by any task in any of its columns.
func (s *State) WorkspaceTags(workspaceID string) map[string]bool {
	tags := make(map[string]bool)
	w := s.Workspace(workspaceID)
	if w == nil {
		return tags
	}
	for _, colID := range w.Columns {
		for _, taskID := range s.ColumnTaskOrder[colID] {
			t := s.Tasks[taskID]
			if t == nil {
				continue
			}
			for _, tag := range t.Tags {
				tags[tag] = true
			}
		}
	}
	return tags
}
