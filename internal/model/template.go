package model

// Template is a reusable task skeleton scoped to a workspace. Templates are
// addressable from quick-add text as "/name" followed by the task title.
type Template struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Priority    string    `json:"priority"`
	Color       string    `json:"color"`
	Subtasks    []Subtask `json:"subtasks"`
}
