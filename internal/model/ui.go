package model

// ActiveFilters is the process-wide filter selection. It is shared across
// workspaces: switching workspaces prunes tag entries that no longer exist
// in the new workspace but never touches the priority set.
type ActiveFilters struct {
	Tags       []string `json:"tags"`
	Priorities []string `json:"priorities"`
}

func (f *ActiveFilters) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (f *ActiveFilters) HasPriority(p string) bool {
	for _, pr := range f.Priorities {
		if pr == p {
			return true
		}
	}
	return false
}

// Dialog action kinds form a closed table; ConfirmDialog rejects anything
// outside it.
type ActionKind string

const (
	ActionNone            ActionKind = ""
	ActionWorkspaceCreate ActionKind = "workspace_create"
	ActionWorkspaceRename ActionKind = "workspace_rename"
	ActionWorkspaceDelete ActionKind = "workspace_delete"
	ActionColumnDelete    ActionKind = "column_delete"
	ActionTaskDelete      ActionKind = "task_delete"
	ActionFullReset       ActionKind = "full_reset"
)

type DialogAction struct {
	Kind     ActionKind `json:"kind"`
	TargetID string     `json:"targetId,omitempty"`
}

// Dialog is the single transient confirm/prompt request. It is never
// persisted and always resets to the zero value on hydration.
type Dialog struct {
	IsOpen       bool         `json:"isOpen"`
	Variant      string       `json:"variant"`
	Title        string       `json:"title"`
	Message      string       `json:"message"`
	ConfirmLabel string       `json:"confirmLabel"`
	CancelLabel  string       `json:"cancelLabel"`
	HasInput     bool         `json:"hasInput"`
	Input        string       `json:"input"`
	Action       DialogAction `json:"action"`
	Error        string       `json:"error"`
}

// Toast variants.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastWarning = "warning"
	ToastInfo    = "info"
)

type Toast struct {
	ID          string `json:"id"`
	Variant     string `json:"variant"`
	Message     string `json:"message"`
	Dismissible bool   `json:"dismissible"`
	TimeoutMS   int    `json:"timeoutMs"`
}
