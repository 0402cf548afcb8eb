package model

import "time"

// Task priorities, highest first. The empty string means unassigned.
const (
	PriorityI   = "I"
	PriorityII  = "II"
	PriorityIII = "III"
	PriorityIV  = "IV"
)

type Subtask struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type Task struct {
	ID          string     `json:"id"`
	ColumnID    string     `json:"columnId"`
	Title       string     `json:"title"`
	Tags        []string   `json:"tags"`
	Priority    string     `json:"priority"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	DueDate     string     `json:"dueDate"`
	Subtasks    []Subtask  `json:"subtasks"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NormalizePriority coerces raw to one of the four enumerated priorities,
// or to the empty string (none) for anything else.
func NormalizePriority(raw string) string {
	switch raw {
	case PriorityI, PriorityII, PriorityIII, PriorityIV:
		return raw
	}
	return ""
}

// PriorityRank orders priorities for sorting: I < II < III < IV, with
// unassigned sorting last.
func PriorityRank(p string) int {
	switch p {
	case PriorityI:
		return 0
	case PriorityII:
		return 1
	case PriorityIII:
		return 2
	case PriorityIV:
		return 3
	}
	return 4
}

// HasTag reports whether the task carries the given normalized tag.
func (t *Task) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}
