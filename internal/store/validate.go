package store

import (
	"regexp"
	"strings"

	"taskdeck/internal/model"
)

// NameKind selects the validation rules for ValidateName.
type NameKind string

const (
	KindWorkspace NameKind = "workspace"
	KindColumn    NameKind = "column"
	KindTask      NameKind = "task"
)

// Name length limits per kind.
const (
	MaxWorkspaceNameLen = 80
	MaxColumnTitleLen   = 80
	MaxTaskTitleLen     = 200
)

// NameContext carries the extra inputs column validation needs.
type NameContext struct {
	WorkspaceID     string
	ExcludeColumnID string
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeName collapses internal whitespace runs to single spaces and
// trims the result.
func NormalizeName(raw string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(raw, " "))
}

func nameLimit(kind NameKind) int {
	switch kind {
	case KindWorkspace:
		return MaxWorkspaceNameLen
	case KindColumn:
		return MaxColumnTitleLen
	default:
		return MaxTaskTitleLen
	}
}

// validateName normalizes raw and enforces the per-kind rules against the
// given state. It never mutates state; on success it returns the normalized
// value.
func validateName(st *model.State, kind NameKind, raw string, ctx NameContext) (string, *Error) {
	name := NormalizeName(raw)
	if name == "" {
		return "", errRequired("name")
	}
	if limit := nameLimit(kind); len([]rune(name)) > limit {
		return "", errMaxLength("name", limit)
	}
	if kind == KindColumn {
		w := st.Workspace(ctx.WorkspaceID)
		if w == nil {
			return "", errInvalidTarget("workspace not found")
		}
		lowered := strings.ToLower(name)
		for _, colID := range w.Columns {
			if colID == ctx.ExcludeColumnID {
				continue
			}
			col := st.Columns[colID]
			if col != nil && strings.ToLower(col.Title) == lowered {
				return "", &Error{
					Code:    CodeDuplicateColumnName,
					Message: "a column with this name already exists",
					Field:   "name",
				}
			}
		}
	}
	return name, nil
}

// ValidateName is the exported entry point used by callers that want to
// pre-validate input without mutating anything.
func (s *Store) ValidateName(kind NameKind, raw string, ctx NameContext) (string, *Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return validateName(s.state, kind, raw, ctx)
}
