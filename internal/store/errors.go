package store

// Code classifies expected mutation failures.
type Code string

const (
	CodeRequired             Code = "required"
	CodeMaxLengthExceeded    Code = "max_length_exceeded"
	CodeDuplicateColumnName  Code = "duplicate_column_name"
	CodeInvalidTarget        Code = "invalid_target"
	CodeUnsupportedStructure Code = "unsupported_structure"
	CodeMissingFields        Code = "missing_required_fields"
)

// Error is the uniform failure result of a mutation. Mutations never panic
// for expected validation failures; callers render Message inline and can
// branch on Code.
type Error struct {
	Code      Code   `json:"code"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	MaxLength int    `json:"maxLength,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func errRequired(field string) *Error {
	return &Error{Code: CodeRequired, Message: field + " is required", Field: field}
}

func errMaxLength(field string, limit int) *Error {
	return &Error{
		Code:      CodeMaxLengthExceeded,
		Message:   field + " is too long",
		Field:     field,
		MaxLength: limit,
	}
}

func errInvalidTarget(message string) *Error {
	return &Error{Code: CodeInvalidTarget, Message: message}
}
