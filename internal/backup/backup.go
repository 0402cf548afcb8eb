// Package backup encodes snapshots as downloadable JSON files and validates
// uploaded ones before they ever reach the hydration engine.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"taskdeck/internal/store"
)

// Import failures. Malformed JSON syntax is reported distinctly from
// valid-JSON-but-wrong-shape.
var (
	ErrUnsupportedStructure  = errors.New("backup file is not valid JSON")
	ErrMissingRequiredFields = errors.New("backup file is missing required fields")
)

// shapeSchema enforces the structural contract of a backup: workspaces must
// be a list, columns and tasks keyed maps. Everything finer-grained is the
// hydration engine's job.
const shapeSchema = `{
	"type": "object",
	"required": ["workspaces", "columns", "tasks"],
	"properties": {
		"workspaces": {"type": "array"},
		"columns": {"type": "object"},
		"tasks": {"type": "object"},
		"columnTaskOrder": {"type": "object"}
	}
}`

var compiledShape = jsonschema.MustCompileString("backup.schema.json", shapeSchema)

// Decode parses and shape-checks a backup file into a snapshot ready for
// hydration repair.
func Decode(data []byte) (*store.Snapshot, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedStructure, err)
	}
	if err := compiledShape.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingRequiredFields, err)
	}
	var snap store.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingRequiredFields, err)
	}
	return &snap, nil
}

// Encode pretty-prints a snapshot and returns it with the dated filename it
// should be offered under.
func Encode(snap *store.Snapshot, now time.Time) ([]byte, string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("taskdeck-backup-%s.json", now.Format("2006-01-02"))
	return buf.Bytes(), name, nil
}
