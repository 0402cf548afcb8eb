package backup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
)

func validBackup() []byte {
	return []byte(`{
		"appVersion": "1",
		"theme": "dark",
		"currentWorkspaceId": "w1",
		"workspaces": [{"id": "w1", "name": "Main", "columns": ["c1"]}],
		"columns": {"c1": {"workspaceId": "w1", "title": "To Do"}},
		"tasks": {"t1": {"columnId": "c1", "title": "imported"}},
		"columnTaskOrder": {"c1": ["t1"]},
		"activeFilters": {"tags": [], "priorities": []}
	}`)
}

func TestDecodeValidBackup(t *testing.T) {
	snap, err := Decode(validBackup())
	require.NoError(t, err)
	assert.Equal(t, "w1", snap.CurrentWorkspaceID)
	require.Len(t, snap.Workspaces, 1)
	assert.Equal(t, "imported", snap.Tasks["t1"].Title)
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"workspaces": [`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedStructure)
}

func TestDecodeWrongShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"workspaces not a list", `{"workspaces": {}, "columns": {}, "tasks": {}}`},
		{"columns not a map", `{"workspaces": [], "columns": [], "tasks": {}}`},
		{"tasks missing", `{"workspaces": [], "columns": {}}`},
		{"top level not an object", `[1, 2, 3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.body))
			require.Error(t, err)
			// Valid JSON with the wrong shape is reported distinctly from
			// malformed syntax.
			assert.ErrorIs(t, err, ErrMissingRequiredFields)
			assert.NotErrorIs(t, err, ErrUnsupportedStructure)
		})
	}
}

func TestEncodeFilenameCarriesDate(t *testing.T) {
	now := time.Date(2026, 8, 27, 15, 4, 5, 0, time.UTC)
	snap := &store.Snapshot{
		AppVersion: "1",
		Workspaces: []*model.Workspace{{ID: "w1", Name: "Main"}},
		Columns:    map[string]*model.Column{},
		Tasks:      map[string]*model.Task{},
	}
	data, name, err := Encode(snap, now)
	require.NoError(t, err)
	assert.Equal(t, "taskdeck-backup-2026-08-27.json", name)
	// Pretty-printed output.
	assert.Contains(t, string(data), "\n  \"appVersion\"")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	snap, err := Decode(validBackup())
	require.NoError(t, err)

	data, _, err := Encode(snap, time.Now())
	require.NoError(t, err)
	again, err := Decode(data)
	require.NoError(t, err)

	a, err := json.Marshal(snap)
	require.NoError(t, err)
	b, err := json.Marshal(again)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}
