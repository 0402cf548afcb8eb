package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/handler"
	"taskdeck/internal/model"
	"taskdeck/internal/persist"
	"taskdeck/internal/store"
)

func setupTest(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv, err := persist.NewFileKV(t.TempDir())
	require.NoError(t, err)
	adapter := persist.NewAdapter(kv, "snapshot", 5*time.Millisecond, zerolog.Nop())
	st := store.New(adapter, zerolog.Nop())
	st.Hydrate(nil)

	r := gin.New()
	workspaceHandler := handler.NewWorkspaceHandler(st)
	columnHandler := handler.NewColumnHandler(st)
	taskHandler := handler.NewTaskHandler(st)
	uiHandler := handler.NewUIHandler(st)
	backupHandler := handler.NewBackupHandler(st)

	r.GET("/state", backupHandler.GetState)
	r.GET("/backup/export", backupHandler.Export)
	r.POST("/backup/import", backupHandler.Import)
	r.POST("/workspaces", workspaceHandler.Create)
	r.GET("/workspaces", workspaceHandler.GetAll)
	r.PUT("/columns/:id", columnHandler.Rename)
	r.GET("/columns/:id/tasks", columnHandler.GetTasks)
	r.POST("/tasks", taskHandler.Create)
	r.POST("/filters/tags/toggle", uiHandler.ToggleTagFilter)
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func activeColumns(st *store.Store) []string {
	var cols []string
	st.View(func(s *model.State) {
		cols = append(cols, s.ActiveWorkspace().Columns...)
	})
	return cols
}

func TestCreateTaskFromText(t *testing.T) {
	r, st := setupTest(t)
	cols := activeColumns(st)

	resp := doJSON(t, r, "POST", "/tasks", gin.H{
		"columnId": cols[0],
		"text":     "Ship release #urgent #urgent",
	})
	assert.Equal(t, http.StatusCreated, resp.Code)

	var task model.Task
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &task))
	assert.Equal(t, "Ship release", task.Title)
	assert.Equal(t, []string{"urgent"}, task.Tags)
}

func TestCreateTaskUnknownColumn(t *testing.T) {
	r, _ := setupTest(t)

	resp := doJSON(t, r, "POST", "/tasks", gin.H{
		"columnId": "missing",
		"text":     "goes nowhere",
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestRenameColumnDuplicateReturnsConflict(t *testing.T) {
	r, st := setupTest(t)
	cols := activeColumns(st)

	resp := doJSON(t, r, "PUT", "/columns/"+cols[0], gin.H{"title": "dOnE"})
	assert.Equal(t, http.StatusConflict, resp.Code)

	var body struct {
		Error store.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, store.CodeDuplicateColumnName, body.Error.Code)
}

func TestCreateWorkspaceValidation(t *testing.T) {
	r, _ := setupTest(t)

	resp := doJSON(t, r, "POST", "/workspaces", gin.H{"name": "Side work"})
	assert.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, r, "POST", "/workspaces", gin.H{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, r, "GET", "/workspaces", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	var listing struct {
		Workspaces []model.Workspace `json:"workspaces"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listing))
	assert.Len(t, listing.Workspaces, 2)
}

func TestGetColumnTasksSortAndSearch(t *testing.T) {
	r, st := setupTest(t)
	cols := activeColumns(st)

	for _, body := range []gin.H{
		{"columnId": cols[0], "title": "alpha", "dueDate": "2026-03-20", "priority": "IV"},
		{"columnId": cols[0], "title": "beta", "dueDate": "2026-03-18", "priority": "I"},
		{"columnId": cols[0], "title": "gamma"},
	} {
		resp := doJSON(t, r, "POST", "/tasks", body)
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	resp := doJSON(t, r, "GET", "/columns/"+cols[0]+"/tasks?sort=dueDate", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var tasks []model.Task
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tasks))
	require.Len(t, tasks, 3)
	assert.Equal(t, "beta", tasks[0].Title)
	assert.Equal(t, "alpha", tasks[1].Title)
	assert.Equal(t, "gamma", tasks[2].Title)

	resp = doJSON(t, r, "GET", "/columns/"+cols[0]+"/tasks?q=GAM", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "gamma", tasks[0].Title)

	resp = doJSON(t, r, "GET", "/columns/"+cols[0]+"/tasks?sort=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestBackupExportImportRoundTrip(t *testing.T) {
	r, st := setupTest(t)
	cols := activeColumns(st)

	resp := doJSON(t, r, "POST", "/tasks", gin.H{"columnId": cols[0], "text": "keep me #safe"})
	require.Equal(t, http.StatusCreated, resp.Code)

	export := doJSON(t, r, "GET", "/backup/export", nil)
	require.Equal(t, http.StatusOK, export.Code)
	assert.Contains(t, export.Header().Get("Content-Disposition"), "taskdeck-backup-")

	before, err := json.Marshal(st.ExportSnapshot())
	require.NoError(t, err)

	imp := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/backup/import", bytes.NewReader(export.Body.Bytes()))
	require.NoError(t, err)
	r.ServeHTTP(imp, req)
	require.Equal(t, http.StatusOK, imp.Code)

	after, err := json.Marshal(st.ExportSnapshot())
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestBackupImportRejectsBadPayloads(t *testing.T) {
	r, _ := setupTest(t)

	imp := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/backup/import", bytes.NewReader([]byte("{oops")))
	r.ServeHTTP(imp, req)
	assert.Equal(t, http.StatusBadRequest, imp.Code)
	var body struct {
		Error store.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(imp.Body.Bytes(), &body))
	assert.Equal(t, store.CodeUnsupportedStructure, body.Error.Code)

	imp = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/backup/import", bytes.NewReader([]byte(`{"workspaces": 5}`)))
	r.ServeHTTP(imp, req)
	assert.Equal(t, http.StatusBadRequest, imp.Code)
	require.NoError(t, json.Unmarshal(imp.Body.Bytes(), &body))
	assert.Equal(t, store.CodeMissingFields, body.Error.Code)
}

func TestToggleTagFilter(t *testing.T) {
	r, st := setupTest(t)
	cols := activeColumns(st)
	resp := doJSON(t, r, "POST", "/tasks", gin.H{"columnId": cols[0], "text": "chores #home"})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, r, "POST", "/filters/tags/toggle", gin.H{"tag": "home"})
	require.Equal(t, http.StatusOK, resp.Code)
	var filters model.ActiveFilters
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &filters))
	assert.Equal(t, []string{"home"}, filters.Tags)

	resp = doJSON(t, r, "POST", "/filters/tags/toggle", gin.H{"tag": "home"})
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &filters))
	assert.Empty(t, filters.Tags)
}

func TestGetStateIncludesTransientsAndWarning(t *testing.T) {
	r, st := setupTest(t)
	st.PushToast(model.ToastInfo, "hello", store.ToastOptions{})

	resp := doJSON(t, r, "GET", "/state", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Snapshot       store.Snapshot `json:"snapshot"`
		Toasts         []model.Toast  `json:"toasts"`
		StorageWarning bool           `json:"storageWarning"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Snapshot.Workspaces, 1)
	require.Len(t, body.Toasts, 1)
	assert.Equal(t, "hello", body.Toasts[0].Message)
	assert.False(t, body.StorageWarning)
}
