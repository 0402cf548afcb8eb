package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/backup"
	"taskdeck/internal/model"
	"taskdeck/internal/store"
)

// BackupHandler serves backup export/import, the full state dump, and the
// full-data reset.
type BackupHandler struct {
	store *store.Store
}

func NewBackupHandler(s *store.Store) *BackupHandler {
	return &BackupHandler{store: s}
}

// GetState returns the persisted-subset snapshot plus the transient fields
// a client needs to render.
func (h *BackupHandler) GetState(c *gin.Context) {
	snap := h.store.ExportSnapshot()
	var dialog model.Dialog
	var toasts []*model.Toast
	var activeTaskID string
	h.store.View(func(st *model.State) {
		dialog = st.Dialog
		toasts = append(toasts, st.Toasts...)
		activeTaskID = st.ActiveTaskID
	})
	if toasts == nil {
		toasts = []*model.Toast{}
	}
	c.JSON(http.StatusOK, gin.H{
		"snapshot":       snap,
		"dialog":         dialog,
		"toasts":         toasts,
		"activeTaskId":   activeTaskID,
		"storageWarning": h.store.StorageWarning(),
	})
}

// Export offers the current snapshot as a pretty-printed JSON download
// named with the current date.
func (h *BackupHandler) Export(c *gin.Context) {
	data, name, err := backup.Encode(h.store.ExportSnapshot(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode backup"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/json", data)
}

// Import validates an uploaded backup and hydrates the store from it.
func (h *BackupHandler) Import(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}
	snap, err := backup.Decode(data)
	if err != nil {
		code := store.CodeMissingFields
		if errors.Is(err, backup.ErrUnsupportedStructure) {
			code = store.CodeUnsupportedStructure
		}
		respondError(c, &store.Error{Code: code, Message: err.Error()})
		return
	}
	h.store.Hydrate(snap)
	c.JSON(http.StatusOK, h.store.ExportSnapshot())
}

// Reset rehydrates the default state and persists it synchronously.
func (h *BackupHandler) Reset(c *gin.Context) {
	h.store.FullReset()
	c.JSON(http.StatusOK, h.store.ExportSnapshot())
}
