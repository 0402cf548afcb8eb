package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/store"
)

type ColumnHandler struct {
	store *store.Store
}

func NewColumnHandler(s *store.Store) *ColumnHandler {
	return &ColumnHandler{store: s}
}

type CreateColumnRequest struct {
	WorkspaceID string `json:"workspaceId" binding:"required"`
	Title       string `json:"title" binding:"required"`
}

type RenameColumnRequest struct {
	Title string `json:"title" binding:"required"`
}

type ShowCompletedRequest struct {
	ShowCompleted bool `json:"showCompleted"`
}

type ReorderTasksRequest struct {
	Tasks []string `json:"tasks" binding:"required"`
}

func (h *ColumnHandler) Create(c *gin.Context) {
	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	col, serr := h.store.CreateColumn(req.WorkspaceID, req.Title)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusCreated, col)
}

func (h *ColumnHandler) Rename(c *gin.Context) {
	var req RenameColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.RenameColumn(c.Param("id"), req.Title); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ColumnHandler) Delete(c *gin.Context) {
	if serr := h.store.DeleteColumn(c.Param("id")); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ColumnHandler) SetShowCompleted(c *gin.Context) {
	var req ShowCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.SetColumnShowCompleted(c.Param("id"), req.ShowCompleted); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTasks lists a column's tasks after applying the active filters, an
// optional ?q= search query, and an optional ?sort= mode (manual, dueDate,
// priority, createdAt).
func (h *ColumnHandler) GetTasks(c *gin.Context) {
	mode := store.SortMode(c.DefaultQuery("sort", string(store.SortManual)))
	switch mode {
	case store.SortManual, store.SortDueDate, store.SortPriority, store.SortCreatedAt:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sort mode"})
		return
	}
	tasks, serr := h.store.QueryColumnTasks(c.Param("id"), mode, c.Query("q"))
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *ColumnHandler) ReorderTasks(c *gin.Context) {
	var req ReorderTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.ReorderColumnTasks(c.Param("id"), req.Tasks); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}
