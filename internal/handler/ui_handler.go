package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
)

// UIHandler exposes the transient UI portions of the store: active filters,
// the confirm/prompt dialog, toasts, and the focused task.
type UIHandler struct {
	store *store.Store
}

func NewUIHandler(s *store.Store) *UIHandler {
	return &UIHandler{store: s}
}

type ToggleTagFilterRequest struct {
	Tag string `json:"tag" binding:"required"`
}

type TogglePriorityFilterRequest struct {
	Priority string `json:"priority" binding:"required"`
}

type OpenDialogRequest struct {
	Variant      string             `json:"variant"`
	Title        string             `json:"title"`
	Message      string             `json:"message"`
	ConfirmLabel string             `json:"confirmLabel"`
	CancelLabel  string             `json:"cancelLabel"`
	HasInput     bool               `json:"hasInput"`
	Input        string             `json:"input"`
	Action       model.DialogAction `json:"action"`
}

type DialogInputRequest struct {
	Input string `json:"input"`
}

type PushToastRequest struct {
	Variant     string `json:"variant"`
	Message     string `json:"message" binding:"required"`
	TimeoutMS   int    `json:"timeoutMs"`
	Dismissible *bool  `json:"dismissible"`
}

type ActiveTaskRequest struct {
	TaskID string `json:"taskId" binding:"required"`
}

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func (h *UIHandler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ActiveFilters())
}

func (h *UIHandler) ToggleTagFilter(c *gin.Context) {
	var req ToggleTagFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.ToggleTagFilter(req.Tag); serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, h.store.ActiveFilters())
}

func (h *UIHandler) TogglePriorityFilter(c *gin.Context) {
	var req TogglePriorityFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.TogglePriorityFilter(req.Priority); serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, h.store.ActiveFilters())
}

func (h *UIHandler) ClearFilters(c *gin.Context) {
	h.store.ClearFilters()
	c.JSON(http.StatusOK, h.store.ActiveFilters())
}

func (h *UIHandler) OpenDialog(c *gin.Context) {
	var req OpenDialogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	h.store.OpenDialog(store.DialogConfig{
		Variant:      req.Variant,
		Title:        req.Title,
		Message:      req.Message,
		ConfirmLabel: req.ConfirmLabel,
		CancelLabel:  req.CancelLabel,
		HasInput:     req.HasInput,
		Input:        req.Input,
		Action:       req.Action,
	})
	c.Status(http.StatusNoContent)
}

func (h *UIHandler) SetDialogInput(c *gin.Context) {
	var req DialogInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	h.store.SetDialogInput(req.Input)
	c.Status(http.StatusNoContent)
}

func (h *UIHandler) ConfirmDialog(c *gin.Context) {
	if serr := h.store.ConfirmDialog(); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UIHandler) CloseDialog(c *gin.Context) {
	h.store.CloseDialog()
	c.Status(http.StatusNoContent)
}

func (h *UIHandler) PushToast(c *gin.Context) {
	var req PushToastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	opts := store.ToastOptions{TimeoutMS: req.TimeoutMS}
	if req.Dismissible != nil && !*req.Dismissible {
		opts.NotDismissible = true
	}
	toast := h.store.PushToast(req.Variant, req.Message, opts)
	c.JSON(http.StatusCreated, toast)
}

func (h *UIHandler) DismissToast(c *gin.Context) {
	h.store.DismissToast(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *UIHandler) ClearToasts(c *gin.Context) {
	h.store.ClearToasts()
	c.Status(http.StatusNoContent)
}

func (h *UIHandler) SetActiveTask(c *gin.Context) {
	var req ActiveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.SetActiveTask(req.TaskID); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UIHandler) ClearActiveTask(c *gin.Context) {
	h.store.ClearActiveTask()
	c.Status(http.StatusNoContent)
}

func (h *UIHandler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	h.store.SetTheme(req.Theme)
	c.Status(http.StatusNoContent)
}
