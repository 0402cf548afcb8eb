package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
)

type TemplateHandler struct {
	store *store.Store
}

func NewTemplateHandler(s *store.Store) *TemplateHandler {
	return &TemplateHandler{store: s}
}

type TemplateRequest struct {
	WorkspaceID string          `json:"workspaceId"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Priority    string          `json:"priority"`
	Color       string          `json:"color"`
	Subtasks    []model.Subtask `json:"subtasks"`
}

func (r *TemplateRequest) payload() store.TemplatePayload {
	return store.TemplatePayload{
		Name:        r.Name,
		Description: r.Description,
		Tags:        r.Tags,
		Priority:    r.Priority,
		Color:       r.Color,
		Subtasks:    r.Subtasks,
	}
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	tpl, serr := h.store.CreateTemplate(req.WorkspaceID, req.payload())
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.UpdateTemplate(c.Param("id"), req.payload()); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	if serr := h.store.DeleteTemplate(c.Param("id")); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}
