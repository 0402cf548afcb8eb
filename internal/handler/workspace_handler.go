package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
)

type WorkspaceHandler struct {
	store *store.Store
}

func NewWorkspaceHandler(s *store.Store) *WorkspaceHandler {
	return &WorkspaceHandler{store: s}
}

type CreateWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

type RenameWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

type ReorderColumnsRequest struct {
	Columns []string `json:"columns" binding:"required"`
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	var req CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	w, serr := h.store.CreateWorkspace(req.Name)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *WorkspaceHandler) GetAll(c *gin.Context) {
	var workspaces []*model.Workspace
	var current string
	h.store.View(func(st *model.State) {
		workspaces = append(workspaces, st.Workspaces...)
		current = st.CurrentWorkspaceID
	})
	c.JSON(http.StatusOK, gin.H{
		"workspaces":         workspaces,
		"currentWorkspaceId": current,
	})
}

func (h *WorkspaceHandler) Rename(c *gin.Context) {
	var req RenameWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.RenameWorkspace(c.Param("id"), req.Name); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	if serr := h.store.DeleteWorkspace(c.Param("id")); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) Activate(c *gin.Context) {
	if serr := h.store.SwitchWorkspace(c.Param("id")); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) ReorderColumns(c *gin.Context) {
	var req ReorderColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.ReorderWorkspaceColumns(c.Param("id"), req.Columns); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) GetTemplates(c *gin.Context) {
	templates := h.store.WorkspaceTemplates(c.Param("id"))
	if templates == nil {
		templates = []*model.Template{}
	}
	c.JSON(http.StatusOK, templates)
}
