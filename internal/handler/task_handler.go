package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
)

type TaskHandler struct {
	store *store.Store
}

func NewTaskHandler(s *store.Store) *TaskHandler {
	return &TaskHandler{store: s}
}

// CreateTaskRequest accepts either raw quick-add text (hashtags and /template
// commands are parsed out of it) or a structured payload with an explicit
// title. Text wins when both are present.
type CreateTaskRequest struct {
	ColumnID    string          `json:"columnId" binding:"required"`
	Text        string          `json:"text"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	DueDate     string          `json:"dueDate"`
	Priority    string          `json:"priority"`
	Tags        []string        `json:"tags"`
	Subtasks    []model.Subtask `json:"subtasks"`
}

type UpdateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Color       *string   `json:"color"`
	DueDate     *string   `json:"dueDate"`
	Priority    *string   `json:"priority"`
	Tags        *[]string `json:"tags"`
	ColumnID    *string   `json:"columnId"`
	IsCompleted *bool     `json:"isCompleted"`
}

type MoveTaskRequest struct {
	FromColumnID string `json:"fromColumnId" binding:"required"`
	ToColumnID   string `json:"toColumnId" binding:"required"`
	Index        int    `json:"index"`
}

type DueDateRequest struct {
	DueDate string `json:"dueDate"`
}

type PriorityRequest struct {
	Priority string `json:"priority"`
}

type SubtaskRequest struct {
	Text string `json:"text" binding:"required"`
}

type UpdateSubtaskRequest struct {
	Text *string `json:"text"`
	Done *bool   `json:"done"`
}

type ReorderSubtasksRequest struct {
	Subtasks []model.Subtask `json:"subtasks" binding:"required"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var task *model.Task
	var serr *store.Error
	if req.Text != "" {
		task, serr = h.store.CreateTaskFromText(req.ColumnID, req.Text)
	} else {
		task, serr = h.store.CreateTask(req.ColumnID, store.TaskPayload{
			Title:       req.Title,
			Description: req.Description,
			Color:       req.Color,
			DueDate:     req.DueDate,
			Priority:    req.Priority,
			Tags:        req.Tags,
			Subtasks:    req.Subtasks,
		})
	}
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	var task *model.Task
	h.store.View(func(st *model.State) {
		task = st.Tasks[c.Param("id")]
	})
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	patch := store.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Tags:        req.Tags,
		ColumnID:    req.ColumnID,
		IsCompleted: req.IsCompleted,
	}
	if serr := h.store.UpdateTask(c.Param("id"), patch); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if serr := h.store.DeleteTask(c.Param("id")); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) Move(c *gin.Context) {
	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.MoveTask(c.Param("id"), req.FromColumnID, req.ToColumnID, req.Index); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) SetDueDate(c *gin.Context) {
	var req DueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.SetDueDate(c.Param("id"), req.DueDate); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) SetPriority(c *gin.Context) {
	var req PriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.SetPriority(c.Param("id"), req.Priority); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) AddSubtask(c *gin.Context) {
	var req SubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.AddSubtask(c.Param("id"), req.Text); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) UpdateSubtask(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subtask index"})
		return
	}
	var req UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	patch := store.SubtaskPatch{Text: req.Text, Done: req.Done}
	if serr := h.store.UpdateSubtask(c.Param("id"), index, patch); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) DeleteSubtask(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subtask index"})
		return
	}
	if serr := h.store.DeleteSubtask(c.Param("id"), index); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ReorderSubtasks(c *gin.Context) {
	var req ReorderSubtasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if serr := h.store.ReorderSubtasks(c.Param("id"), req.Subtasks); serr != nil {
		respondError(c, serr)
		return
	}
	c.Status(http.StatusNoContent)
}
