package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rdtrack/internal/insight"
	"rdtrack/internal/model"
	"rdtrack/internal/repository"
)

type TaskHandler struct {
	repo   *repository.TaskRepository
	logger *zap.Logger
}

func NewTaskHandler(repo *repository.TaskRepository, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{repo: repo, logger: logger}
}

type createTaskRequest struct {
	Name       string `json:"name" binding:"required"`
	ProjectID  *int   `json:"project_id"`
	AssignedTo []int  `json:"assigned_to"`
	EndDate    string `json:"end_date"`
	Priority   string `json:"priority"`
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("CreateTask: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.EndDate != "" {
		if _, ok := insight.ParseDeadline(req.EndDate); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return
		}
	}
	if req.Priority == "" {
		req.Priority = model.PriorityMedium
	}

	t := &model.Task{
		Name:       req.Name,
		ProjectID:  req.ProjectID,
		AssignedTo: req.AssignedTo,
		EndDate:    req.EndDate,
		Priority:   req.Priority,
		Status:     model.TaskStatusPending,
	}

	id, err := h.repo.Insert(c.Request.Context(), t)
	if err != nil {
		h.logger.Error("CreateTask: failed to insert", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}
	t.ID = id

	c.JSON(http.StatusCreated, gin.H{"task": t})
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("ListTasks: failed to fetch tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.logger.Warn("CompleteTask: invalid task id format",
			zap.String("task_id", c.Param("id")),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	if err := h.repo.MarkCompleted(c.Request.Context(), taskID); err != nil {
		h.logger.Error("CompleteTask: failed to mark task as completed",
			zap.Int("task_id", taskID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete task"})
		return
	}

	h.logger.Info("CompleteTask: success", zap.Int("task_id", taskID))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
