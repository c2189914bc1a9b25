package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rdtrack/internal/insight"
	"rdtrack/internal/repository"
	"rdtrack/internal/service"
)

type NotificationHandler struct {
	refresher   *service.Refresher
	projectRepo *repository.ProjectRepository
	taskRepo    *repository.TaskRepository
	logger      *zap.Logger
}

func NewNotificationHandler(
	refresher *service.Refresher,
	projectRepo *repository.ProjectRepository,
	taskRepo *repository.TaskRepository,
	logger *zap.Logger,
) *NotificationHandler {
	return &NotificationHandler{
		refresher:   refresher,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		logger:      logger,
	}
}

// GetNotifications serves the latest completed snapshot without triggering
// a new aggregation pass.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	snap := h.refresher.Current()
	c.JSON(http.StatusOK, gin.H{
		"notifications": snap.Notifications,
		"generated_at":  snap.GeneratedAt,
		"count":         len(snap.Notifications),
	})
}

// RefreshNotifications forces a full aggregation pass and serves its result.
func (h *NotificationHandler) RefreshNotifications(c *gin.Context) {
	snap := h.refresher.Refresh(c.Request.Context(), time.Now())

	h.logger.Info("RefreshNotifications: manual refresh complete",
		zap.Int("notification_count", len(snap.Notifications)),
	)
	c.JSON(http.StatusOK, gin.H{
		"notifications": snap.Notifications,
		"generated_at":  snap.GeneratedAt,
		"count":         len(snap.Notifications),
	})
}

// GetSummary serves the dashboard roll-up over all projects and tasks.
func (h *NotificationHandler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := h.projectRepo.List(ctx)
	if err != nil {
		h.logger.Warn("GetSummary: project fetch failed, degrading to empty list", zap.Error(err))
		projects = nil
	}
	tasks, err := h.taskRepo.List(ctx)
	if err != nil {
		h.logger.Warn("GetSummary: task fetch failed, degrading to empty list", zap.Error(err))
		tasks = nil
	}

	c.JSON(http.StatusOK, gin.H{"summary": insight.Summarize(projects, tasks, time.Now())})
}
