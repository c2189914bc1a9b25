package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"rdtrack/internal/insight"
	"rdtrack/internal/model"
	"rdtrack/internal/repository"
)

type ProjectHandler struct {
	repo   *repository.ProjectRepository
	logger *zap.Logger
}

func NewProjectHandler(repo *repository.ProjectRepository, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{repo: repo, logger: logger}
}

type createProjectRequest struct {
	ProjectName         string `json:"project_name" binding:"required"`
	OrderNumber         string `json:"order_number" binding:"required"`
	CurrentStageID      string `json:"current_stage_id"`
	EstimatedCompletion string `json:"estimated_completion"`
	Priority            string `json:"priority"`
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("CreateProject: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.CurrentStageID != "" && !insight.ValidStage(req.CurrentStageID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown stage id"})
		return
	}
	if req.Priority == "" {
		req.Priority = model.PriorityMedium
	}

	p := &model.Project{
		ProjectName:         req.ProjectName,
		OrderNumber:         req.OrderNumber,
		CurrentStageID:      req.CurrentStageID,
		EstimatedCompletion: req.EstimatedCompletion,
		Priority:            req.Priority,
	}

	id, err := h.repo.Insert(c.Request.Context(), p)
	if err != nil {
		h.logger.Error("CreateProject: failed to insert", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}
	p.ID = id

	c.JSON(http.StatusCreated, gin.H{"project": p})
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("ListProjects: failed to fetch projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	p, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.logger.Error("GetProject: failed to fetch project",
			zap.Int("project_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": p})
}

type advanceStageRequest struct {
	StageID string `json:"stage_id" binding:"required"`
	Note    string `json:"note"`
}

func (h *ProjectHandler) AdvanceStage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var req advanceStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !insight.ValidStage(req.StageID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown stage id"})
		return
	}

	if err := h.repo.AdvanceStage(c.Request.Context(), id, req.StageID, req.Note); err != nil {
		h.logger.Error("AdvanceStage: failed",
			zap.Int("project_id", id),
			zap.String("stage_id", req.StageID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to advance stage"})
		return
	}

	h.logger.Info("AdvanceStage: success",
		zap.Int("project_id", id),
		zap.String("stage_id", req.StageID),
	)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ProjectHandler) GetTimeline(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	entries, err := h.repo.ListTimeline(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("GetTimeline: failed to fetch timeline",
			zap.Int("project_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch timeline"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeline": entries})
}

// GetInsight serves the derived view of a single project: progress, at-risk
// flag, and deadline band.
func (h *ProjectHandler) GetInsight(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	p, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.logger.Error("GetInsight: failed to fetch project",
			zap.Int("project_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insight": insight.ProjectInsightFor(*p, time.Now())})
}
