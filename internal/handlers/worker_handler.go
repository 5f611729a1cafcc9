package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type WorkerHandler struct {
	*BaseHandler
	workerService services.WorkerService
}

func NewWorkerHandler(base *BaseHandler, workerService services.WorkerService) *WorkerHandler {
	return &WorkerHandler{BaseHandler: base, workerService: workerService}
}

// RegisterRoutes mounts the worker surface. The group is already behind
// auth and the worker role check.
func (h *WorkerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	worker := rg.Group("/worker")
	{
		worker.GET("/profile", h.GetProfile)
		worker.PUT("/profile", h.UpdateProfile)
		worker.GET("/matched_jobs", h.MatchedJobs)
		worker.POST("/apply", h.Apply)
		worker.GET("/applications", h.Applications)
		worker.GET("/pending_jobs", h.PendingJobs)
		worker.GET("/approved_jobs", h.ApprovedJobs)
	}
}

func (h *WorkerHandler) GetProfile(c *gin.Context) {
	worker, err := h.workerService.GetProfile(h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, worker)
}

func (h *WorkerHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateWorkerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	worker, err := h.workerService.UpdateProfile(h.CurrentUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, worker)
}

func (h *WorkerHandler) MatchedJobs(c *gin.Context) {
	matches, err := h.workerService.MatchedJobs(h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": matches, "count": len(matches)})
}

func (h *WorkerHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.workerService.Apply(h.CurrentUserID(c), req.JobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *WorkerHandler) Applications(c *gin.Context) {
	views, err := h.workerService.Applications(h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": views, "count": len(views)})
}

func (h *WorkerHandler) PendingJobs(c *gin.Context) {
	views, err := h.workerService.PendingJobs(h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": views, "count": len(views)})
}

func (h *WorkerHandler) ApprovedJobs(c *gin.Context) {
	views, err := h.workerService.ApprovedJobs(h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": views, "count": len(views)})
}
