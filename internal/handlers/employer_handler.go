package handlers

import (
	"net/http"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	*BaseHandler
	employerService services.EmployerService
}

func NewEmployerHandler(base *BaseHandler, employerService services.EmployerService) *EmployerHandler {
	return &EmployerHandler{BaseHandler: base, employerService: employerService}
}

// RegisterRoutes mounts the employer surface behind the employer role
// check. Job search is also exposed here: the original surface lets any
// authenticated account search postings.
func (h *EmployerHandler) RegisterRoutes(rg *gin.RouterGroup, searchGroup *gin.RouterGroup) {
	employer := rg.Group("/employer")
	{
		employer.GET("/profile", h.GetProfile)
		employer.PUT("/profile", h.UpdateProfile)
		employer.POST("/jobs", h.PostJob)
		employer.GET("/jobs", h.ListJobs)
		employer.GET("/applicants", h.Applicants)
		employer.PUT("/applications/:id/status", h.UpdateApplicationStatus)
	}

	searchGroup.GET("/jobs/search", h.SearchJobs)
}

func (h *EmployerHandler) GetProfile(c *gin.Context) {
	employer, err := h.employerService.GetProfile(h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employer)
}

func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateEmployerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	employer, err := h.employerService.UpdateProfile(h.CurrentUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employer)
}

func (h *EmployerHandler) PostJob(c *gin.Context) {
	var req dto.PostJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.employerService.PostJob(h.CurrentUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *EmployerHandler) ListJobs(c *gin.Context) {
	jobs, err := h.employerService.ListJobs(h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

func (h *EmployerHandler) SearchJobs(c *gin.Context) {
	var q dto.SearchJobsQuery
	if !h.BindQuery(c, &q) {
		return
	}

	results, err := h.employerService.SearchJobs(q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": results, "count": len(results)})
}

func (h *EmployerHandler) Applicants(c *gin.Context) {
	views, err := h.employerService.Applicants(h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applicants": views, "count": len(views)})
}

func (h *EmployerHandler) UpdateApplicationStatus(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.employerService.UpdateApplicationStatus(
		h.CurrentUserID(c),
		id,
		models.ApplicationStatus(req.Status),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application status updated"})
}
