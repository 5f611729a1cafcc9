package handlers

import (
	"net/http"
	"strconv"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{BaseHandler: base, adminService: adminService}
}

// RegisterRoutes mounts the admin surface behind the admin role check.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	{
		admin.GET("/users", h.ListUsers)
		admin.POST("/users", h.CreateUser)
		admin.PUT("/users/:id", h.UpdateUser)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.GET("/jobs", h.ListJobs)
		admin.POST("/jobs", h.CreateJob)
		admin.GET("/jobs/:id", h.GetJob)
		admin.PUT("/jobs/:id", h.UpdateJob)
		admin.DELETE("/jobs/:id", h.DeleteJob)

		admin.GET("/applications", h.ListApplications)
		admin.PUT("/applications/:id", h.UpdateApplication)
		admin.DELETE("/applications/:id", h.DeleteApplication)

		admin.GET("/profile", h.GetProfile)
		admin.PUT("/profile", h.UpdateProfile)

		admin.GET("/activity-logs", h.ActivityLogs)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.AdminCreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.adminService.CreateUser(h.CurrentUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req dto.AdminUpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.adminService.UpdateUser(h.CurrentUserID(c), id, req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteUser(h.CurrentUserID(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.adminService.ListJobs()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

func (h *AdminHandler) CreateJob(c *gin.Context) {
	var req dto.AdminCreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.adminService.CreateJob(h.CurrentUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *AdminHandler) GetJob(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	job, err := h.adminService.GetJob(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *AdminHandler) UpdateJob(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req dto.AdminUpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.adminService.UpdateJob(h.CurrentUserID(c), id, req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job updated"})
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteJob(h.CurrentUserID(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *AdminHandler) ListApplications(c *gin.Context) {
	apps, err := h.adminService.ListApplications()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "count": len(apps)})
}

func (h *AdminHandler) UpdateApplication(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req dto.AdminUpdateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.adminService.UpdateApplication(
		h.CurrentUserID(c),
		id,
		models.ApplicationStatus(req.Status),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application updated"})
}

func (h *AdminHandler) DeleteApplication(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteApplication(h.CurrentUserID(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}

func (h *AdminHandler) GetProfile(c *gin.Context) {
	admin, err := h.adminService.GetProfile(h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	var req dto.AdminUpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	admin, err := h.adminService.UpdateProfile(h.CurrentUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (h *AdminHandler) ActivityLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.adminService.ActivityLogs(limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": logs, "count": len(logs)})
}
