package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes the partition debug surface: job partition
// distribution, worker routing, and application totals.
type StatsHandler struct {
	*BaseHandler
	statsService services.StatsService
}

func NewStatsHandler(base *BaseHandler, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{BaseHandler: base, statsService: statsService}
}

// RegisterRoutes mounts the debug endpoints. Each route carries its own
// role gate rather than a group-wide one; the surface straddles roles.
func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	debug := rg.Group("/debug")
	{
		debug.GET("/jobs/stats",
			middleware.RequireRoles(models.UserRoleWorker), h.JobStats)
		debug.GET("/jobs/partitions",
			middleware.RequireRoles(models.UserRoleEmployer), h.JobPartitions)
		debug.GET("/workers/hash_partition/:id",
			middleware.RequireRoles(models.UserRoleWorker), h.WorkerPartition)
		debug.GET("/workers/info/:id",
			middleware.RequireRoles(models.UserRoleWorker), h.WorkerInfo)
		debug.GET("/applications/stats",
			middleware.RequireRoles(models.UserRoleAdmin), h.ApplicationStats)
	}
}

func (h *StatsHandler) JobStats(c *gin.Context) {
	stats, err := h.statsService.JobStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) JobPartitions(c *gin.Context) {
	partitions, err := h.statsService.JobPartitions()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"partitions": partitions, "count": len(partitions)})
}

func (h *StatsHandler) WorkerPartition(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsService.WorkerPartition(c.Param("id")))
}

func (h *StatsHandler) WorkerInfo(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	worker, info, err := h.statsService.WorkerInfo(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"worker": worker, "partition": info})
}

func (h *StatsHandler) ApplicationStats(c *gin.Context) {
	stats, err := h.statsService.ApplicationStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
