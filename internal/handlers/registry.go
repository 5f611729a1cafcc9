package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	Auth     *AuthHandler
	Worker   *WorkerHandler
	Employer *EmployerHandler
	Admin    *AdminHandler
	Stats    *StatsHandler
}

func NewAppHandlers(
	v *validator.Validator,
	authService services.AuthService,
	workerService services.WorkerService,
	employerService services.EmployerService,
	adminService services.AdminService,
	statsService services.StatsService,
) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Auth:     NewAuthHandler(base, authService),
		Worker:   NewWorkerHandler(base, workerService),
		Employer: NewEmployerHandler(base, employerService),
		Admin:    NewAdminHandler(base, adminService),
		Stats:    NewStatsHandler(base, statsService),
	}
}
