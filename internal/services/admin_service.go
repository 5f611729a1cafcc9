package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type AdminService interface {
	ListUsers() ([]models.User, error)
	CreateUser(adminUserID string, req dto.AdminCreateUserRequest) (*models.User, error)
	UpdateUser(adminUserID, targetUserID string, req dto.AdminUpdateUserRequest) error
	DeleteUser(adminUserID, targetUserID string) error

	ListJobs() ([]models.JobWithEmployer, error)
	GetJob(jobID string) (*models.Job, error)
	CreateJob(adminUserID string, req dto.AdminCreateJobRequest) (*models.Job, error)
	UpdateJob(adminUserID, jobID string, req dto.AdminUpdateJobRequest) error
	DeleteJob(adminUserID, jobID string) error

	ListApplications() ([]models.Application, error)
	UpdateApplication(adminUserID, applicationID string, status models.ApplicationStatus) error
	DeleteApplication(adminUserID, applicationID string) error

	GetProfile(adminUserID string) (*models.Admin, error)
	UpdateProfile(adminUserID string, req dto.AdminUpdateProfileRequest) (*models.Admin, error)

	ActivityLogs(limit int) ([]models.ActivityLog, error)
}

type AdminServiceImpl struct {
	users        repositories.UserRepository
	workers      repositories.WorkerRepository
	employers    repositories.EmployerRepository
	admins       repositories.AdminRepository
	jobs         repositories.JobRepository
	applications repositories.ApplicationRepository
	activity     repositories.ActivityLogRepository
	auth         AuthService
}

func NewAdminService(
	users repositories.UserRepository,
	workers repositories.WorkerRepository,
	employers repositories.EmployerRepository,
	admins repositories.AdminRepository,
	jobs repositories.JobRepository,
	applications repositories.ApplicationRepository,
	activity repositories.ActivityLogRepository,
	auth AuthService,
) AdminService {
	return &AdminServiceImpl{
		users:        users,
		workers:      workers,
		employers:    employers,
		admins:       admins,
		jobs:         jobs,
		applications: applications,
		activity:     activity,
		auth:         auth,
	}
}

func (s *AdminServiceImpl) ListUsers() ([]models.User, error) {
	users, err := s.users.ListAll()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return users, nil
}

// CreateUser provisions an account through the same path as self-service
// registration, so the role profile rules are identical.
func (s *AdminServiceImpl) CreateUser(adminUserID string, req dto.AdminCreateUserRequest) (*models.User, error) {
	_, err := s.auth.Register(dto.RegisterRequest{
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		FullName:     req.FullName,
		Skills:       req.Skills,
		CompanyName:  req.CompanyName,
		EmployerName: req.EmployerName,
		AdminName:    req.AdminName,
		Department:   req.Department,
	})
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	s.logAction(adminUserID, "create", "users", user.ID, "admin created account", map[string]interface{}{
		"email": user.Email,
		"role":  user.Role,
	})
	return user, nil
}

func (s *AdminServiceImpl) UpdateUser(adminUserID, targetUserID string, req dto.AdminUpdateUserRequest) error {
	patch := repositories.UserUpdate{}
	if req.Email != nil {
		patch.Email = req.Email
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		patch.Role = &role
	}

	err := s.users.Update(targetUserID, patch)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.NotFound("user", "User not found")
	}
	if errors.Is(err, repositories.ErrDuplicateEmail) {
		return apperrors.Conflict("user", "Email already registered")
	}
	if err != nil {
		return apperrors.StorageError(err)
	}

	s.logAction(adminUserID, "update", "users", targetUserID, "admin updated account", nil)
	return nil
}

// DeleteUser removes the account and cascades through its role data:
// a worker loses profile and applications, an employer loses postings
// and the applications against them. An admin cannot delete itself.
func (s *AdminServiceImpl) DeleteUser(adminUserID, targetUserID string) error {
	if adminUserID == targetUserID {
		return apperrors.Conflict("user", "Admins cannot delete their own account")
	}

	user, err := s.users.FindByID(targetUserID)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.NotFound("user", "User not found")
	}
	if err != nil {
		return apperrors.StorageError(err)
	}

	switch user.Role {
	case models.UserRoleWorker:
		if err := s.cascadeWorker(targetUserID); err != nil {
			return err
		}
	case models.UserRoleEmployer:
		if err := s.cascadeEmployer(targetUserID); err != nil {
			return err
		}
	case models.UserRoleAdmin:
		if err := s.admins.DeleteByUser(targetUserID); err != nil {
			return apperrors.StorageError(err)
		}
	}

	if err := s.users.Delete(targetUserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFound("user", "User not found")
		}
		return apperrors.StorageError(err)
	}

	s.logAction(adminUserID, "delete", "users", targetUserID, "admin deleted account", map[string]interface{}{
		"role": user.Role,
	})
	return nil
}

func (s *AdminServiceImpl) cascadeWorker(userID string) error {
	worker, err := s.workers.FindByUser(userID)
	if errors.Is(err, repositories.ErrWorkerNotFound) {
		return nil
	}
	if err != nil {
		return apperrors.StorageError(err)
	}

	if _, err := s.applications.DeleteByWorker(worker.ID); err != nil {
		return apperrors.StorageError(err)
	}
	if err := s.workers.DeleteByUser(userID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *AdminServiceImpl) cascadeEmployer(userID string) error {
	employer, err := s.employers.FindByUser(userID)
	if errors.Is(err, repositories.ErrEmployerNotFound) {
		return nil
	}
	if err != nil {
		return apperrors.StorageError(err)
	}

	jobs, err := s.jobs.ListByEmployer(employer.ID)
	if err != nil {
		return apperrors.StorageError(err)
	}
	for _, job := range jobs {
		if _, err := s.applications.DeleteByJob(job.ID); err != nil {
			return apperrors.StorageError(err)
		}
		if err := s.jobs.Delete(job.ID); err != nil && !errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.StorageError(err)
		}
	}

	if err := s.employers.DeleteByUser(userID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *AdminServiceImpl) ListJobs() ([]models.JobWithEmployer, error) {
	jobs, err := s.jobs.ListAll()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return jobs, nil
}

func (s *AdminServiceImpl) GetJob(jobID string) (*models.Job, error) {
	job, err := s.jobs.FindByID(jobID)
	if errors.Is(err, repositories.ErrJobNotFound) {
		return nil, apperrors.NotFound("job", "Job not found")
	}
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return job, nil
}

// CreateJob posts on behalf of an employer. The posting goes through the
// same year-partition routing as an employer's own posting.
func (s *AdminServiceImpl) CreateJob(adminUserID string, req dto.AdminCreateJobRequest) (*models.Job, error) {
	employer, err := s.employers.FindByID(req.EmployerID)
	if errors.Is(err, repositories.ErrEmployerNotFound) {
		return nil, apperrors.NotFound("employer", "Employer not found")
	}
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		return nil, apperrors.NewBadRequestError("salary_min cannot exceed salary_max")
	}

	status := models.JobStatusOpen
	if req.Status != "" {
		status = models.JobStatus(req.Status)
	}

	job := &models.Job{
		EmployerID:     employer.ID,
		Title:          req.Title,
		RequiredSkills: req.RequiredSkills,
		Description:    req.Description,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Location:       req.Location,
		Status:         status,
		PostedAt:       time.Now().UTC(),
	}
	if err := s.jobs.Create(job); err != nil {
		return nil, apperrors.StorageError(err)
	}

	s.logAction(adminUserID, "create", "jobs", job.ID, "admin posted job", map[string]interface{}{
		"employer_id": employer.ID,
		"title":       job.Title,
	})
	return job, nil
}

func (s *AdminServiceImpl) UpdateJob(adminUserID, jobID string, req dto.AdminUpdateJobRequest) error {
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		return apperrors.NewBadRequestError("salary_min cannot exceed salary_max")
	}

	patch := repositories.JobPatch{
		Title:          req.Title,
		RequiredSkills: req.RequiredSkills,
		Description:    req.Description,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Location:       req.Location,
	}
	if req.Status != nil {
		status := models.JobStatus(*req.Status)
		if !models.ValidJobStatus(status) {
			return apperrors.InvalidStatus("job", "Status must be open or closed")
		}
		patch.Status = &status
	}

	err := s.jobs.Update(jobID, patch)
	if errors.Is(err, repositories.ErrJobNotFound) {
		return apperrors.NotFound("job", "Job not found")
	}
	if err != nil {
		return apperrors.StorageError(err)
	}

	s.logAction(adminUserID, "update", "jobs", jobID, "admin updated job", nil)
	return nil
}

func (s *AdminServiceImpl) DeleteJob(adminUserID, jobID string) error {
	removed, err := s.applications.DeleteByJob(jobID)
	if err != nil {
		return apperrors.StorageError(err)
	}

	err = s.jobs.Delete(jobID)
	if errors.Is(err, repositories.ErrJobNotFound) {
		return apperrors.NotFound("job", "Job not found")
	}
	if err != nil {
		return apperrors.StorageError(err)
	}

	s.logAction(adminUserID, "delete", "jobs", jobID, "admin deleted job", map[string]interface{}{
		"applications_removed": removed,
	})
	return nil
}

func (s *AdminServiceImpl) ListApplications() ([]models.Application, error) {
	apps, err := s.applications.ListAll()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return apps, nil
}

func (s *AdminServiceImpl) UpdateApplication(adminUserID, applicationID string, status models.ApplicationStatus) error {
	if !models.ValidApplicationStatus(status) {
		return apperrors.InvalidStatus("application", "Unknown application status")
	}

	err := s.applications.UpdateStatus(applicationID, status)
	if errors.Is(err, repositories.ErrApplicationNotFound) {
		return apperrors.NotFound("application", "Application not found")
	}
	if err != nil {
		return apperrors.StorageError(err)
	}

	s.logAction(adminUserID, "update", "applications", applicationID, "admin set status", map[string]interface{}{
		"status": status,
	})
	return nil
}

func (s *AdminServiceImpl) DeleteApplication(adminUserID, applicationID string) error {
	err := s.applications.Delete(applicationID)
	if errors.Is(err, repositories.ErrApplicationNotFound) {
		return apperrors.NotFound("application", "Application not found")
	}
	if err != nil {
		return apperrors.StorageError(err)
	}

	s.logAction(adminUserID, "delete", "applications", applicationID, "admin deleted application", nil)
	return nil
}

func (s *AdminServiceImpl) GetProfile(adminUserID string) (*models.Admin, error) {
	admin, err := s.admins.FindByUser(adminUserID)
	if errors.Is(err, repositories.ErrAdminNotFound) {
		return nil, apperrors.NotFound("admin", "Admin profile not found")
	}
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return admin, nil
}

func (s *AdminServiceImpl) UpdateProfile(adminUserID string, req dto.AdminUpdateProfileRequest) (*models.Admin, error) {
	err := s.admins.UpdateProfile(adminUserID, repositories.AdminProfileUpdate{
		AdminName:  req.AdminName,
		Department: req.Department,
	})
	if errors.Is(err, repositories.ErrAdminNotFound) {
		return nil, apperrors.NotFound("admin", "Admin profile not found")
	}
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return s.GetProfile(adminUserID)
}

func (s *AdminServiceImpl) ActivityLogs(limit int) ([]models.ActivityLog, error) {
	logs, err := s.activity.ListRecent(limit)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return logs, nil
}

// logAction appends to the audit trail. Auditing never fails the action
// it records; a write failure is logged and dropped.
func (s *AdminServiceImpl) logAction(adminUserID, actionType, targetTable, targetID, note string, details map[string]interface{}) {
	entry := &models.ActivityLog{
		AdminID:     adminUserID,
		ActionType:  actionType,
		TargetTable: targetTable,
		TargetID:    targetID,
		Note:        note,
	}

	if account, err := s.users.FindByID(adminUserID); err == nil {
		entry.AdminEmail = strings.ToLower(account.Email)
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.Details = datatypes.JSON(raw)
		}
	}

	if err := s.activity.Create(entry); err != nil {
		logger.WithError(err).Warn("activity log write failed",
			"action", actionType, "target_table", targetTable, "target_id", targetID)
	}
}
