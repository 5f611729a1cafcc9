package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type WorkerService interface {
	GetProfile(userID string) (*models.Worker, error)
	UpdateProfile(userID string, req dto.UpdateWorkerProfileRequest) (*models.Worker, error)
	MatchedJobs(userID string) ([]models.JobMatch, error)
	Apply(userID, jobID string) (*models.Application, error)
	Applications(userID string) ([]dto.WorkerApplicationView, error)
	PendingJobs(userID string) ([]dto.WorkerApplicationView, error)
	ApprovedJobs(userID string) ([]dto.WorkerApplicationView, error)
}

type WorkerServiceImpl struct {
	workers      repositories.WorkerRepository
	jobs         repositories.JobRepository
	applications repositories.ApplicationRepository
	employers    repositories.EmployerRepository
	users        repositories.UserRepository
}

func NewWorkerService(
	workers repositories.WorkerRepository,
	jobs repositories.JobRepository,
	applications repositories.ApplicationRepository,
	employers repositories.EmployerRepository,
	users repositories.UserRepository,
) WorkerService {
	return &WorkerServiceImpl{
		workers:      workers,
		jobs:         jobs,
		applications: applications,
		employers:    employers,
		users:        users,
	}
}

func (s *WorkerServiceImpl) GetProfile(userID string) (*models.Worker, error) {
	worker, err := s.workers.FindByUser(userID)
	if errors.Is(err, repositories.ErrWorkerNotFound) {
		return nil, apperrors.NotFound("worker", "Worker profile not found")
	}
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return worker, nil
}

// UpdateProfile overwrites the profile. The profile is ensured first:
// accounts created before profile provisioning get one on their first
// save instead of a 404.
func (s *WorkerServiceImpl) UpdateProfile(userID string, req dto.UpdateWorkerProfileRequest) (*models.Worker, error) {
	worker, err := s.workers.EnsureExists(userID, req.FullName, req.Skills)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	err = s.workers.UpdateProfile(worker.ID, repositories.WorkerProfileUpdate{
		FullName:   req.FullName,
		Skills:     req.Skills,
		Phone:      req.Phone,
		Location:   req.Location,
		Experience: req.Experience,
		Age:        req.Age,
		Gender:     req.Gender,
	})
	if errors.Is(err, repositories.ErrWorkerNotFound) {
		return nil, apperrors.NotFound("worker", "Worker profile not found")
	}
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	updated, err := s.workers.FindByID(worker.ID)
	if errors.Is(err, repositories.ErrWorkerNotFound) {
		return nil, apperrors.NotFound("worker", "Worker profile not found")
	}
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return updated, nil
}

// MatchedJobs runs the skill match against every job partition using the
// worker's stored skills and location.
func (s *WorkerServiceImpl) MatchedJobs(userID string) ([]models.JobMatch, error) {
	worker, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	matches, err := s.jobs.MatchForWorker(worker.ID, worker.Skills, worker.Location)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return matches, nil
}

// Apply files an application for an open job. At most one application per
// job and worker; a repeat is a conflict, not a second record.
func (s *WorkerServiceImpl) Apply(userID, jobID string) (*models.Application, error) {
	worker, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(jobID)
	if errors.Is(err, repositories.ErrJobNotFound) {
		return nil, apperrors.NotFound("job", "Job not found")
	}
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.InvalidStatus("job", "Job is no longer open")
	}

	app := &models.Application{
		JobID:    job.ID,
		WorkerID: worker.ID,
	}
	err = s.applications.Create(app)
	if errors.Is(err, repositories.ErrDuplicateApplication) {
		return nil, apperrors.Conflict("application", "Already applied to this job")
	}
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return app, nil
}

func (s *WorkerServiceImpl) Applications(userID string) ([]dto.WorkerApplicationView, error) {
	worker, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	apps, err := s.applications.ListByWorker(worker.ID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return s.enrich(apps, false)
}

func (s *WorkerServiceImpl) PendingJobs(userID string) ([]dto.WorkerApplicationView, error) {
	return s.byStatus(userID, models.ApplicationStatusPending, false)
}

// ApprovedJobs additionally resolves the employer's contact details and
// account email: once approved, the worker gets a way to reach the company.
func (s *WorkerServiceImpl) ApprovedJobs(userID string) ([]dto.WorkerApplicationView, error) {
	return s.byStatus(userID, models.ApplicationStatusApproved, true)
}

func (s *WorkerServiceImpl) byStatus(userID string, status models.ApplicationStatus, withContact bool) ([]dto.WorkerApplicationView, error) {
	worker, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	apps, err := s.applications.ListByWorkerAndStatus(worker.ID, status)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return s.enrich(apps, withContact)
}

// enrich joins each application with its job and employer. A job deleted
// out from under an application drops that row instead of failing the
// whole listing.
func (s *WorkerServiceImpl) enrich(apps []models.Application, withContact bool) ([]dto.WorkerApplicationView, error) {
	views := make([]dto.WorkerApplicationView, 0, len(apps))
	for _, app := range apps {
		job, err := s.jobs.FindByID(app.JobID)
		if errors.Is(err, repositories.ErrJobNotFound) {
			continue
		}
		if err != nil {
			return nil, apperrors.StorageError(err)
		}

		view := dto.WorkerApplicationView{
			ApplicationID: app.ID,
			JobID:         job.ID,
			Status:        string(app.ApplicationStatus),
			AppliedAt:     app.AppliedAt,
			Title:         job.Title,
			Location:      job.Location,
			SalaryRange:   FormatSalaryRange(job.SalaryMin, job.SalaryMax),
		}

		employer, err := s.employers.FindByID(job.EmployerID)
		if err == nil {
			view.CompanyName = employer.CompanyName
			if withContact {
				view.CompanyPhone = employer.Phone
				view.CompanyLocation = employer.Location
				if account, uerr := s.users.FindByID(employer.UserID); uerr == nil {
					view.EmployerEmail = account.Email
				}
			}
		} else if !errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.StorageError(err)
		}

		views = append(views, view)
	}
	return views, nil
}
