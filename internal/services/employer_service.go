package services

import (
	"errors"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type EmployerService interface {
	GetProfile(userID string) (*models.Employer, error)
	UpdateProfile(userID string, req dto.UpdateEmployerProfileRequest) (*models.Employer, error)
	PostJob(userID string, req dto.PostJobRequest) (*models.Job, error)
	ListJobs(userID string) ([]models.Job, error)
	SearchJobs(q dto.SearchJobsQuery) ([]models.JobSearchResult, error)
	Applicants(userID string) ([]dto.ApplicantView, error)
	UpdateApplicationStatus(userID, applicationID string, status models.ApplicationStatus) error
}

type EmployerServiceImpl struct {
	employers    repositories.EmployerRepository
	jobs         repositories.JobRepository
	applications repositories.ApplicationRepository
	workers      repositories.WorkerRepository
}

func NewEmployerService(
	employers repositories.EmployerRepository,
	jobs repositories.JobRepository,
	applications repositories.ApplicationRepository,
	workers repositories.WorkerRepository,
) EmployerService {
	return &EmployerServiceImpl{
		employers:    employers,
		jobs:         jobs,
		applications: applications,
		workers:      workers,
	}
}

func (s *EmployerServiceImpl) GetProfile(userID string) (*models.Employer, error) {
	employer, err := s.employers.FindByUser(userID)
	if errors.Is(err, repositories.ErrEmployerNotFound) {
		return nil, apperrors.NotFound("employer", "Employer profile not found")
	}
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return employer, nil
}

func (s *EmployerServiceImpl) UpdateProfile(userID string, req dto.UpdateEmployerProfileRequest) (*models.Employer, error) {
	err := s.employers.UpdateProfile(userID, repositories.EmployerProfileUpdate{
		EmployerName: req.EmployerName,
		CompanyName:  req.CompanyName,
		Location:     req.Location,
		Phone:        req.Phone,
	})
	if errors.Is(err, repositories.ErrEmployerNotFound) {
		return nil, apperrors.NotFound("employer", "Employer profile not found")
	}
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return s.GetProfile(userID)
}

// PostJob creates an open posting stamped with the current time; the
// posting year picks the storage partition and never changes afterwards.
func (s *EmployerServiceImpl) PostJob(userID string, req dto.PostJobRequest) (*models.Job, error) {
	employer, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		return nil, apperrors.NewBadRequestError("salary_min cannot exceed salary_max")
	}

	job := &models.Job{
		EmployerID:     employer.ID,
		Title:          req.Title,
		RequiredSkills: req.RequiredSkills,
		Description:    req.Description,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Location:       req.Location,
		Status:         models.JobStatusOpen,
		PostedAt:       time.Now().UTC(),
	}
	if err := s.jobs.Create(job); err != nil {
		return nil, apperrors.StorageError(err)
	}

	logger.Info("job posted", "job_id", job.ID, "employer_id", employer.ID, "year", job.PostedAt.Year())
	return job, nil
}

func (s *EmployerServiceImpl) ListJobs(userID string) ([]models.Job, error) {
	employer, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.ListByEmployer(employer.ID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return jobs, nil
}

func (s *EmployerServiceImpl) SearchJobs(q dto.SearchJobsQuery) ([]models.JobSearchResult, error) {
	results, err := s.jobs.Search(q.Text, q.Location, q.Skills)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return results, nil
}

// Applicants lists every application against the employer's postings,
// enriched with the applicant's profile, most recent first.
func (s *EmployerServiceImpl) Applicants(userID string) ([]dto.ApplicantView, error) {
	employer, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobs.ListByEmployer(employer.ID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	titles := make(map[string]string, len(jobs))
	jobIDs := make([]string, 0, len(jobs))
	for _, job := range jobs {
		titles[job.ID] = job.Title
		jobIDs = append(jobIDs, job.ID)
	}

	apps, err := s.applications.ListByJobIDs(jobIDs)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	views := make([]dto.ApplicantView, 0, len(apps))
	for _, app := range apps {
		view := dto.ApplicantView{
			ApplicationID: app.ID,
			JobID:         app.JobID,
			JobTitle:      titles[app.JobID],
			Status:        string(app.ApplicationStatus),
			AppliedAt:     app.AppliedAt,
			WorkerID:      app.WorkerID,
		}

		worker, werr := s.workers.FindByID(app.WorkerID)
		if werr == nil {
			view.FullName = worker.FullName
			view.Skills = worker.Skills
			view.Phone = worker.Phone
			view.Location = worker.Location
			view.Experience = worker.Experience
		} else if !errors.Is(werr, repositories.ErrWorkerNotFound) {
			return nil, apperrors.StorageError(werr)
		}

		views = append(views, view)
	}
	return views, nil
}

// UpdateApplicationStatus approves or rejects an application. Only the
// employer who owns the posting may decide; pending is not a reachable
// target from here.
func (s *EmployerServiceImpl) UpdateApplicationStatus(userID, applicationID string, status models.ApplicationStatus) error {
	if status != models.ApplicationStatusApproved && status != models.ApplicationStatusRejected {
		return apperrors.InvalidStatus("application", "Status must be approved or rejected")
	}

	employer, err := s.GetProfile(userID)
	if err != nil {
		return err
	}

	app, err := s.applications.FindByID(applicationID)
	if errors.Is(err, repositories.ErrApplicationNotFound) {
		return apperrors.NotFound("application", "Application not found")
	}
	if err != nil {
		return apperrors.StorageError(err)
	}

	job, err := s.jobs.FindByID(app.JobID)
	if errors.Is(err, repositories.ErrJobNotFound) {
		return apperrors.NotFound("job", "Job not found")
	}
	if err != nil {
		return apperrors.StorageError(err)
	}
	if job.EmployerID != employer.ID {
		return apperrors.Forbidden("application", "Application belongs to another employer's job")
	}

	if err := s.applications.UpdateStatus(applicationID, status); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.NotFound("application", "Application not found")
		}
		return apperrors.StorageError(err)
	}
	return nil
}
