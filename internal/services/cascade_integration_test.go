package services_test

import (
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/partition"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// adminStack is the full repository and service wiring the cascade tests
// drive, built against the database named by TEST_DATABASE_URL.
type adminStack struct {
	users        repositories.UserRepository
	workers      repositories.WorkerRepository
	employers    repositories.EmployerRepository
	admins       repositories.AdminRepository
	jobs         repositories.JobRepository
	applications repositories.ApplicationRepository
	admin        services.AdminService
}

func newAdminStack(t *testing.T) *adminStack {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))

	registry := partition.NewRegistry(db, time.Second)
	require.NoError(t, registry.Refresh())

	s := &adminStack{
		users:        repositories.NewUserRepository(db),
		workers:      repositories.NewWorkerRepository(db),
		employers:    repositories.NewEmployerRepository(db),
		admins:       repositories.NewAdminRepository(db),
		jobs:         repositories.NewJobRepository(db, registry),
		applications: repositories.NewApplicationRepository(db),
	}
	activity := repositories.NewActivityLogRepository(db)
	tokens := auth.NewTokenManager("test-secret", time.Hour, time.Hour)
	authService := services.NewAuthService(s.users, s.workers, s.employers, s.admins, tokens)
	s.admin = services.NewAdminService(s.users, s.workers, s.employers, s.admins,
		s.jobs, s.applications, activity, authService)
	return s
}

func (s *adminStack) createAdmin(t *testing.T) *models.User {
	t.Helper()
	user := &models.User{
		Email:        fmt.Sprintf("admin-%s@example.com", uuid.NewString()[:8]),
		PasswordHash: "x",
		Role:         models.UserRoleAdmin,
	}
	require.NoError(t, s.users.Create(user))
	require.NoError(t, s.admins.Create(&models.Admin{UserID: user.ID}))
	return user
}

func (s *adminStack) createEmployer(t *testing.T) (*models.User, *models.Employer) {
	t.Helper()
	user := &models.User{
		Email:        fmt.Sprintf("emp-%s@example.com", uuid.NewString()[:8]),
		PasswordHash: "x",
		Role:         models.UserRoleEmployer,
	}
	require.NoError(t, s.users.Create(user))
	employer := &models.Employer{UserID: user.ID, CompanyName: "Acme"}
	require.NoError(t, s.employers.Create(employer))
	return user, employer
}

func (s *adminStack) createWorker(t *testing.T) (*models.User, *models.Worker) {
	t.Helper()
	user := &models.User{
		Email:        fmt.Sprintf("worker-%s@example.com", uuid.NewString()[:8]),
		PasswordHash: "x",
		Role:         models.UserRoleWorker,
	}
	require.NoError(t, s.users.Create(user))
	worker, err := s.workers.EnsureExists(user.ID, "Test Worker", "go")
	require.NoError(t, err)
	return user, worker
}

func (s *adminStack) postJob(t *testing.T, employerID string) *models.Job {
	t.Helper()
	job := &models.Job{
		EmployerID: employerID,
		Title:      "Backend Dev",
		Status:     models.JobStatusOpen,
		PostedAt:   time.Now().UTC(),
	}
	require.NoError(t, s.jobs.Create(job))
	return job
}

func (s *adminStack) apply(t *testing.T, jobID, workerID string) *models.Application {
	t.Helper()
	app := &models.Application{JobID: jobID, WorkerID: workerID}
	require.NoError(t, s.applications.Create(app))
	return app
}

func TestDeleteJobCascadesApplications(t *testing.T) {
	s := newAdminStack(t)
	admin := s.createAdmin(t)
	_, employer := s.createEmployer(t)
	_, worker := s.createWorker(t)

	job := s.postJob(t, employer.ID)
	app := s.apply(t, job.ID, worker.ID)

	require.NoError(t, s.admin.DeleteJob(admin.ID, job.ID))

	_, err := s.jobs.FindByID(job.ID)
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
	_, err = s.applications.FindByID(app.ID)
	assert.ErrorIs(t, err, repositories.ErrApplicationNotFound)
}

func TestDeleteWorkerUserCascades(t *testing.T) {
	s := newAdminStack(t)
	admin := s.createAdmin(t)
	_, employer := s.createEmployer(t)
	workerUser, worker := s.createWorker(t)

	job := s.postJob(t, employer.ID)
	app := s.apply(t, job.ID, worker.ID)

	require.NoError(t, s.admin.DeleteUser(admin.ID, workerUser.ID))

	_, err := s.users.FindByID(workerUser.ID)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	_, err = s.workers.FindByUser(workerUser.ID)
	assert.ErrorIs(t, err, repositories.ErrWorkerNotFound)
	_, err = s.applications.FindByID(app.ID)
	assert.ErrorIs(t, err, repositories.ErrApplicationNotFound)

	// The job the worker applied to is untouched.
	_, err = s.jobs.FindByID(job.ID)
	assert.NoError(t, err)
}

func TestDeleteEmployerUserCascades(t *testing.T) {
	s := newAdminStack(t)
	admin := s.createAdmin(t)
	employerUser, employer := s.createEmployer(t)
	_, worker := s.createWorker(t)

	job := s.postJob(t, employer.ID)
	app := s.apply(t, job.ID, worker.ID)

	require.NoError(t, s.admin.DeleteUser(admin.ID, employerUser.ID))

	_, err := s.users.FindByID(employerUser.ID)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	_, err = s.employers.FindByUser(employerUser.ID)
	assert.ErrorIs(t, err, repositories.ErrEmployerNotFound)
	// Postings fall with the employer, and their applications with them.
	_, err = s.jobs.FindByID(job.ID)
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
	_, err = s.applications.FindByID(app.ID)
	assert.ErrorIs(t, err, repositories.ErrApplicationNotFound)

	// The applicant's profile survives.
	_, err = s.workers.FindByID(worker.ID)
	assert.NoError(t, err)
}

func TestDeleteAdminUserCascadesProfile(t *testing.T) {
	s := newAdminStack(t)
	actor := s.createAdmin(t)
	target := s.createAdmin(t)

	require.NoError(t, s.admin.DeleteUser(actor.ID, target.ID))

	_, err := s.users.FindByID(target.ID)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	_, err = s.admins.FindByUser(target.ID)
	assert.ErrorIs(t, err, repositories.ErrAdminNotFound)
}

func TestAdminCannotDeleteOwnAccount(t *testing.T) {
	s := newAdminStack(t)
	admin := s.createAdmin(t)

	err := s.admin.DeleteUser(admin.ID, admin.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)

	// The account is still there.
	_, err = s.users.FindByID(admin.ID)
	assert.NoError(t, err)
}
