package repositories_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/partition"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB connects to the database named by TEST_DATABASE_URL and
// migrates the schema. Tests that need a live database skip when the
// variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func newRegistry(t *testing.T, db *gorm.DB) *partition.Registry {
	t.Helper()
	registry := partition.NewRegistry(db, time.Second)
	require.NoError(t, registry.Refresh())
	return registry
}

func uniqueEmail() string {
	return fmt.Sprintf("test-%s@example.com", uuid.NewString()[:8])
}

func TestEnsureWorkerExistsIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	workers := repositories.NewWorkerRepository(db)
	userID := uuid.NewString()

	first, err := workers.EnsureExists(userID, "Asel K", "go, postgres")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := workers.EnsureExists(userID, "Different Name", "other")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	// The second ensure finds the existing profile; it does not rewrite it.
	assert.Equal(t, "Asel K", second.FullName)

	// The row landed in its hash partition, not the staging table.
	var staged int64
	require.NoError(t, db.Table("workers").Where("id = ?", first.ID).Count(&staged).Error)
	assert.Zero(t, staged)

	var inPartition int64
	require.NoError(t, db.Table(partition.WorkerTable(first.ID)).
		Where("id = ?", first.ID).Count(&inPartition).Error)
	assert.EqualValues(t, 1, inPartition)
}

func TestWorkerProfileUpdateOverwrites(t *testing.T) {
	db := openTestDB(t)
	workers := repositories.NewWorkerRepository(db)

	worker, err := workers.EnsureExists(uuid.NewString(), "Initial", "go")
	require.NoError(t, err)

	err = workers.UpdateProfile(worker.ID, repositories.WorkerProfileUpdate{
		FullName: "Updated Name",
		Skills:   "go, docker",
		Location: "Almaty",
	})
	require.NoError(t, err)

	got, err := workers.FindByID(worker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", got.FullName)
	assert.Equal(t, "Almaty", got.Location)
	// Unsent fields are cleared, not preserved.
	assert.Empty(t, got.Phone)
}

func TestWorkerUpdateMissing(t *testing.T) {
	db := openTestDB(t)
	workers := repositories.NewWorkerRepository(db)

	err := workers.UpdateProfile(uuid.NewString(), repositories.WorkerProfileUpdate{FullName: "Ghost"})
	assert.ErrorIs(t, err, repositories.ErrWorkerNotFound)
}

func createTestEmployer(t *testing.T, db *gorm.DB) *models.Employer {
	t.Helper()

	users := repositories.NewUserRepository(db)
	employers := repositories.NewEmployerRepository(db)

	user := &models.User{Email: uniqueEmail(), PasswordHash: "x", Role: models.UserRoleEmployer}
	require.NoError(t, users.Create(user))

	employer := &models.Employer{UserID: user.ID, CompanyName: "Acme"}
	require.NoError(t, employers.Create(employer))
	return employer
}

func TestJobRoundTripThroughYearPartition(t *testing.T) {
	db := openTestDB(t)
	registry := newRegistry(t, db)
	jobs := repositories.NewJobRepository(db, registry)
	employer := createTestEmployer(t, db)

	job := &models.Job{
		EmployerID: employer.ID,
		Title:      "Go Engineer",
		Status:     models.JobStatusOpen,
		PostedAt:   time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, jobs.Create(job))

	// The posting year owns the row.
	var count int64
	require.NoError(t, db.Table(partition.JobTable(2023)).
		Where("id = ?", job.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := jobs.FindByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Engineer", got.Title)

	stats, err := jobs.PartitionStats()
	require.NoError(t, err)
	var found bool
	for _, s := range stats {
		if s.Year == 2023 {
			found = true
			assert.Equal(t, partition.JobTable(2023), s.Collection)
			assert.GreaterOrEqual(t, s.DocumentCount, int64(1))
		}
	}
	assert.True(t, found, "2023 partition missing from stats")

	require.NoError(t, jobs.Delete(job.ID))
	_, err = jobs.FindByID(job.ID)
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
}

func TestJobSparseUpdate(t *testing.T) {
	db := openTestDB(t)
	registry := newRegistry(t, db)
	jobs := repositories.NewJobRepository(db, registry)
	employer := createTestEmployer(t, db)

	job := &models.Job{
		EmployerID: employer.ID,
		Title:      "Original Title",
		Location:   "Astana",
		Status:     models.JobStatusOpen,
		PostedAt:   time.Now().UTC(),
	}
	require.NoError(t, jobs.Create(job))

	closed := models.JobStatusClosed
	require.NoError(t, jobs.Update(job.ID, repositories.JobPatch{Status: &closed}))

	got, err := jobs.FindByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, got.Status)
	// Untouched fields survive a sparse patch.
	assert.Equal(t, "Original Title", got.Title)
	assert.Equal(t, "Astana", got.Location)
}

func TestDuplicateApplicationRejected(t *testing.T) {
	db := openTestDB(t)
	registry := newRegistry(t, db)
	jobs := repositories.NewJobRepository(db, registry)
	workers := repositories.NewWorkerRepository(db)
	applications := repositories.NewApplicationRepository(db)
	employer := createTestEmployer(t, db)

	job := &models.Job{
		EmployerID: employer.ID,
		Title:      "Backend Dev",
		Status:     models.JobStatusOpen,
		PostedAt:   time.Now().UTC(),
	}
	require.NoError(t, jobs.Create(job))

	worker, err := workers.EnsureExists(uuid.NewString(), "Applicant", "go")
	require.NoError(t, err)

	first := &models.Application{JobID: job.ID, WorkerID: worker.ID}
	require.NoError(t, applications.Create(first))
	assert.Equal(t, models.ApplicationStatusPending, first.ApplicationStatus)

	second := &models.Application{JobID: job.ID, WorkerID: worker.ID}
	err = applications.Create(second)
	assert.ErrorIs(t, err, repositories.ErrDuplicateApplication)

	listed, err := applications.ListByWorker(worker.ID)
	require.NoError(t, err)

	var forJob int
	for _, a := range listed {
		if a.JobID == job.ID {
			forJob++
		}
	}
	assert.Equal(t, 1, forJob)
}

func TestSkillMatchAcrossPartitions(t *testing.T) {
	db := openTestDB(t)
	registry := newRegistry(t, db)
	jobs := repositories.NewJobRepository(db, registry)
	workers := repositories.NewWorkerRepository(db)
	employer := createTestEmployer(t, db)

	worker, err := workers.EnsureExists(uuid.NewString(), "Priya", "Python, React")
	require.NoError(t, err)
	require.NoError(t, workers.UpdateProfile(worker.ID, repositories.WorkerProfileUpdate{
		FullName: "Priya",
		Skills:   "Python, React",
		Location: "Mumbai",
	}))

	post := func(title, skills, location string, status models.JobStatus, postedAt time.Time) *models.Job {
		job := &models.Job{
			EmployerID:     employer.ID,
			Title:          title,
			RequiredSkills: skills,
			Location:       location,
			Status:         status,
			PostedAt:       postedAt,
		}
		require.NoError(t, jobs.Create(job))
		return job
	}

	// Two different year partitions so the merge is cross-partition.
	older := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)

	pythonMumbai := post("Python Dev", "python, django", "Mumbai", models.JobStatusOpen, older)
	reactAnywhere := post("React Dev", "React, MongoDB, Node.js", "", models.JobStatusOpen, newer)
	pythonPune := post("Python Pune", "python", "Pune", models.JobStatusOpen, newer)
	javaMumbai := post("Java Mumbai", "java, spring", "Mumbai", models.JobStatusOpen, newer)
	closedPython := post("Closed Python", "python", "Mumbai", models.JobStatusClosed, newer)

	matches, err := jobs.MatchForWorker(worker.ID, "Python, React", "Mumbai")
	require.NoError(t, err)

	got := map[string]bool{}
	for _, m := range matches {
		got[m.JobID] = true
	}
	assert.True(t, got[pythonMumbai.ID], "skill+location match missing")
	assert.True(t, got[reactAnywhere.ID], "empty-location job must match any location filter")
	assert.False(t, got[pythonPune.ID], "location mismatch must be excluded")
	assert.False(t, got[javaMumbai.ID], "skill mismatch must be excluded")
	assert.False(t, got[closedPython.ID], "closed job must be excluded")

	// Most recent first across the two year partitions.
	var prev *time.Time
	for _, m := range matches {
		if prev != nil {
			assert.False(t, m.PostedAt.After(*prev))
		}
		at := m.PostedAt
		prev = &at
	}
}

func TestUserDuplicateEmailRejected(t *testing.T) {
	db := openTestDB(t)
	users := repositories.NewUserRepository(db)

	email := uniqueEmail()
	require.NoError(t, users.Create(&models.User{
		Email: email, PasswordHash: "x", Role: models.UserRoleWorker,
	}))

	err := users.Create(&models.User{
		Email: email, PasswordHash: "y", Role: models.UserRoleWorker,
	})
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)

	// Lookup is case-normalized.
	got, err := users.FindByEmail("  " + email + "  ")
	require.NoError(t, err)
	assert.Equal(t, email, got.Email)
}
