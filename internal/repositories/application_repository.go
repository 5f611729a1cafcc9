package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	Delete(id string) error
	DeleteByJob(jobID string) (int64, error)
	DeleteByWorker(workerID string) (int64, error)
	ListByWorker(workerID string) ([]models.Application, error)
	ListByWorkerAndStatus(workerID string, status models.ApplicationStatus) ([]models.Application, error)
	ListByJobIDs(jobIDs []string) ([]models.Application, error)
	ListAll() ([]models.Application, error)
	StatusCounts() ([]models.ApplicationStatusCount, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create inserts the application unless one already exists for the same
// (job, worker) pair. The unique index plus ON CONFLICT DO NOTHING makes
// the check-and-insert a single atomic statement; a concurrent duplicate
// surfaces as zero affected rows, not as a second record.
func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.ApplicationStatus == "" {
		app.ApplicationStatus = models.ApplicationStatusPending
	}
	if app.AppliedAt.IsZero() {
		app.AppliedAt = nowFunc()
	}

	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_id"}, {Name: "worker_id"}},
		DoNothing: true,
	}).Create(app)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDuplicateApplication
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.Where("id = ?", id).Take(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"application_status": status,
			"updated_at":         nowFunc(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Application{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// DeleteByJob removes every application for a job. Used by the job delete
// cascade; deleting a job with no applications is not an error.
func (r *ApplicationRepositoryImpl) DeleteByJob(jobID string) (int64, error) {
	result := r.db.Where("job_id = ?", jobID).Delete(&models.Application{})
	return result.RowsAffected, result.Error
}

func (r *ApplicationRepositoryImpl) DeleteByWorker(workerID string) (int64, error) {
	result := r.db.Where("worker_id = ?", workerID).Delete(&models.Application{})
	return result.RowsAffected, result.Error
}

func (r *ApplicationRepositoryImpl) ListByWorker(workerID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Where("worker_id = ?", workerID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByWorkerAndStatus(workerID string, status models.ApplicationStatus) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Where("worker_id = ? AND application_status = ?", workerID, status).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

// ListByJobIDs returns every application for the given jobs, newest first.
// An empty ID list short-circuits; gorm would otherwise emit IN (NULL).
func (r *ApplicationRepositoryImpl) ListByJobIDs(jobIDs []string) ([]models.Application, error) {
	if len(jobIDs) == 0 {
		return []models.Application{}, nil
	}
	var apps []models.Application
	err := r.db.Where("job_id IN ?", jobIDs).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListAll() ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Order("applied_at DESC").Find(&apps).Error
	return apps, err
}

// StatusCounts groups applications by status for the admin dashboard.
func (r *ApplicationRepositoryImpl) StatusCounts() ([]models.ApplicationStatusCount, error) {
	var counts []models.ApplicationStatusCount
	err := r.db.Model(&models.Application{}).
		Select("application_status AS status, COUNT(*) AS count").
		Group("application_status").
		Scan(&counts).Error
	return counts, err
}
