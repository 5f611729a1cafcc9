package repositories

import (
	"errors"

	"jobboard_backend/internal/fanout"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/partition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrWorkerNotFound = errors.New("worker not found")

// WorkerProfileUpdate is a full-overwrite update: every field is written,
// so an unsupplied field resets the column to the empty string. Callers
// that want to keep a value must send it back.
type WorkerProfileUpdate struct {
	FullName   string
	Skills     string
	Phone      string
	Location   string
	Experience string
	Age        string
	Gender     string
}

type WorkerRepository interface {
	EnsureExists(userID, fullName, skills string) (*models.Worker, error)
	FindByUser(userID string) (*models.Worker, error)
	FindByID(workerID string) (*models.Worker, error)
	UpdateProfile(workerID string, upd WorkerProfileUpdate) error
	DeleteByUser(userID string) error
}

type WorkerRepositoryImpl struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &WorkerRepositoryImpl{db: db}
}

// EnsureExists returns the worker profile for the user, creating it when
// absent. Creation stages the row in the unpartitioned workers table,
// computes the owning hash partition from the new ID, relocates the row
// there and removes the staging copy. Idempotent: a second call finds the
// existing profile by a cross-partition scan and creates nothing.
func (r *WorkerRepositoryImpl) EnsureExists(userID, fullName, skills string) (*models.Worker, error) {
	existing, err := r.FindByUser(userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrWorkerNotFound) {
		return nil, err
	}

	worker := &models.Worker{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		UserID:    userID,
		FullName:  fullName,
		Skills:    skills,
	}

	// Stage first: gives concurrent ensures a row to collide with before
	// the partition copy exists.
	if err := r.db.Create(worker).Error; err != nil {
		return nil, err
	}

	table := partition.WorkerTable(worker.ID)
	if err := r.db.Table(table).Create(worker).Error; err != nil {
		r.db.Delete(&models.Worker{}, "id = ?", worker.ID)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to another ensure for the same user.
			return r.FindByUser(userID)
		}
		return nil, err
	}

	// The staging copy served its purpose.
	r.db.Delete(&models.Worker{}, "id = ?", worker.ID)

	return worker, nil
}

// FindByUser scans every hash partition for the user's profile. The owning
// partition is keyed by worker ID, not user ID, so a scan is the only way
// in from this side.
func (r *WorkerRepositoryImpl) FindByUser(userID string) (*models.Worker, error) {
	return r.findInPartitions("user_id = ?", userID)
}

// FindByID resolves the owning partition from the ID hash and queries it
// directly. A miss falls back to a full-partition scan: rows created
// before partitioning (or under a different scheme) may live elsewhere.
func (r *WorkerRepositoryImpl) FindByID(workerID string) (*models.Worker, error) {
	table := partition.WorkerTable(workerID)

	var worker models.Worker
	err := r.db.Table(table).Where("id = ?", workerID).Take(&worker).Error
	if err == nil {
		return &worker, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return r.findInPartitions("id = ?", workerID)
}

// UpdateProfile overwrites the profile fields in the owning partition.
// The ID is known here, so the router resolves the partition without any
// fallback scan; zero affected rows means the worker is not there.
func (r *WorkerRepositoryImpl) UpdateProfile(workerID string, upd WorkerProfileUpdate) error {
	table := partition.WorkerTable(workerID)

	result := r.db.Table(table).Where("id = ?", workerID).Updates(map[string]interface{}{
		"full_name":  upd.FullName,
		"skills":     upd.Skills,
		"phone":      upd.Phone,
		"location":   upd.Location,
		"experience": upd.Experience,
		"age":        upd.Age,
		"gender":     upd.Gender,
		"updated_at": nowFunc(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkerNotFound
	}
	return nil
}

// DeleteByUser removes the user's profile from whichever partition holds
// it. Used by the user-delete cascade.
func (r *WorkerRepositoryImpl) DeleteByUser(userID string) error {
	for _, table := range partition.AllWorkerTables() {
		result := r.db.Table(table).Where("user_id = ?", userID).Delete(&models.Worker{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}
	}
	return nil
}

func (r *WorkerRepositoryImpl) findInPartitions(cond string, arg interface{}) (*models.Worker, error) {
	hit, err := fanout.First(partition.AllWorkerTables(), func(table string) (*models.Worker, error) {
		var worker models.Worker
		err := r.db.Table(table).Where(cond, arg).Take(&worker).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &worker, nil
	})
	if err != nil {
		return nil, err
	}
	if hit == nil {
		return nil, ErrWorkerNotFound
	}
	return hit, nil
}
