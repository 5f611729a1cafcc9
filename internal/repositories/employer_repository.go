package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmployerNotFound = errors.New("employer not found")

// EmployerProfileUpdate overwrites the whole profile; empty fields clear
// their columns rather than being skipped.
type EmployerProfileUpdate struct {
	EmployerName string
	CompanyName  string
	Location     string
	Phone        string
}

type EmployerRepository interface {
	Create(employer *models.Employer) error
	FindByUser(userID string) (*models.Employer, error)
	FindByID(id string) (*models.Employer, error)
	UpdateProfile(userID string, update EmployerProfileUpdate) error
	DeleteByUser(userID string) error
}

type EmployerRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &EmployerRepositoryImpl{db: db}
}

func (r *EmployerRepositoryImpl) Create(employer *models.Employer) error {
	if employer.ID == "" {
		employer.ID = uuid.NewString()
	}
	return r.db.Create(employer).Error
}

func (r *EmployerRepositoryImpl) FindByUser(userID string) (*models.Employer, error) {
	var employer models.Employer
	err := r.db.Where("user_id = ?", userID).Take(&employer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employer, nil
}

func (r *EmployerRepositoryImpl) FindByID(id string) (*models.Employer, error) {
	var employer models.Employer
	err := r.db.Where("id = ?", id).Take(&employer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employer, nil
}

func (r *EmployerRepositoryImpl) UpdateProfile(userID string, update EmployerProfileUpdate) error {
	result := r.db.Model(&models.Employer{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"employer_name": update.EmployerName,
			"company_name":  update.CompanyName,
			"location":      update.Location,
			"phone":         update.Phone,
			"updated_at":    nowFunc(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployerNotFound
	}
	return nil
}

func (r *EmployerRepositoryImpl) DeleteByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Employer{}).Error
}
