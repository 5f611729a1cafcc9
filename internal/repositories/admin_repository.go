package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminProfileUpdate struct {
	AdminName  string
	Department string
}

type AdminRepository interface {
	Create(admin *models.Admin) error
	FindByUser(userID string) (*models.Admin, error)
	UpdateProfile(userID string, update AdminProfileUpdate) error
	DeleteByUser(userID string) error
}

type AdminRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) Create(admin *models.Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	return r.db.Create(admin).Error
}

func (r *AdminRepositoryImpl) FindByUser(userID string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("user_id = ?", userID).Take(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) UpdateProfile(userID string, update AdminProfileUpdate) error {
	result := r.db.Model(&models.Admin{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"admin_name": update.AdminName,
			"department": update.Department,
			"updated_at": nowFunc(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepositoryImpl) DeleteByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Admin{}).Error
}
