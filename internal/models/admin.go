package models

type Admin struct {
	BaseModel
	UserID     string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	AdminName  string `json:"admin_name"`
	Department string `json:"department"`
}
