package models

type Employer struct {
	BaseModel
	UserID       string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CompanyName  string `json:"company_name"`
	EmployerName string `json:"employer_name"`
	Location     string `json:"location"`
	Phone        string `json:"phone"`
}
