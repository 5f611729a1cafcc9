package dto

type AdminCreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=worker employer admin"`

	FullName     string `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Skills       string `json:"skills,omitempty" validate:"omitempty,max=1000"`
	CompanyName  string `json:"company_name,omitempty" validate:"omitempty,max=200"`
	EmployerName string `json:"employer_name,omitempty" validate:"omitempty,max=200"`
	AdminName    string `json:"admin_name,omitempty" validate:"omitempty,max=200"`
	Department   string `json:"department,omitempty" validate:"omitempty,max=200"`
}

// AdminUpdateUserRequest is sparse: only supplied fields change.
type AdminUpdateUserRequest struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role" validate:"omitempty,oneof=worker employer admin"`
}

type AdminCreateJobRequest struct {
	EmployerID     string   `json:"employer_id" validate:"required,uuid"`
	Title          string   `json:"title" validate:"required,max=200"`
	RequiredSkills string   `json:"required_skills" validate:"omitempty,max=1000"`
	Description    string   `json:"description" validate:"omitempty,max=5000"`
	SalaryMin      *float64 `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *float64 `json:"salary_max" validate:"omitempty,min=0"`
	Location       string   `json:"location" validate:"omitempty,max=200"`
	Status         string   `json:"status" validate:"omitempty,oneof=open closed"`
}

// AdminUpdateJobRequest is sparse: only supplied fields change.
type AdminUpdateJobRequest struct {
	Title          *string  `json:"title" validate:"omitempty,max=200"`
	RequiredSkills *string  `json:"required_skills" validate:"omitempty,max=1000"`
	Description    *string  `json:"description" validate:"omitempty,max=5000"`
	SalaryMin      *float64 `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *float64 `json:"salary_max" validate:"omitempty,min=0"`
	Location       *string  `json:"location" validate:"omitempty,max=200"`
	Status         *string  `json:"status" validate:"omitempty,oneof=open closed"`
}

type AdminUpdateProfileRequest struct {
	AdminName  string `json:"admin_name" validate:"omitempty,max=200"`
	Department string `json:"department" validate:"omitempty,max=200"`
}

type AdminUpdateApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}
