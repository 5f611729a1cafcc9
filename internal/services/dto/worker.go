package dto

import "time"

// UpdateWorkerProfileRequest is a full overwrite: the whole profile is
// sent every time, omitted fields clear their columns.
type UpdateWorkerProfileRequest struct {
	FullName   string `json:"full_name" validate:"required,max=200"`
	Skills     string `json:"skills" validate:"omitempty,max=1000"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	Location   string `json:"location" validate:"omitempty,max=200"`
	Experience string `json:"experience" validate:"omitempty,max=500"`
	Age        string `json:"age" validate:"omitempty,max=10"`
	Gender     string `json:"gender" validate:"omitempty,max=20"`
}

type ApplyRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
}

// WorkerApplicationView is an application row enriched with its job and,
// once approved, the employer's contact email.
type WorkerApplicationView struct {
	ApplicationID string    `json:"application_id"`
	JobID         string    `json:"job_id"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
	Title         string    `json:"title"`
	CompanyName   string    `json:"company_name"`
	Location      string    `json:"location"`
	SalaryRange   string    `json:"salary_range"`

	// Contact fields, filled only once the application is approved.
	CompanyPhone    string `json:"company_phone,omitempty"`
	CompanyLocation string `json:"company_location,omitempty"`
	EmployerEmail   string `json:"employer_email,omitempty"`
}
