package dto

import "time"

type PostJobRequest struct {
	Title          string   `json:"title" validate:"required,max=200"`
	RequiredSkills string   `json:"required_skills" validate:"omitempty,max=1000"`
	Description    string   `json:"description" validate:"omitempty,max=5000"`
	SalaryMin      *float64 `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *float64 `json:"salary_max" validate:"omitempty,min=0"`
	Location       string   `json:"location" validate:"omitempty,max=200"`
}

type UpdateEmployerProfileRequest struct {
	EmployerName string `json:"employer_name" validate:"omitempty,max=200"`
	CompanyName  string `json:"company_name" validate:"required,max=200"`
	Location     string `json:"location" validate:"omitempty,max=200"`
	Phone        string `json:"phone" validate:"omitempty,max=30"`
}

// SearchJobsQuery carries the free-text search filters; all optional,
// AND-composed when present.
type SearchJobsQuery struct {
	Text     string `form:"q"`
	Location string `form:"location"`
	Skills   string `form:"skills"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// ApplicantView is an application enriched with the worker's profile,
// for the employer's applicant review screen.
type ApplicantView struct {
	ApplicationID string    `json:"application_id"`
	JobID         string    `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
	WorkerID      string    `json:"worker_id"`
	FullName      string    `json:"full_name"`
	Skills        string    `json:"skills"`
	Phone         string    `json:"phone"`
	Location      string    `json:"location"`
	Experience    string    `json:"experience"`
}
