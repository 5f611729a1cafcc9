package models

import "time"

// Job rows live in per-year partition tables (jobs_2024, jobs_2025, ...)
// named after the year of PostedAt at creation time. The assignment never
// changes, even when the status does. The default table name "jobs" is a
// legacy unpartitioned table that partition discovery excludes.
type Job struct {
	BaseModel
	EmployerID     string    `gorm:"type:uuid;not null" json:"employer_id"`
	Title          string    `json:"title"`
	RequiredSkills string    `json:"required_skills"` // comma-separated tags
	Description    string    `json:"description"`
	SalaryMin      *float64  `json:"salary_min"`
	SalaryMax      *float64  `json:"salary_max"`
	Location       string    `json:"location"`
	Status         JobStatus `gorm:"type:varchar(20)" json:"status"`
	PostedAt       time.Time `json:"posted_at"`
}

// JobMatch is a matched-jobs row: a job joined with its employer and with
// the requesting worker's application, if any.
type JobMatch struct {
	JobID             string    `json:"job_id"`
	Title             string    `json:"title"`
	Location          string    `json:"location"`
	PostedAt          time.Time `json:"posted_at"`
	RequiredSkills    string    `json:"required_skills"`
	Description       string    `json:"description"`
	SalaryMin         *float64  `json:"salary_min"`
	SalaryMax         *float64  `json:"salary_max"`
	ApplicationStatus *string   `json:"application_status"`
	CompanyName       string    `json:"company_name"`
	CompanyPhone      string    `json:"company_phone"`
	CompanyLocation   string    `json:"company_location"`
}

// JobSearchResult is a free-text search row joined with the employer.
type JobSearchResult struct {
	JobID          string    `json:"job_id"`
	Title          string    `json:"title"`
	Location       string    `json:"location"`
	PostedAt       time.Time `json:"posted_at"`
	RequiredSkills string    `json:"required_skills"`
	Description    string    `json:"description"`
	SalaryMin      *float64  `json:"salary_min"`
	SalaryMax      *float64  `json:"salary_max"`
	CompanyName    string    `json:"company_name"`
}

// JobWithEmployer is the admin listing row.
type JobWithEmployer struct {
	JobID          string    `json:"job_id"`
	EmployerID     string    `json:"employer_id"`
	Title          string    `json:"title"`
	RequiredSkills string    `json:"required_skills"`
	Description    string    `json:"description"`
	SalaryMin      *float64  `json:"salary_min"`
	SalaryMax      *float64  `json:"salary_max"`
	Location       string    `json:"location"`
	Status         string    `json:"status"`
	PostedAt       time.Time `json:"posted_at"`
	CompanyName    string    `json:"company_name"`
}

// JobPartitionStats describes one year partition for the debug surface.
type JobPartitionStats struct {
	Collection    string `json:"collection"`
	Year          int    `json:"year"`
	DocumentCount int64  `json:"document_count"`
}
