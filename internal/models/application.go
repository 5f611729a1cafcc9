package models

import "time"

// Application links a worker to a job. At most one per (job, worker) pair,
// enforced by the unique compound index created in storage.Migrate.
type Application struct {
	BaseModel
	JobID             string            `gorm:"type:uuid;not null;uniqueIndex:uq_applications_job_worker" json:"job_id"`
	WorkerID          string            `gorm:"type:uuid;not null;uniqueIndex:uq_applications_job_worker" json:"worker_id"`
	ApplicationStatus ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"application_status"`
	AppliedAt         time.Time         `json:"applied_at"`
}

// ApplicationStatusCount is one bucket of the status statistics.
type ApplicationStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
