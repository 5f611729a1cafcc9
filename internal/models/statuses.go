package models

type UserRole string
type JobStatus string
type ApplicationStatus string

const (
	UserRoleWorker   UserRole = "worker"
	UserRoleEmployer UserRole = "employer"
	UserRoleAdmin    UserRole = "admin"

	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ValidRole reports whether r is one of the three account roles.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleWorker, UserRoleEmployer, UserRoleAdmin:
		return true
	}
	return false
}

// ValidJobStatus reports whether s is a known job status.
func ValidJobStatus(s JobStatus) bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}
