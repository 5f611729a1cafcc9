package apperrors

import (
	"fmt"
	"net/http"
)

// Domain factories for the job-board entities.

// NotFound converts a repository miss into a 404.
func NotFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// Conflict reports a state collision (duplicate application, self-delete).
func Conflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// Forbidden reports that the authenticated identity does not own the
// resource being mutated.
func Forbidden(domain, message string) *AppError {
	return New(CodeForbidden, domain, message, http.StatusForbidden)
}

// InvalidStatus reports an enum value outside the allowed set.
func InvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// InvalidCredentials is the single login failure; it does not reveal
// whether the email exists.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Bad credentials",
	http.StatusUnauthorized,
)

// PartitionFailure marks one partition's failed leg of a fan-out scan.
// The engine recovers it locally; it carries no HTTP code of its own
// because it must never reach a response.
func PartitionFailure(table string, err error) *AppError {
	return Wrap(err, CodePartitionFailure, "partition",
		fmt.Sprintf("partition %s query failed", table), http.StatusInternalServerError)
}
