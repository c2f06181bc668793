package attendanceerrors

import (
	"net/http"

	"go-absensi/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"already checked in for today",
		http.StatusConflict,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeConflict,
		"already checked out for today",
		http.StatusConflict,
	)
	ErrCheckInNotFound = apperror.New(
		apperror.CodeNotFound,
		"check in not found for today",
		http.StatusNotFound,
	)
	ErrVerificationFailed = apperror.New(
		apperror.CodeInvalidState,
		"face verification failed",
		http.StatusForbidden,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
