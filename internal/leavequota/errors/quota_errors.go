package quotaerrors

import (
	"net/http"

	"go-absensi/internal/shared/apperror"
)

var (
	ErrQuotaNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave quota not found for employee",
		http.StatusNotFound,
	)
	ErrQuotaExceeded = apperror.PolicyViolation(
		"remaining leave quota is not enough",
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)
