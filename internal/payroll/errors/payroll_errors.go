package payrollerrors

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
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"period_month must be 1-12 and period_year must be positive",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"allowance, overtime_hours and overtime_rate must not be negative",
		http.StatusBadRequest,
	)
	ErrAccountNotLinked = apperror.New(
		apperror.CodeInvalidState,
		"employee has no linked account",
		http.StatusUnprocessableEntity,
	)
	ErrDuplicatePayroll = apperror.New(
		apperror.CodeConflict,
		"payroll already exists for this period",
		http.StatusConflict,
	)
	ErrAlreadyPaidForPeriod = apperror.New(
		apperror.CodeConflict,
		"payroll for this period has already been paid",
		http.StatusConflict,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid payroll status transition",
		http.StatusBadRequest,
	)
)
