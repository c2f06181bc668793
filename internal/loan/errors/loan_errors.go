package loanerrors

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
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount and installment_amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInstallmentExceedsPrincipal = apperror.PolicyViolation(
		"installment_amount must not exceed loan amount",
	)
	ErrLoanNotFound = apperror.New(
		apperror.CodeNotFound,
		"loan not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid loan status transition",
		http.StatusBadRequest,
	)
)
