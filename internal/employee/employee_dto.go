package employee

import (
	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID            string          `json:"id"`
	FullName      string          `json:"full_name"`
	Email         string          `json:"email"`
	Position      string          `json:"position"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	AccountLinked bool            `json:"account_linked"`
}

func mapToResponse(e *Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:            e.ID.String(),
		FullName:      e.FullName,
		Email:         e.Email,
		Position:      e.Position,
		BaseSalary:    e.BaseSalary,
		AccountLinked: e.HasLinkedAccount(),
	}
}
