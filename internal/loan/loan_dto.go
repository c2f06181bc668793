package loan

import (
	"github.com/shopspring/decimal"
)

type CreateLoanRequest struct {
	EmployeeID        string          `json:"employee_id" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	InstallmentAmount decimal.Decimal `json:"installment_amount" binding:"required"`
	StartDate         string          `json:"start_date" binding:"required"`
}

type LoanResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	Amount            decimal.Decimal `json:"amount"`
	RemainingAmount   decimal.Decimal `json:"remaining_amount"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	StartDate         string          `json:"start_date"`
	Status            string          `json:"status"`
	ApprovedBy        *string         `json:"approved_by,omitempty"`
	ApprovedAt        *string         `json:"approved_at,omitempty"`
	CreatedAt         string          `json:"created_at"`
}

func mapToResponse(l *Loan) *LoanResponse {
	resp := &LoanResponse{
		ID:                l.ID.String(),
		EmployeeID:        l.EmployeeID.String(),
		Amount:            l.Amount,
		RemainingAmount:   l.RemainingAmount,
		InstallmentAmount: l.InstallmentAmount,
		StartDate:         l.StartDate.Format("2006-01-02"),
		Status:            l.Status,
		CreatedAt:         l.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ApprovedAt = &v
	}
	return resp
}
