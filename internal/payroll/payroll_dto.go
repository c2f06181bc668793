package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePayrollRequest struct {
	EmployeeID    string          `json:"employee_id" binding:"required"`
	PeriodMonth   int             `json:"period_month" binding:"required"`
	PeriodYear    int             `json:"period_year" binding:"required"`
	Allowance     decimal.Decimal `json:"allowance"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
}

type DeductionLineResponse struct {
	Type       string          `json:"type"`
	Label      string          `json:"label"`
	Quantity   int64           `json:"quantity"`
	UnitAmount decimal.Decimal `json:"unit_amount"`
	Amount     decimal.Decimal `json:"amount"`
}

type PayrollResponse struct {
	ID             string                  `json:"id"`
	EmployeeID     string                  `json:"employee_id"`
	PeriodMonth    int                     `json:"period_month"`
	PeriodYear     int                     `json:"period_year"`
	BaseSalary     decimal.Decimal         `json:"base_salary"`
	Allowance      decimal.Decimal         `json:"allowance"`
	OvertimeHours  decimal.Decimal         `json:"overtime_hours"`
	OvertimeRate   decimal.Decimal         `json:"overtime_rate"`
	OvertimeAmount decimal.Decimal         `json:"overtime_amount"`
	Deduction      decimal.Decimal         `json:"deduction"`
	NetSalary      decimal.Decimal         `json:"net_salary"`
	LateMinutes    int                     `json:"late_minutes"`
	AbsentCount    int                     `json:"absent_count"`
	Status         string                  `json:"status"`
	PaidAt         *string                 `json:"paid_at,omitempty"`
	Deductions     []DeductionLineResponse `json:"deductions,omitempty"`
}

type DeductionPreviewResponse struct {
	EmployeeID  string                  `json:"employee_id"`
	PeriodMonth int                     `json:"period_month"`
	PeriodYear  int                     `json:"period_year"`
	LateMinutes int                     `json:"late_minutes"`
	AbsentCount int                     `json:"absent_count"`
	Total       decimal.Decimal         `json:"total"`
	Lines       []DeductionLineResponse `json:"lines"`
}

func mapLines(lines []DeductionLine) []DeductionLineResponse {
	resp := make([]DeductionLineResponse, 0, len(lines))
	for _, line := range lines {
		resp = append(resp, DeductionLineResponse{
			Type:       line.Type,
			Label:      line.Label,
			Quantity:   line.Quantity,
			UnitAmount: line.UnitAmount,
			Amount:     line.Amount,
		})
	}
	return resp
}

func mapToResponse(p *Payroll, lines []DeductionLine) *PayrollResponse {
	resp := &PayrollResponse{
		ID:             p.ID.String(),
		EmployeeID:     p.EmployeeID.String(),
		PeriodMonth:    p.PeriodMonth,
		PeriodYear:     p.PeriodYear,
		BaseSalary:     p.BaseSalary,
		Allowance:      p.Allowance,
		OvertimeHours:  p.OvertimeHours,
		OvertimeRate:   p.OvertimeRate,
		OvertimeAmount: p.OvertimeAmount,
		Deduction:      p.Deduction,
		NetSalary:      p.NetSalary,
		LateMinutes:    p.LateMinutes,
		AbsentCount:    p.AbsentCount,
		Status:         p.Status,
	}
	if p.PaidAt != nil {
		v := p.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	if lines != nil {
		resp.Deductions = mapLines(lines)
	} else if len(p.Components) > 0 {
		for _, comp := range p.Components {
			resp.Deductions = append(resp.Deductions, DeductionLineResponse{
				Type:       comp.ComponentType,
				Label:      comp.ComponentName,
				Quantity:   comp.Quantity,
				UnitAmount: comp.UnitAmount,
				Amount:     comp.TotalAmount,
			})
		}
	}
	return resp
}

func mapPreview(employeeID string, year, month int, ded *DeductionResult) *DeductionPreviewResponse {
	return &DeductionPreviewResponse{
		EmployeeID:  employeeID,
		PeriodMonth: month,
		PeriodYear:  year,
		LateMinutes: ded.LateMinutes,
		AbsentCount: ded.AbsentCount,
		Total:       ded.Total,
		Lines:       mapLines(ded.Lines),
	}
}
