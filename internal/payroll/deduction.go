package payroll

import (
	"context"
	"time"

	"go-absensi/internal/attendance"
	"go-absensi/internal/loan"
	"go-absensi/internal/settings"

	"github.com/shopspring/decimal"
)

const (
	DeductionTypeLoan        = "LOAN_INSTALLMENT"
	DeductionTypeLatePenalty = "LATE_PENALTY"
)

type DeductionLine struct {
	Type       string
	Label      string
	Quantity   int64
	UnitAmount decimal.Decimal
	Amount     decimal.Decimal
}

type DeductionResult struct {
	Lines       []DeductionLine
	Total       decimal.Decimal
	LateMinutes int
	AbsentCount int
}

// DeductionCalculator menghitung potongan slip gaji satu periode:
// cicilan pinjaman aktif lalu denda keterlambatan. Ketidakhadiran
// hanya dilaporkan, tidak dipotong.
type DeductionCalculator struct {
	loans      loan.Repository
	attendance attendance.Repository
	rates      settings.Provider
}

func NewDeductionCalculator(loans loan.Repository, att attendance.Repository, rates settings.Provider) *DeductionCalculator {
	return &DeductionCalculator{
		loans:      loans,
		attendance: att,
		rates:      rates,
	}
}

func (c *DeductionCalculator) Calculate(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (*DeductionResult, error) {
	result := &DeductionResult{Total: decimal.Zero}

	// Urutan baris tetap: cicilan pinjaman dulu, denda belakangan.
	activeLoans, err := c.loans.FindActiveByEmployee(ctx, employeeID, periodStart)
	if err != nil {
		return nil, err
	}
	for i := range activeLoans {
		l := &activeLoans[i]
		installment := l.InstallmentAmount
		if installment.GreaterThan(l.RemainingAmount) {
			installment = l.RemainingAmount
		}
		result.Lines = append(result.Lines, DeductionLine{
			Type:       DeductionTypeLoan,
			Label:      "Potongan cicilan pinjaman",
			Quantity:   1,
			UnitAmount: installment,
			Amount:     installment,
		})
		result.Total = result.Total.Add(installment)
	}

	records, err := c.attendance.FindByEmployeeInRange(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	for i := range records {
		switch records[i].Status {
		case attendance.StatusLate:
			result.LateMinutes += records[i].LateMinutes
		case attendance.StatusAbsent:
			result.AbsentCount++
		}
	}

	if result.LateMinutes > 0 {
		rate, err := c.rates.LatePenaltyRatePerMinute(ctx)
		if err != nil {
			return nil, err
		}
		penalty := rate.Mul(decimal.NewFromInt(int64(result.LateMinutes)))
		result.Lines = append(result.Lines, DeductionLine{
			Type:       DeductionTypeLatePenalty,
			Label:      "Denda keterlambatan",
			Quantity:   int64(result.LateMinutes),
			UnitAmount: rate,
			Amount:     penalty,
		})
		result.Total = result.Total.Add(penalty)
	}

	return result, nil
}
