package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-absensi/internal/employee"
	"go-absensi/internal/loan"
	payrollerrors "go-absensi/internal/payroll/errors"
	"go-absensi/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	calc      *DeductionCalculator
	loans     *loan.Service
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	calc *DeductionCalculator,
	loans *loan.Service,
) *Service {
	return &Service{
		db:        db,
		repo:      repo,
		employees: employees,
		calc:      calc,
		loans:     loans,
		logger:    zap.L().Named("payroll.service"),
	}
}

func (s *Service) Create(ctx context.Context, actorID string, req CreatePayrollRequest) (*PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidActorID
	}
	if req.PeriodMonth < 1 || req.PeriodMonth > 12 || req.PeriodYear < 1 {
		return nil, payrollerrors.ErrInvalidPeriod
	}
	if req.Allowance.IsNegative() || req.OvertimeHours.IsNegative() || req.OvertimeRate.IsNegative() {
		return nil, payrollerrors.ErrInvalidAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := s.lookupEmployee(ctx, tx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !emp.HasLinkedAccount() {
		return nil, payrollerrors.ErrAccountNotLinked
	}

	// Pre-check untuk pesan error yang jelas. Race tetap ditangkap
	// unique index uq_payroll_employee_period.
	statuses, err := qtx.FindStatusesForPeriod(ctx, req.EmployeeID, req.PeriodYear, req.PeriodMonth)
	if err != nil {
		return nil, err
	}
	for _, st := range statuses {
		if st == StatusPaid {
			return nil, payrollerrors.ErrAlreadyPaidForPeriod
		}
	}
	if len(statuses) > 0 {
		return nil, payrollerrors.ErrDuplicatePayroll
	}

	periodStart, periodEnd := PeriodBounds(req.PeriodYear, req.PeriodMonth)

	// Slip tidak boleh tersimpan kalau agregasi potongan gagal.
	ded, err := s.calc.Calculate(ctx, req.EmployeeID, periodStart, periodEnd)
	if err != nil {
		s.logger.Error("perhitungan potongan gagal",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return nil, err
	}

	overtimeAmount := req.OvertimeHours.Mul(req.OvertimeRate)
	netSalary := emp.BaseSalary.Add(req.Allowance).Add(overtimeAmount).Sub(ded.Total)

	row := &Payroll{
		ID:             uuid.New(),
		EmployeeID:     employeeUUID,
		PeriodMonth:    req.PeriodMonth,
		PeriodYear:     req.PeriodYear,
		BaseSalary:     emp.BaseSalary,
		Allowance:      req.Allowance,
		OvertimeHours:  req.OvertimeHours,
		OvertimeRate:   req.OvertimeRate,
		OvertimeAmount: overtimeAmount,
		Deduction:      ded.Total,
		NetSalary:      netSalary,
		AbsentCount:    ded.AbsentCount,
		LateMinutes:    ded.LateMinutes,
		Status:         StatusPending,
		CreatedBy:      actorUUID,
		Components:     buildComponents(ded.Lines),
	}

	if err := qtx.Create(ctx, row); err != nil {
		return nil, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("slip gaji dibuat",
		zap.String("request_id", rid),
		zap.String("payroll_id", row.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("period_month", req.PeriodMonth),
		zap.Int("period_year", req.PeriodYear),
		zap.String("net_salary", netSalary.String()),
	)
	return mapToResponse(row, ded.Lines), nil
}

// PreviewDeductions menghitung potongan tanpa menyimpan apa pun.
func (s *Service) PreviewDeductions(ctx context.Context, employeeID string, year, month int) (*DeductionPreviewResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}
	if month < 1 || month > 12 || year < 1 {
		return nil, payrollerrors.ErrInvalidPeriod
	}

	periodStart, periodEnd := PeriodBounds(year, month)
	ded, err := s.calc.Calculate(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	return mapPreview(employeeID, year, month, ded), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*PayrollResponse, error) {
	row, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(row, nil), nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]PayrollResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	resp := make([]PayrollResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, *mapToResponse(&rows[i], nil))
	}
	return resp, nil
}

// MarkAsPaid menandai slip PAID dan memotong cicilan pinjaman aktif
// dalam transaksi yang sama.
func (s *Service) MarkAsPaid(ctx context.Context, id string) (*PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrPayrollNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Status dibaca dengan lock baris: dua pembayaran paralel tidak bisa
	// sama-sama melihat PENDING lalu memotong cicilan dua kali.
	row, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	switch row.Status {
	case StatusPending:
	case StatusPaid:
		return nil, payrollerrors.ErrAlreadyPaidForPeriod
	default:
		return nil, payrollerrors.ErrInvalidStatusTransition
	}

	now := time.Now()
	row.Status = StatusPaid
	row.PaidAt = &now
	if err := qtx.Update(ctx, row); err != nil {
		return nil, err
	}

	periodStart, _ := PeriodBounds(row.PeriodYear, row.PeriodMonth)
	if _, err := s.loans.ApplyInstallments(ctx, tx, row.EmployeeID.String(), periodStart); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("slip gaji dibayar",
		zap.String("payroll_id", row.ID.String()),
		zap.String("employee_id", row.EmployeeID.String()),
	)
	return mapToResponse(row, nil), nil
}

func (s *Service) Cancel(ctx context.Context, id string) (*PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrPayrollNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	// PAID dan CANCELLED adalah status terminal.
	if row.Status != StatusPending {
		return nil, payrollerrors.ErrInvalidStatusTransition
	}

	row.Status = StatusCancelled
	if err := qtx.Update(ctx, row); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return mapToResponse(row, nil), nil
}

func (s *Service) findByID(ctx context.Context, id string) (*Payroll, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrPayrollNotFound
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return row, nil
}

func (s *Service) lookupEmployee(ctx context.Context, tx *sql.Tx, id string) (*employee.Employee, error) {
	row, err := s.employees.WithTx(tx).FindByID(ctx, id)
	if err != nil {
		return nil, mapEmployeeError(err)
	}
	return row, nil
}

func buildComponents(lines []DeductionLine) []PayrollComponent {
	components := make([]PayrollComponent, 0, len(lines))
	for _, line := range lines {
		components = append(components, PayrollComponent{
			ID:            uuid.New(),
			ComponentType: ComponentDeduction,
			ComponentName: line.Label,
			Quantity:      line.Quantity,
			UnitAmount:    line.UnitAmount,
			TotalAmount:   line.Amount,
		})
	}
	return components
}
