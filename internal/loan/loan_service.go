package loan

import (
	"context"
	"database/sql"
	"errors"
	"time"

	loanerrors "go-absensi/internal/loan/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) *Service {
	return &Service{
		db:     db,
		repo:   repo,
		logger: zap.L().Named("loan.service"),
	}
}

func (s *Service) Create(ctx context.Context, req CreateLoanRequest) (*LoanResponse, error) {
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return nil, loanerrors.ErrInvalidEmployeeID
	}
	if !req.Amount.IsPositive() || !req.InstallmentAmount.IsPositive() {
		return nil, loanerrors.ErrInvalidAmount
	}
	if req.InstallmentAmount.GreaterThan(req.Amount) {
		return nil, loanerrors.ErrInstallmentExceedsPrincipal
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, loanerrors.ErrInvalidDateFormat
	}

	row := &Loan{
		EmployeeID:        uuid.MustParse(req.EmployeeID),
		Amount:            req.Amount,
		RemainingAmount:   req.Amount,
		InstallmentAmount: req.InstallmentAmount,
		StartDate:         startDate,
		Status:            StatusPending,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("gagal membuat pinjaman", zap.Error(err))
		return nil, err
	}

	s.logger.Info("pinjaman dibuat",
		zap.String("loan_id", row.ID.String()),
		zap.String("employee_id", row.EmployeeID.String()),
	)
	return mapToResponse(row), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*LoanResponse, error) {
	row, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(row), nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]LoanResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, loanerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	resp := make([]LoanResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, *mapToResponse(&rows[i]))
	}
	return resp, nil
}

func (s *Service) Approve(ctx context.Context, id string, approverID string) (*LoanResponse, error) {
	approver, err := uuid.Parse(approverID)
	if err != nil {
		return nil, loanerrors.ErrInvalidActorID
	}

	row, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.Status != StatusPending {
		return nil, loanerrors.ErrInvalidStatusTransition
	}

	now := time.Now()
	row.Status = StatusApproved
	row.ApprovedBy = &approver
	row.ApprovedAt = &now
	if err := s.repo.Update(ctx, row); err != nil {
		return nil, err
	}

	s.logger.Info("pinjaman disetujui",
		zap.String("loan_id", row.ID.String()),
		zap.String("approved_by", approverID),
	)
	return mapToResponse(row), nil
}

func (s *Service) Reject(ctx context.Context, id string) (*LoanResponse, error) {
	row, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.Status != StatusPending {
		return nil, loanerrors.ErrInvalidStatusTransition
	}

	row.Status = StatusRejected
	if err := s.repo.Update(ctx, row); err != nil {
		return nil, err
	}
	return mapToResponse(row), nil
}

// ApplyInstallments mengurangi sisa pinjaman aktif sebesar satu cicilan
// masing-masing. Dipanggil payroll saat slip ditandai PAID, dalam
// transaksi yang sama.
func (s *Service) ApplyInstallments(ctx context.Context, tx *sql.Tx, employeeID string, periodStart time.Time) (decimal.Decimal, error) {
	qtx := s.repo.WithTx(tx)

	loans, err := qtx.FindActiveByEmployee(ctx, employeeID, periodStart)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range loans {
		l := &loans[i]
		installment := l.InstallmentAmount
		if installment.GreaterThan(l.RemainingAmount) {
			installment = l.RemainingAmount
		}
		l.RemainingAmount = l.RemainingAmount.Sub(installment)
		if l.RemainingAmount.IsZero() {
			l.Status = StatusPaidOff
		}
		if err := qtx.Update(ctx, l); err != nil {
			return decimal.Zero, err
		}
		total = total.Add(installment)

		s.logger.Info("cicilan pinjaman dipotong",
			zap.String("loan_id", l.ID.String()),
			zap.String("employee_id", employeeID),
			zap.String("installment", installment.String()),
			zap.String("remaining", l.RemainingAmount.String()),
		)
	}
	return total, nil
}

func (s *Service) findByID(ctx context.Context, id string) (*Loan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, loanerrors.ErrLoanNotFound
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanerrors.ErrLoanNotFound
		}
		return nil, err
	}
	return row, nil
}
