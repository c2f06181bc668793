package leavequota

import (
	"context"
	"database/sql"
	"errors"

	quotaerrors "go-absensi/internal/leavequota/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=quota_service.go -destination=mock/quota_service_mock.go -package=mock

// Tracker memutasi saldo cuti. Satu-satunya jalur mutasi adalah transisi
// approval cuti; transisi balik (approved lalu dibatalkan) tidak
// didefinisikan dan sengaja tidak diada-adakan di sini.
type Tracker interface {
	Get(ctx context.Context, employeeID string) (QuotaResponse, error)
	ApplyApproval(ctx context.Context, tx *sql.Tx, employeeID string, days int) error
}

type tracker struct {
	repo   Repository
	logger *zap.Logger
}

func NewTracker(repo Repository) Tracker {
	return &tracker{repo: repo, logger: zap.L().Named("leavequota.tracker")}
}

func (t *tracker) Get(ctx context.Context, employeeID string) (QuotaResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return QuotaResponse{}, quotaerrors.ErrInvalidEmployeeID
	}

	q, err := t.repo.Get(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuotaResponse{}, quotaerrors.ErrQuotaNotFound
		}
		return QuotaResponse{}, err
	}
	return mapToResponse(*q), nil
}

func (t *tracker) ApplyApproval(ctx context.Context, tx *sql.Tx, employeeID string, days int) error {
	repo := t.repo
	if tx != nil {
		repo = repo.WithTx(tx)
	}

	q, ok, err := repo.IncrementUsed(ctx, employeeID, days)
	if err != nil {
		return err
	}
	if !ok {
		// Guard gagal: bedakan kuota belum ada vs saldo tidak cukup.
		if _, getErr := repo.Get(ctx, employeeID); getErr != nil {
			if errors.Is(getErr, gorm.ErrRecordNotFound) {
				return quotaerrors.ErrQuotaNotFound
			}
			return getErr
		}
		return quotaerrors.ErrQuotaExceeded
	}

	t.logger.Info("leave quota applied",
		zap.String("employee_id", employeeID),
		zap.Int("days", days),
		zap.Int("used_days", q.UsedDays),
		zap.Int("remaining_days", q.RemainingDays),
	)
	return nil
}

type QuotaResponse struct {
	EmployeeID    string `json:"employee_id"`
	TotalDays     int    `json:"total_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
}

func mapToResponse(q LeaveQuota) QuotaResponse {
	return QuotaResponse{
		EmployeeID:    q.EmployeeID.String(),
		TotalDays:     q.TotalDays,
		UsedDays:      q.UsedDays,
		RemainingDays: q.RemainingDays,
	}
}
