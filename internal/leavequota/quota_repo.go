package leavequota

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=quota_repo.go -destination=mock/quota_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Get(ctx context.Context, employeeID string) (*LeaveQuota, error)
	// IncrementUsed menambah used_days secara atomik dengan guard saldo.
	// Mengembalikan RowsAffected 0 (lewat ok=false) bila guard gagal.
	IncrementUsed(ctx context.Context, employeeID string, days int) (*LeaveQuota, bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengalihkan seluruh operasi repo ke transaksi milik service,
// supaya guard kuota batal bersama approval yang gagal.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{Context: r.db.Statement.Context, NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Get(ctx context.Context, employeeID string) (*LeaveQuota, error) {
	var q LeaveQuota
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *repository) IncrementUsed(ctx context.Context, employeeID string, days int) (*LeaveQuota, bool, error) {
	var q LeaveQuota

	// Raw SQL atomik: guard saldo dan increment dalam satu statement,
	// aman terhadap approval paralel untuk karyawan yang sama.
	res := r.db.WithContext(ctx).Raw(`
		UPDATE leave_quotas
		SET used_days = used_days + ?,
		    remaining_days = total_days - (used_days + ?),
		    updated_at = now()
		WHERE employee_id = ?
		  AND total_days - (used_days + ?) >= 0
		RETURNING employee_id, total_days, used_days, remaining_days
	`, days, days, employeeID, days).Scan(&q)

	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return &q, true, nil
}
