package leave

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindAll(ctx context.Context) ([]Leave, error)
	FindApprovedByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	FindApprovedEndedBefore(ctx context.Context, date time.Time) ([]Leave, error)
	HasOverlappingPeriod(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error)
	Update(ctx context.Context, l *Leave) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengalihkan seluruh operasi repo ke transaksi milik service.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{Context: r.db.Statement.Context, NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindApprovedByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Order("end_date DESC").
		Find(&rows).Error
	return rows, err
}

// FindApprovedEndedBefore mengambil cuti approved yang end_date-nya sudah
// lewat, bahan laporan telat-kembali.
func (r *repository) FindApprovedEndedBefore(ctx context.Context, date time.Time) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusApproved).
		Where("end_date < ?", date.Format("2006-01-02")).
		Order("end_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("employee_id = ?", employeeID).
		Where("status <> ?", StatusRejected).
		Where("start_date <= ? AND end_date >= ?", end.Format("2006-01-02"), start.Format("2006-01-02"))
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}
