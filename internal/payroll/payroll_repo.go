package payroll

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payroll *Payroll) error
	FindByID(ctx context.Context, id string) (*Payroll, error)
	// FindByIDForUpdate mengunci baris slip (SELECT ... FOR UPDATE)
	// selama transaksi berjalan.
	FindByIDForUpdate(ctx context.Context, id string) (*Payroll, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	// FindStatusesForPeriod mengembalikan status slip non-CANCELLED
	// pada periode tersebut. Pre-check saja, keunikan final ada di
	// unique index uq_payroll_employee_period.
	FindStatusesForPeriod(ctx context.Context, employeeID string, year, month int) ([]string, error)
	Update(ctx context.Context, payroll *Payroll) error
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

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Create(payroll).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).
		Preload("Components").
		First(&payroll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Components").
		First(&payroll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("period_year DESC, period_month DESC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindStatusesForPeriod(ctx context.Context, employeeID string, year, month int) ([]string, error) {
	var statuses []string
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("employee_id = ?", employeeID).
		Where("period_year = ? AND period_month = ?", year, month).
		Where("status <> ?", StatusCancelled).
		Pluck("status", &statuses).Error
	return statuses, err
}

func (r *repository) Update(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Save(payroll).Error
}
