package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusPaidOff  = "PAID_OFF"
)

type Loan struct {
	ID                uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID        uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;index"`
	Amount            decimal.Decimal `gorm:"column:amount;type:numeric(18,2);not null"`
	RemainingAmount   decimal.Decimal `gorm:"column:remaining_amount;type:numeric(18,2);not null"`
	InstallmentAmount decimal.Decimal `gorm:"column:installment_amount;type:numeric(18,2);not null"`
	StartDate         time.Time       `gorm:"column:start_date;type:date;not null"`
	Status            string          `gorm:"column:status;type:varchar(20);not null;default:PENDING"`
	ApprovedBy        *uuid.UUID      `gorm:"column:approved_by;type:uuid"`
	ApprovedAt        *time.Time      `gorm:"column:approved_at;type:timestamptz"`
	CreatedAt         time.Time       `gorm:"column:created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Loan) TableName() string {
	return "loans"
}
