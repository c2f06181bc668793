package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
)

// Satu slip per karyawan per periode. Keunikan dijaga partial unique
// index di level database (slip CANCELLED tidak ikut dihitung):
//
//	CREATE UNIQUE INDEX uq_payroll_employee_period
//	ON payrolls (employee_id, period_year, period_month)
//	WHERE status <> 'CANCELLED' AND deleted_at IS NULL;
type Payroll struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`
	PeriodMonth int       `gorm:"column:period_month;type:smallint;not null"`
	PeriodYear  int       `gorm:"column:period_year;type:smallint;not null"`

	BaseSalary     decimal.Decimal `gorm:"column:base_salary;type:numeric(18,2);not null;default:0"`
	Allowance      decimal.Decimal `gorm:"column:allowance;type:numeric(18,2);not null;default:0"`
	OvertimeHours  decimal.Decimal `gorm:"column:overtime_hours;type:numeric(10,2);not null;default:0"`
	OvertimeRate   decimal.Decimal `gorm:"column:overtime_rate;type:numeric(18,2);not null;default:0"`
	OvertimeAmount decimal.Decimal `gorm:"column:overtime_amount;type:numeric(18,2);not null;default:0"`
	Deduction      decimal.Decimal `gorm:"column:deduction;type:numeric(18,2);not null;default:0"`
	NetSalary      decimal.Decimal `gorm:"column:net_salary;type:numeric(18,2);not null;default:0"`

	// AbsentCount dilaporkan di slip tapi tidak dipotong.
	AbsentCount int `gorm:"column:absent_count;type:int;not null;default:0"`
	LateMinutes int `gorm:"column:late_minutes;type:int;not null;default:0"`

	Status    string     `gorm:"column:status;type:varchar(20);not null;default:'PENDING';index"`
	CreatedBy uuid.UUID  `gorm:"column:created_by;type:uuid;not null"`
	PaidAt    *time.Time `gorm:"column:paid_at;type:timestamptz;index"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`

	Components []PayrollComponent `gorm:"foreignKey:PayrollID"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

const (
	ComponentDeduction = "DEDUCTION"
)

type PayrollComponent struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollID     uuid.UUID       `gorm:"column:payroll_id;type:uuid;not null;index"`
	ComponentType string          `gorm:"column:component_type;type:varchar(20);not null;index"`
	ComponentName string          `gorm:"column:component_name;type:varchar(120);not null"`
	Quantity      int64           `gorm:"column:quantity;type:bigint;not null;default:1"`
	UnitAmount    decimal.Decimal `gorm:"column:unit_amount;type:numeric(18,2);not null;default:0"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount;type:numeric(18,2);not null;default:0"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (PayrollComponent) TableName() string {
	return "payroll_components"
}

// PeriodBounds mengembalikan hari pertama dan terakhir periode slip.
func PeriodBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, -1)
	return start, end
}
