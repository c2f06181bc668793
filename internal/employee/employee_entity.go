package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Employee struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName   string          `gorm:"column:full_name;type:varchar(120);not null"`
	Email      string          `gorm:"column:email;type:varchar(120);not null;uniqueIndex"`
	Position   string          `gorm:"column:position;type:varchar(80)"`
	BaseSalary decimal.Decimal `gorm:"column:base_salary;type:numeric(18,2);not null;default:0"`
	// UserID terisi setelah karyawan punya akun login. Payroll menolak
	// karyawan yang belum tertaut akun.
	UserID    *uuid.UUID     `gorm:"column:user_id;type:uuid;uniqueIndex"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) HasLinkedAccount() bool {
	return e.UserID != nil
}
