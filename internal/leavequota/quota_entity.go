package leavequota

import (
	"time"

	"github.com/google/uuid"
)

// LeaveQuota memegang saldo cuti per karyawan.
// Invariant: remaining_days = total_days - used_days >= 0, dijaga atomik
// di lapisan store, bukan di aplikasi.
type LeaveQuota struct {
	EmployeeID    uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey"`
	TotalDays     int       `gorm:"column:total_days;not null"`
	UsedDays      int       `gorm:"column:used_days;not null;default:0"`
	RemainingDays int       `gorm:"column:remaining_days;not null"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (LeaveQuota) TableName() string {
	return "leave_quotas"
}
