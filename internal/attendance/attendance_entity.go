package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusAbsent  = "ABSENT"
	StatusLeave   = "LEAVE"
	StatusHoliday = "HOLIDAY"
)

// Attendance menyimpan satu record harian. Keunikan (employee_id,
// attendance_date) dijamin unique index, bukan pre-check aplikasi.
// CheckIn nullable: baris ABSENT/LEAVE/HOLIDAY ditulis alur lain
// tanpa punch sama sekali.
type Attendance struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	AttendanceDate time.Time      `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	CheckIn        *time.Time     `gorm:"column:check_in;type:timestamptz"`
	CheckOut       *time.Time     `gorm:"column:check_out;type:timestamptz"`
	Status         string         `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	LateMinutes    int            `gorm:"column:late_minutes;not null;default:0"`
	Latitude       *float64       `gorm:"column:latitude"`
	Longitude      *float64       `gorm:"column:longitude"`
	Notes          *string        `gorm:"column:notes;type:text"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
