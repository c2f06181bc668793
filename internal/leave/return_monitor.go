package leave

import (
	"context"
	"errors"
	"time"

	"go-absensi/internal/attendance"
	leaveerrors "go-absensi/internal/leave/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReturnStatus adalah hasil pemeriksaan kembali-kerja untuk satu cuti.
type ReturnStatus struct {
	LeaveID    string
	EmployeeID string
	EndDate    time.Time
	Applicable bool
	IsLate     bool
	ReturnDate *time.Time
}

// ReturnMonitor mencocokkan end_date cuti approved dengan absensi
// sesudahnya. Karyawan diharapkan sudah punch lagi tepat di end_date;
// punch pada end_date sendiri tidak pernah dianggap telat karena jendela
// scan baru mulai sehari sesudahnya.
type ReturnMonitor struct {
	leaveRepo      Repository
	attendanceRepo attendance.Repository
	logger         *zap.Logger
}

func NewReturnMonitor(leaveRepo Repository, attendanceRepo attendance.Repository) *ReturnMonitor {
	return &ReturnMonitor{
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
		logger:         zap.L().Named("leave.return_monitor"),
	}
}

func (m *ReturnMonitor) CheckByID(ctx context.Context, id string) (ReturnStatus, error) {
	l, err := m.leaveRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReturnStatus{}, leaveerrors.ErrLeaveNotFound
		}
		return ReturnStatus{}, err
	}
	return m.Check(ctx, l, time.Now())
}

func (m *ReturnMonitor) Check(ctx context.Context, l *Leave, now time.Time) (ReturnStatus, error) {
	status := ReturnStatus{
		LeaveID:    l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		EndDate:    l.EndDate,
	}

	// Hanya cuti approved yang end_date-nya sudah lewat penuh
	// (akhir hari lokal) yang diperiksa.
	if l.Status != StatusApproved || !now.After(endOfDay(l.EndDate, now.Location())) {
		return status, nil
	}
	status.Applicable = true

	employeeID := l.EmployeeID.String()

	// Punch tepat di end_date berarti kembali tepat waktu.
	onEndDate, err := m.attendanceRepo.FindByEmployeeAndDate(ctx, employeeID, l.EndDate)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ReturnStatus{}, err
	}
	if onEndDate != nil && onEndDate.CheckIn != nil {
		returned := l.EndDate
		status.ReturnDate = &returned
		return status, nil
	}

	// Jendela scan: sehari setelah end_date sampai hari ini.
	windowStart := l.EndDate.AddDate(0, 0, 1)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	records, err := m.attendanceRepo.FindByEmployeeInRange(ctx, employeeID, windowStart, today)
	if err != nil {
		return ReturnStatus{}, err
	}

	status.IsLate = true
	for _, r := range records {
		if r.CheckIn == nil {
			continue
		}
		// Record urut tanggal naik; yang pertama adalah kepulangan paling awal.
		returned := r.AttendanceDate
		status.ReturnDate = &returned
		break
	}

	return status, nil
}

// LateReturns memindai semua cuti approved yang sudah lewat dan
// mengembalikan yang telat kembali (termasuk yang belum kembali sama sekali).
func (m *ReturnMonitor) LateReturns(ctx context.Context, now time.Time) ([]ReturnStatus, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	leaves, err := m.leaveRepo.FindApprovedEndedBefore(ctx, today)
	if err != nil {
		return nil, err
	}

	var out []ReturnStatus
	for i := range leaves {
		st, err := m.Check(ctx, &leaves[i], now)
		if err != nil {
			return nil, err
		}
		if st.Applicable && st.IsLate {
			out = append(out, st)
		}
	}
	return out, nil
}

func endOfDay(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999_000_000, loc)
}
