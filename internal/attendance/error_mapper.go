package attendance

import (
	"errors"
	"strings"

	attendanceerrors "go-absensi/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError menerjemahkan pelanggaran constraint database ke error
// modul. Unique index uq_attendance_employee_date adalah penjamin utama
// satu punch per (employee, date); pre-check di service hanya UX.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrCheckInNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_employee_date" {
			return attendanceerrors.ErrAlreadyCheckedIn
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_employee_date") {
		return attendanceerrors.ErrAlreadyCheckedIn
	}

	return err
}
