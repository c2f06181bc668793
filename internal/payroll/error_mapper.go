package payroll

import (
	"errors"
	"strings"

	employeeerrors "go-absensi/internal/employee/errors"
	payrollerrors "go-absensi/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "uq_payroll_employee_period") {
			return payrollerrors.ErrDuplicatePayroll
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}

	// Driver lain kadang tidak membungkus *pgconn.PgError.
	if strings.Contains(err.Error(), "uq_payroll_employee_period") {
		return payrollerrors.ErrDuplicatePayroll
	}

	return err
}

func mapEmployeeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}
