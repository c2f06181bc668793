package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-absensi/internal/attendance/errors"
	"go-absensi/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Evaluator dijalankan di dalam transaksi check-in supaya event eskalasi
// tercatat atomik bersama punch yang memicunya.
type Evaluator interface {
	EvaluateCheckIn(ctx context.Context, tx *sql.Tx, rec *Attendance) error
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]AttendanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	gate      Gate
	evaluator Evaluator
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, gate Gate, evaluator Evaluator, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if gate == nil {
		gate = NewNoopGate()
	}
	return &service{db: db, repo: repo, gate: gate, evaluator: evaluator, logger: l}
}

func (s *service) CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	// Verifikasi wajah dulu; punch tidak boleh tercatat sebelum lolos.
	if err := s.gate.Verify(ctx, employeeID); err != nil {
		s.logger.Warn("check in verification failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, apperror.Wrap(err,
			attendanceerrors.ErrVerificationFailed.Code,
			attendanceerrors.ErrVerificationFailed.Message,
			attendanceerrors.ErrVerificationFailed.HTTPStatus,
		)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now()
	today := dateOnly(now)

	// Pre-check hanya fast-fail; penjamin keunikan tetap unique index.
	existing, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}

	cls := Classify(now)

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     uuid.MustParse(employeeID),
		AttendanceDate: today,
		CheckIn:        &now,
		Status:         cls.Status,
		LateMinutes:    cls.LateMinutes,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Notes:          req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if s.evaluator != nil {
		if err := s.evaluator.EvaluateCheckIn(ctx, tx, row); err != nil {
			s.logger.Error("compliance evaluation failed",
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("check in recorded",
		zap.String("attendance_id", row.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("status", row.Status),
		zap.Int("late_minutes", row.LateMinutes),
	)
	return mapToResponse(*row), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now()

	row, err := qtx.FindByEmployeeAndDate(ctx, employeeID, dateOnly(now))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrCheckInNotFound
		}
		return AttendanceResponse{}, err
	}
	// Baris tanpa punch masuk (mis. ABSENT) tidak bisa di-checkout.
	if row.CheckIn == nil {
		return AttendanceResponse{}, attendanceerrors.ErrCheckInNotFound
	}
	if row.CheckOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	row.CheckOut = &now
	if req.Latitude != nil {
		row.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		row.Longitude = req.Longitude
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("check out recorded",
		zap.String("attendance_id", row.ID.String()),
		zap.String("employee_id", employeeID),
	)
	return mapToResponse(*row), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := dateOnly(now)

	var err error
	if startDate != "" {
		if start, err = parseDate(startDate); err != nil {
			return nil, err
		}
	}
	if endDate != "" {
		if end, err = parseDate(endDate); err != nil {
			return nil, err
		}
	}
	if start.After(end) {
		return nil, attendanceerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindByEmployeeInRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		Status:         a.Status,
		LateMinutes:    a.LateMinutes,
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
		Notes:          a.Notes,
	}
	if a.CheckIn != nil {
		v := a.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if a.CheckOut != nil {
		v := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}
