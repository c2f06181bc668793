package attendance

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	attendanceerrors "go-absensi/internal/attendance/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                func(tx *sql.Tx) Repository
	createFn                func(ctx context.Context, a *Attendance) error
	findByEmployeeAndDateFn func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	findByEmployeeInRangeFn func(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	updateFn                func(ctx context.Context, a *Attendance) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                 { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
	return f.findByEmployeeInRangeFn(ctx, employeeID, start, end)
}
func (f *fakeRepo) Update(ctx context.Context, a *Attendance) error { return f.updateFn(ctx, a) }

type fakeEvaluator struct {
	evaluated *Attendance
	err       error
}

func (f *fakeEvaluator) EvaluateCheckIn(ctx context.Context, tx *sql.Tx, rec *Attendance) error {
	f.evaluated = rec
	return f.err
}

type fakeGate struct {
	err error
}

func (f *fakeGate) Verify(ctx context.Context, employeeID string) error { return f.err }

func newFakeRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, a *Attendance) error { return nil }
	repo.updateFn = func(ctx context.Context, a *Attendance) error { return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.findByEmployeeInRangeFn = func(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
		return nil, nil
	}
	return repo
}

func TestService_CheckInAndCheckOut(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	ctx := context.Background()

	var saved Attendance
	repo := newFakeRepo()
	repo.createFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.updateFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		if saved.ID == uuid.Nil {
			return nil, gorm.ErrRecordNotFound
		}
		return &saved, nil
	}

	evaluator := &fakeEvaluator{}
	svc := NewService(db, repo, nil, evaluator)

	mock.ExpectBegin()
	mock.ExpectCommit()
	inResp, err := svc.CheckIn(ctx, employeeID, CheckInRequest{})
	assert.NoError(t, err)
	assert.NotEmpty(t, inResp.ID)
	assert.NotNil(t, evaluator.evaluated)
	assert.Equal(t, saved.ID, evaluator.evaluated.ID)

	mock.ExpectBegin()
	mock.ExpectCommit()
	outResp, err := svc.CheckOut(ctx, employeeID, CheckOutRequest{})
	assert.NoError(t, err)
	assert.NotNil(t, outResp.CheckOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckIn_Duplicate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New()}, nil
	}

	svc := NewService(db, repo, nil, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.CheckIn(context.Background(), uuid.New().String(), CheckInRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckIn_VerificationFailed(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	gate := &fakeGate{err: errors.New("face mismatch")}

	svc := NewService(db, repo, gate, nil)

	// Gagal verifikasi berarti tidak ada transaksi sama sekali.
	_, err := svc.CheckIn(context.Background(), uuid.New().String(), CheckInRequest{})
	assert.Error(t, err)
}

func TestService_CheckIn_InvalidEmployeeID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeRepo(), nil, nil)
	_, err := svc.CheckIn(context.Background(), "bukan-uuid", CheckInRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidEmployeeID)
}

func TestService_CheckOut_WithoutCheckIn(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()

	svc := NewService(db, repo, nil, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.CheckOut(context.Background(), uuid.New().String(), CheckOutRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrCheckInNotFound)
}

func TestService_CheckOut_Twice(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	now := time.Now()
	repo := newFakeRepo()
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New(), CheckIn: &now, CheckOut: &now}, nil
	}

	svc := NewService(db, repo, nil, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.CheckOut(context.Background(), uuid.New().String(), CheckOutRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)
}

func TestService_CheckOut_OnAbsentRow(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	// Baris ABSENT ditulis alur lain tanpa punch; checkout harus ditolak.
	repo := newFakeRepo()
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New(), Status: StatusAbsent}, nil
	}

	svc := NewService(db, repo, nil, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.CheckOut(context.Background(), uuid.New().String(), CheckOutRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrCheckInNotFound)
}

func TestService_ListByEmployee_RowWithoutPunch(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	punch := time.Date(2026, 1, 5, 8, 0, 0, 0, time.Local)
	repo := newFakeRepo()
	repo.findByEmployeeInRangeFn = func(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
		return []Attendance{
			{ID: uuid.New(), EmployeeID: uuid.New(), AttendanceDate: dateOnly(punch), CheckIn: &punch, Status: StatusPresent},
			{ID: uuid.New(), EmployeeID: uuid.New(), AttendanceDate: dateOnly(punch).AddDate(0, 0, 1), Status: StatusAbsent},
		}, nil
	}

	svc := NewService(db, repo, nil, nil)

	resp, err := svc.ListByEmployee(context.Background(), uuid.New().String(), "2026-01-01", "2026-01-31")
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.NotNil(t, resp[0].CheckIn)
	assert.Nil(t, resp[1].CheckIn)
	assert.Equal(t, StatusAbsent, resp[1].Status)
}

func TestService_ListByEmployee_InvalidRange(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeRepo(), nil, nil)
	_, err := svc.ListByEmployee(context.Background(), uuid.New().String(), "2026-02-01", "2026-01-01")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateRange)
}
