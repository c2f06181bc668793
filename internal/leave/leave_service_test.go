package leave

import (
	"context"
	"database/sql"
	"testing"
	"time"

	leaveerrors "go-absensi/internal/leave/errors"
	"go-absensi/internal/leavequota"
	quotaerrors "go-absensi/internal/leavequota/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepo struct {
	createFn                  func(ctx context.Context, l *Leave) error
	findByIDFn                func(ctx context.Context, id string) (*Leave, error)
	findAllFn                 func(ctx context.Context) ([]Leave, error)
	findApprovedByEmployeeFn  func(ctx context.Context, employeeID string) ([]Leave, error)
	findApprovedEndedBeforeFn func(ctx context.Context, date time.Time) ([]Leave, error)
	hasOverlappingPeriodFn    func(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error)
	updateFn                  func(ctx context.Context, l *Leave) error
}

func (f *fakeLeaveRepo) WithTx(tx *sql.Tx) Repository              { return f }
func (f *fakeLeaveRepo) Create(ctx context.Context, l *Leave) error { return f.createFn(ctx, l) }
func (f *fakeLeaveRepo) FindByID(ctx context.Context, id string) (*Leave, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeLeaveRepo) FindAll(ctx context.Context) ([]Leave, error) { return f.findAllFn(ctx) }
func (f *fakeLeaveRepo) FindApprovedByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	return f.findApprovedByEmployeeFn(ctx, employeeID)
}
func (f *fakeLeaveRepo) FindApprovedEndedBefore(ctx context.Context, date time.Time) ([]Leave, error) {
	return f.findApprovedEndedBeforeFn(ctx, date)
}
func (f *fakeLeaveRepo) HasOverlappingPeriod(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error) {
	return f.hasOverlappingPeriodFn(ctx, employeeID, start, end, excludeID)
}
func (f *fakeLeaveRepo) Update(ctx context.Context, l *Leave) error { return f.updateFn(ctx, l) }

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{
		createFn:   func(ctx context.Context, l *Leave) error { return nil },
		findByIDFn: func(ctx context.Context, id string) (*Leave, error) { return nil, gorm.ErrRecordNotFound },
		findAllFn:  func(ctx context.Context) ([]Leave, error) { return nil, nil },
		findApprovedByEmployeeFn: func(ctx context.Context, employeeID string) ([]Leave, error) {
			return nil, nil
		},
		findApprovedEndedBeforeFn: func(ctx context.Context, date time.Time) ([]Leave, error) {
			return nil, nil
		},
		hasOverlappingPeriodFn: func(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error) {
			return false, nil
		},
		updateFn: func(ctx context.Context, l *Leave) error { return nil },
	}
}

type fakeQuotaTracker struct {
	appliedDays int
	err         error
}

func (f *fakeQuotaTracker) Get(ctx context.Context, employeeID string) (leavequota.QuotaResponse, error) {
	return leavequota.QuotaResponse{}, nil
}

func (f *fakeQuotaTracker) ApplyApproval(ctx context.Context, tx *sql.Tx, employeeID string, days int) error {
	if f.err != nil {
		return f.err
	}
	f.appliedDays += days
	return nil
}

func TestService_Create_CountsDaysInclusive(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Leave
	repo := newFakeLeaveRepo()
	repo.createFn = func(ctx context.Context, l *Leave) error { saved = *l; return nil }

	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), uuid.New().String(), CreateLeaveRequest{
		EmployeeID: uuid.New().String(),
		LeaveType:  "ANNUAL",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-04",
		Reason:     "acara keluarga",
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, StatusPending, saved.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_Overlap(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeLeaveRepo()
	repo.hasOverlappingPeriodFn = func(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error) {
		return true, nil
	}

	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), uuid.New().String(), CreateLeaveRequest{
		EmployeeID: uuid.New().String(),
		LeaveType:  "ANNUAL",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-04",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
}

func TestService_Create_InvalidRange(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeLeaveRepo(), nil)
	_, err := svc.Create(context.Background(), uuid.New().String(), CreateLeaveRequest{
		EmployeeID: uuid.New().String(),
		StartDate:  "2026-03-04",
		EndDate:    "2026-03-02",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
}

func TestService_Approve_AppliesQuota(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	pending := &Leave{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		StartDate:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		Days:       3,
		Status:     StatusPending,
	}

	repo := newFakeLeaveRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*Leave, error) { return pending, nil }

	tracker := &fakeQuotaTracker{}
	svc := NewService(db, repo, tracker)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Approve(context.Background(), uuid.New().String(), pending.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
	assert.Equal(t, 3, tracker.appliedDays)
	assert.NotNil(t, resp.ApprovedBy)
}

func TestService_Approve_QuotaExceededRollsBack(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	pending := &Leave{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		Days:       10,
		Status:     StatusPending,
	}

	updated := false
	repo := newFakeLeaveRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*Leave, error) { return pending, nil }
	repo.updateFn = func(ctx context.Context, l *Leave) error { updated = true; return nil }

	tracker := &fakeQuotaTracker{err: quotaerrors.ErrQuotaExceeded}
	svc := NewService(db, repo, tracker)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Approve(context.Background(), uuid.New().String(), pending.ID.String())
	assert.ErrorIs(t, err, quotaerrors.ErrQuotaExceeded)
	assert.False(t, updated)
}

func TestService_Approve_NotPending(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeLeaveRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*Leave, error) {
		return &Leave{ID: uuid.New(), Status: StatusApproved}, nil
	}

	svc := NewService(db, repo, &fakeQuotaTracker{})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Approve(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
}

func TestService_Reject_RequiresReason(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeLeaveRepo(), nil)
	_, err := svc.Reject(context.Background(), uuid.New().String(), uuid.New().String(), "")
	assert.ErrorIs(t, err, leaveerrors.ErrRejectionReasonRequired)
}
