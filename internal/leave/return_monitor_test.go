package leave

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-absensi/internal/attendance"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAttRepo struct {
	byDate  map[string]*attendance.Attendance
	inRange []attendance.Attendance
}

func (f *fakeAttRepo) WithTx(tx *sql.Tx) attendance.Repository { return f }
func (f *fakeAttRepo) Create(ctx context.Context, a *attendance.Attendance) error {
	return nil
}
func (f *fakeAttRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if rec, ok := f.byDate[date.Format("2006-01-02")]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttRepo) FindByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.inRange {
		if !r.AttendanceDate.Before(start) && !r.AttendanceDate.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeAttRepo) Update(ctx context.Context, a *attendance.Attendance) error { return nil }

func punchAt(t time.Time) *time.Time { return &t }

func approvedLeave(endDate time.Time) *Leave {
	return &Leave{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		StartDate:  endDate.AddDate(0, 0, -2),
		EndDate:    endDate,
		Days:       3,
		Status:     StatusApproved,
	}
}

func TestReturnMonitor_NotApplicableBeforeEndOfEndDate(t *testing.T) {
	endDate := time.Date(2026, 4, 10, 0, 0, 0, 0, time.Local)
	l := approvedLeave(endDate)

	m := NewReturnMonitor(newFakeLeaveRepo(), &fakeAttRepo{})

	// Masih di hari end_date sendiri: belum bisa dinilai.
	now := time.Date(2026, 4, 10, 17, 0, 0, 0, time.Local)
	st, err := m.Check(context.Background(), l, now)
	assert.NoError(t, err)
	assert.False(t, st.Applicable)
	assert.False(t, st.IsLate)
}

func TestReturnMonitor_NotApplicableForPending(t *testing.T) {
	endDate := time.Date(2026, 4, 10, 0, 0, 0, 0, time.Local)
	l := approvedLeave(endDate)
	l.Status = StatusPending

	m := NewReturnMonitor(newFakeLeaveRepo(), &fakeAttRepo{})

	now := time.Date(2026, 4, 20, 9, 0, 0, 0, time.Local)
	st, err := m.Check(context.Background(), l, now)
	assert.NoError(t, err)
	assert.False(t, st.Applicable)
}

func TestReturnMonitor_PunchOnEndDateIsOnTime(t *testing.T) {
	endDate := time.Date(2026, 4, 10, 0, 0, 0, 0, time.Local)
	l := approvedLeave(endDate)

	att := &fakeAttRepo{byDate: map[string]*attendance.Attendance{
		"2026-04-10": {
			ID:             uuid.New(),
			AttendanceDate: endDate,
			CheckIn:        punchAt(endDate.Add(8 * time.Hour)),
		},
	}}
	m := NewReturnMonitor(newFakeLeaveRepo(), att)

	now := time.Date(2026, 4, 13, 9, 0, 0, 0, time.Local)
	st, err := m.Check(context.Background(), l, now)
	assert.NoError(t, err)
	assert.True(t, st.Applicable)
	assert.False(t, st.IsLate)
	assert.NotNil(t, st.ReturnDate)
	assert.Equal(t, endDate, *st.ReturnDate)
}

func TestReturnMonitor_LateReturnUsesFirstPunchAfterEndDate(t *testing.T) {
	endDate := time.Date(2026, 4, 10, 0, 0, 0, 0, time.Local)
	l := approvedLeave(endDate)

	returnDay := time.Date(2026, 4, 13, 0, 0, 0, 0, time.Local)
	att := &fakeAttRepo{inRange: []attendance.Attendance{
		{
			ID:             uuid.New(),
			AttendanceDate: returnDay,
			CheckIn:        punchAt(returnDay.Add(8 * time.Hour)),
		},
		{
			ID:             uuid.New(),
			AttendanceDate: returnDay.AddDate(0, 0, 1),
			CheckIn:        punchAt(returnDay.AddDate(0, 0, 1).Add(8 * time.Hour)),
		},
	}}
	m := NewReturnMonitor(newFakeLeaveRepo(), att)

	now := time.Date(2026, 4, 15, 9, 0, 0, 0, time.Local)
	st, err := m.Check(context.Background(), l, now)
	assert.NoError(t, err)
	assert.True(t, st.Applicable)
	assert.True(t, st.IsLate)
	assert.NotNil(t, st.ReturnDate)
	assert.Equal(t, returnDay, *st.ReturnDate)
}

func TestReturnMonitor_NeverReturned(t *testing.T) {
	endDate := time.Date(2026, 4, 10, 0, 0, 0, 0, time.Local)
	l := approvedLeave(endDate)

	m := NewReturnMonitor(newFakeLeaveRepo(), &fakeAttRepo{})

	now := time.Date(2026, 4, 20, 9, 0, 0, 0, time.Local)
	st, err := m.Check(context.Background(), l, now)
	assert.NoError(t, err)
	assert.True(t, st.Applicable)
	assert.True(t, st.IsLate)
	assert.Nil(t, st.ReturnDate)
}

func TestReturnMonitor_LateReturnsReport(t *testing.T) {
	onTime := approvedLeave(time.Date(2026, 4, 10, 0, 0, 0, 0, time.Local))
	late := approvedLeave(time.Date(2026, 4, 11, 0, 0, 0, 0, time.Local))

	repo := newFakeLeaveRepo()
	repo.findApprovedEndedBeforeFn = func(ctx context.Context, date time.Time) ([]Leave, error) {
		return []Leave{*onTime, *late}, nil
	}

	// Hanya cuti pertama yang punya punch tepat di end_date-nya.
	att := &fakeAttRepo{byDate: map[string]*attendance.Attendance{
		"2026-04-10": {
			ID:             uuid.New(),
			AttendanceDate: onTime.EndDate,
			CheckIn:        punchAt(onTime.EndDate.Add(8 * time.Hour)),
		},
	}}

	m := NewReturnMonitor(repo, att)

	now := time.Date(2026, 4, 20, 9, 0, 0, 0, time.Local)
	out, err := m.LateReturns(context.Background(), now)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, late.ID.String(), out[0].LeaveID)
	assert.True(t, out[0].IsLate)
}
