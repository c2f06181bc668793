package compliance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-absensi/internal/attendance"
	"go-absensi/internal/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) WithTx(tx *sql.Tx) attendance.Repository { return f }
func (f *fakeAttendanceRepo) Create(ctx context.Context, a *attendance.Attendance) error {
	return nil
}
func (f *fakeAttendanceRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) FindByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if !r.AttendanceDate.Before(start) && !r.AttendanceDate.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeAttendanceRepo) Update(ctx context.Context, a *attendance.Attendance) error {
	return nil
}

type fakeSink struct {
	emitted []events.EscalationIssuedEvent
}

func (f *fakeSink) Emit(ctx context.Context, tx *sql.Tx, event events.EscalationIssuedEvent) error {
	f.emitted = append(f.emitted, event)
	return nil
}

func punchAt(t time.Time) *time.Time { return &t }

func TestAccumulator_WeeklyMinutesTrigger(t *testing.T) {
	employeeID := uuid.New()
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)

	repo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: uuid.New(), EmployeeID: employeeID, AttendanceDate: monday, Status: attendance.StatusLate, LateMinutes: 25},
	}}
	sink := &fakeSink{}
	acc := NewAccumulator(repo, sink, MinutePolicy{})

	trigger := &attendance.Attendance{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		AttendanceDate: monday.AddDate(0, 0, 2),
		CheckIn:        punchAt(monday.AddDate(0, 0, 2).Add(8*time.Hour + 20*time.Minute)),
		Status:         attendance.StatusLate,
		LateMinutes:    15,
	}

	err := acc.EvaluateCheckIn(context.Background(), nil, trigger)
	assert.NoError(t, err)
	assert.Len(t, sink.emitted, 1)
	assert.Equal(t, events.KindSP1, sink.emitted[0].Kind)
	assert.Equal(t, "weekly_late_minutes", sink.emitted[0].Policy)
	assert.Equal(t, 40, sink.emitted[0].TriggerValue)
	assert.Equal(t, employeeID.String(), sink.emitted[0].EmployeeID)
}

func TestAccumulator_TriggerNotDoubleCounted(t *testing.T) {
	employeeID := uuid.New()
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)

	// Record pemicu sudah terlihat oleh scan; gabungan manual tidak boleh
	// menghitungnya dua kali.
	trigger := attendance.Attendance{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		AttendanceDate: monday,
		CheckIn:        punchAt(monday.Add(8*time.Hour + 25*time.Minute)),
		Status:         attendance.StatusLate,
		LateMinutes:    20,
	}
	repo := &fakeAttendanceRepo{records: []attendance.Attendance{trigger}}
	sink := &fakeSink{}
	acc := NewAccumulator(repo, sink, MinutePolicy{})

	err := acc.EvaluateCheckIn(context.Background(), nil, &trigger)
	assert.NoError(t, err)
	assert.Empty(t, sink.emitted)
}

func TestAccumulator_BothPoliciesCanFire(t *testing.T) {
	employeeID := uuid.New()
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)

	// Enam hari telat 10 menit dalam minggu dan bulan yang sama:
	// dua policy terbit pada evaluasi yang sama. Tidak ada dedup ledger.
	var records []attendance.Attendance
	for i := 0; i < 5; i++ {
		records = append(records, attendance.Attendance{
			ID:             uuid.New(),
			EmployeeID:     employeeID,
			AttendanceDate: monday.AddDate(0, 0, i),
			Status:         attendance.StatusLate,
			LateMinutes:    10,
		})
	}
	repo := &fakeAttendanceRepo{records: records}
	sink := &fakeSink{}
	acc := NewAccumulator(repo, sink)

	trigger := &attendance.Attendance{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		AttendanceDate: monday.AddDate(0, 0, 5),
		CheckIn:        punchAt(monday.AddDate(0, 0, 5).Add(8*time.Hour + 20*time.Minute)),
		Status:         attendance.StatusLate,
		LateMinutes:    10,
	}

	err := acc.EvaluateCheckIn(context.Background(), nil, trigger)
	assert.NoError(t, err)
	assert.Len(t, sink.emitted, 2)

	policies := []string{sink.emitted[0].Policy, sink.emitted[1].Policy}
	assert.Contains(t, policies, "weekly_late_minutes")
	assert.Contains(t, policies, "monthly_late_count")
}

func TestAccumulator_NoTriggerBelowThreshold(t *testing.T) {
	employeeID := uuid.New()
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)

	repo := &fakeAttendanceRepo{}
	sink := &fakeSink{}
	acc := NewAccumulator(repo, sink)

	trigger := &attendance.Attendance{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		AttendanceDate: monday,
		CheckIn:        punchAt(monday.Add(8*time.Hour + 10*time.Minute)),
		Status:         attendance.StatusLate,
		LateMinutes:    5,
	}

	err := acc.EvaluateCheckIn(context.Background(), nil, trigger)
	assert.NoError(t, err)
	assert.Empty(t, sink.emitted)
}
