package compliance

import (
	"testing"
	"time"

	"go-absensi/internal/attendance"
	"go-absensi/internal/events"

	"github.com/stretchr/testify/assert"
)

func lateRecord(day time.Time, minutes int) attendance.Attendance {
	return attendance.Attendance{
		AttendanceDate: day,
		Status:         attendance.StatusLate,
		LateMinutes:    minutes,
	}
}

func TestMinutePolicy_Window(t *testing.T) {
	p := MinutePolicy{}

	// 2026-01-07 adalah Rabu; minggu ISO-nya Senin 5 s/d Minggu 11.
	start, end := p.Window(time.Date(2026, 1, 7, 10, 0, 0, 0, time.Local))
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 1, 11, 0, 0, 0, 0, time.Local), end)

	// Minggu dihitung hari ke-7, bukan awal minggu.
	start, end = p.Window(time.Date(2026, 1, 11, 10, 0, 0, 0, time.Local))
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 1, 11, 0, 0, 0, 0, time.Local), end)
}

func TestMinutePolicy_Evaluate(t *testing.T) {
	p := MinutePolicy{}
	at := time.Date(2026, 1, 7, 8, 40, 0, 0, time.Local)
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)

	// Tepat di ambang: belum terbit.
	esc := p.Evaluate([]attendance.Attendance{
		lateRecord(day, 20),
		lateRecord(day.AddDate(0, 0, 1), 10),
	}, at)
	assert.Nil(t, esc)

	// Lewat ambang satu menit: terbit.
	esc = p.Evaluate([]attendance.Attendance{
		lateRecord(day, 20),
		lateRecord(day.AddDate(0, 0, 1), 11),
	}, at)
	assert.NotNil(t, esc)
	assert.Equal(t, events.KindSP1, esc.Kind)
	assert.Equal(t, "weekly_late_minutes", esc.Policy)
	assert.Equal(t, 31, esc.TriggerValue)
	assert.Equal(t, "2026-W02", esc.Period)
}

func TestMinutePolicy_IgnoresNonLate(t *testing.T) {
	p := MinutePolicy{}
	at := time.Date(2026, 1, 7, 8, 40, 0, 0, time.Local)

	esc := p.Evaluate([]attendance.Attendance{
		{Status: attendance.StatusPresent, LateMinutes: 0},
		{Status: attendance.StatusAbsent, LateMinutes: 100},
	}, at)
	assert.Nil(t, esc)
}

func TestCountPolicy_Window(t *testing.T) {
	p := CountPolicy{}
	start, end := p.Window(time.Date(2026, 2, 15, 9, 0, 0, 0, time.Local))
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.Local), end)
}

func TestCountPolicy_Evaluate(t *testing.T) {
	p := CountPolicy{}
	at := time.Date(2026, 2, 15, 9, 0, 0, 0, time.Local)
	day := time.Date(2026, 2, 2, 0, 0, 0, 0, time.Local)

	var records []attendance.Attendance
	for i := 0; i < 5; i++ {
		records = append(records, lateRecord(day.AddDate(0, 0, i), 1))
	}
	// Lima hari telat: masih di ambang.
	assert.Nil(t, p.Evaluate(records, at))

	records = append(records, lateRecord(day.AddDate(0, 0, 5), 1))
	esc := p.Evaluate(records, at)
	assert.NotNil(t, esc)
	assert.Equal(t, events.KindSP1, esc.Kind)
	assert.Equal(t, "monthly_late_count", esc.Policy)
	assert.Equal(t, 6, esc.TriggerValue)
	assert.Equal(t, "2026-02", esc.Period)
}
