package compliance

import (
	"fmt"
	"time"

	"go-absensi/internal/attendance"
	"go-absensi/internal/events"
)

// Escalation adalah hasil evaluasi satu policy.
type Escalation struct {
	Kind         string
	Policy       string
	TriggerValue int
	Period       string
}

// Policy adalah satu aturan eskalasi SP1. Dua aturan yang berjalan di
// sistem (mingguan berbasis menit dan bulanan berbasis jumlah hari telat)
// memang tidak pernah disatukan; keduanya dipertahankan apa adanya dan
// dievaluasi terpisah.
type Policy interface {
	Name() string
	// Window mengembalikan rentang tanggal [start, end] yang di-scan ulang
	// dari record tersimpan. Tidak ada counter berjalan yang dipersist.
	Window(at time.Time) (start, end time.Time)
	Evaluate(records []attendance.Attendance, at time.Time) *Escalation
}

const (
	// Ambang policy mingguan: akumulasi menit telat dalam satu minggu ISO.
	weeklyLateMinutesThreshold = 30
	// Ambang policy bulanan: jumlah hari berstatus LATE dalam satu bulan.
	monthlyLateCountThreshold = 5
)

// MinutePolicy: jumlahkan late_minutes karyawan dalam minggu ISO berjalan
// (Senin-Minggu); lewat 30 menit, SP1 terbit saat check-in pemicunya dicatat.
type MinutePolicy struct{}

func (MinutePolicy) Name() string { return "weekly_late_minutes" }

func (MinutePolicy) Window(at time.Time) (time.Time, time.Time) {
	day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7 // Minggu dihitung hari ke-7
	}
	monday := day.AddDate(0, 0, 1-wd)
	return monday, monday.AddDate(0, 0, 6)
}

func (p MinutePolicy) Evaluate(records []attendance.Attendance, at time.Time) *Escalation {
	total := 0
	for _, r := range records {
		if r.Status == attendance.StatusLate {
			total += r.LateMinutes
		}
	}
	if total <= weeklyLateMinutesThreshold {
		return nil
	}

	year, week := at.ISOWeek()
	return &Escalation{
		Kind:         events.KindSP1,
		Policy:       p.Name(),
		TriggerValue: total,
		Period:       fmt.Sprintf("%d-W%02d", year, week),
	}
}

// CountPolicy: hitung record berstatus LATE dalam bulan kalender berjalan;
// lewat 5 hari, SP1 terbit saat evaluasi.
type CountPolicy struct{}

func (CountPolicy) Name() string { return "monthly_late_count" }

func (CountPolicy) Window(at time.Time) (time.Time, time.Time) {
	first := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
	return first, first.AddDate(0, 1, -1)
}

func (p CountPolicy) Evaluate(records []attendance.Attendance, at time.Time) *Escalation {
	count := 0
	for _, r := range records {
		if r.Status == attendance.StatusLate {
			count++
		}
	}
	if count <= monthlyLateCountThreshold {
		return nil
	}

	return &Escalation{
		Kind:         events.KindSP1,
		Policy:       p.Name(),
		TriggerValue: count,
		Period:       at.Format("2006-01"),
	}
}
