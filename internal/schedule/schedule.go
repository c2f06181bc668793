package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay adalah menit sejak tengah malam. Dipakai sebagai value type
// eksplisit supaya tidak ada parsing string jam sana-sini.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// FromClock mengambil jam+menit dari sebuah timestamp, detik diabaikan.
func FromClock(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// WorkSchedule adalah jam kerja yang berlaku untuk satu tanggal.
type WorkSchedule struct {
	Start TimeOfDay
	End   TimeOfDay
}

var (
	weekdaySchedule  = WorkSchedule{Start: NewTimeOfDay(8, 0), End: NewTimeOfDay(16, 0)}
	saturdaySchedule = WorkSchedule{Start: NewTimeOfDay(8, 0), End: NewTimeOfDay(15, 0)}
)

// Resolve memetakan tanggal kalender ke jam kerja yang diharapkan.
// Sabtu pulang lebih awal (15:00); hari lain, termasuk Minggu, 08:00-16:00.
// Minggu diperlakukan sebagai hari kerja biasa mengikuti aturan yang
// berjalan di lapangan.
func Resolve(date time.Time) WorkSchedule {
	if date.Weekday() == time.Saturday {
		return saturdaySchedule
	}
	return weekdaySchedule
}
