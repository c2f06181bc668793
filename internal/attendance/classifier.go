package attendance

import (
	"time"

	"go-absensi/internal/schedule"
)

// toleranceMinutes berlaku sama untuk semua jadwal, tidak per-schedule.
const toleranceMinutes = 5

type Classification struct {
	Status      string
	LateMinutes int
}

// Classify menilai satu check-in terhadap jadwal tanggalnya.
// Lima menit pertama setelah jam masuk adalah masa toleransi: punch di
// menit ke-5 masih PRESENT, menit keterlambatan dihitung dari ambang
// toleransi, bukan dari jam masuk mentah. Fungsi ini hanya menghasilkan
// PRESENT/LATE; ABSENT, LEAVE dan HOLIDAY diisi alur lain.
func Classify(checkIn time.Time) Classification {
	ws := schedule.Resolve(checkIn)
	threshold := int(ws.Start) + toleranceMinutes
	checkInMinutes := int(schedule.FromClock(checkIn))

	if checkInMinutes <= threshold {
		return Classification{Status: StatusPresent, LateMinutes: 0}
	}
	return Classification{
		Status:      StatusLate,
		LateMinutes: checkInMinutes - threshold,
	}
}
