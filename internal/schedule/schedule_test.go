package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Saturday(t *testing.T) {
	// 2024-01-06 adalah Sabtu
	sat := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	ws := Resolve(sat)
	assert.Equal(t, NewTimeOfDay(8, 0), ws.Start)
	assert.Equal(t, NewTimeOfDay(15, 0), ws.End)
}

func TestResolve_AllOtherDaysIncludingSunday(t *testing.T) {
	// 2024-01-07 (Minggu) sampai 2024-01-12 (Jumat)
	for d := 7; d <= 12; d++ {
		date := time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
		ws := Resolve(date)
		assert.Equal(t, NewTimeOfDay(8, 0), ws.Start, date.Weekday().String())
		assert.Equal(t, NewTimeOfDay(16, 0), ws.End, date.Weekday().String())
	}
}

func TestTimeOfDay(t *testing.T) {
	tod := NewTimeOfDay(8, 5)
	assert.Equal(t, 485, int(tod))
	assert.Equal(t, 8, tod.Hour())
	assert.Equal(t, 5, tod.Minute())
	assert.Equal(t, "08:05", tod.String())

	ts := time.Date(2024, 3, 4, 9, 17, 42, 0, time.UTC)
	assert.Equal(t, NewTimeOfDay(9, 17), FromClock(ts))
}
