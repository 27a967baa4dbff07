package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartAndEndOfDay(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	at := time.Date(2026, 3, 10, 14, 45, 12, 345, loc)

	start := StartOfDay(at)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), start)

	end := EndOfDay(at)
	assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999999999, loc), end)

	// timezone asal dipertahankan
	assert.Equal(t, loc, start.Location())
	assert.Equal(t, loc, end.Location())
}

func TestEndOfDayIsBeforeNextDay(t *testing.T) {
	at := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	next := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, EndOfDay(at).Before(next))
	assert.True(t, next.Sub(EndOfDay(at)) == time.Nanosecond)
}

// EndOfDayIn mempertahankan tanggal kalender t, bukan instant-nya: DATE dari
// driver (UTC midnight) harus menghasilkan akhir hari di timezone sekolah.
func TestEndOfDayIn(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	end := EndOfDayIn(date, wib)
	assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999999999, wib), end)

	// timezone barat: t.In(loc) akan mundur sehari, EndOfDayIn tidak
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999999999, est), EndOfDayIn(date, est))
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, est), StartOfDayIn(date, est))
}

// CompareDates membaca tanggal masing-masing di timezone-nya sendiri.
func TestCompareDates(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	dateUTC := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, CompareDates(dateUTC, time.Date(2026, 3, 10, 6, 0, 0, 0, wib)))
	assert.Equal(t, 1, CompareDates(dateUTC, time.Date(2026, 3, 9, 23, 30, 0, 0, wib)))
	assert.Equal(t, -1, CompareDates(dateUTC, time.Date(2026, 3, 11, 0, 30, 0, 0, wib)))
}

func TestSameDate(t *testing.T) {
	a := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
	b := time.Date(2026, 3, 10, 23, 58, 0, 0, time.UTC)
	c := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(b, c))
}
