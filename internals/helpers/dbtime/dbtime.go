// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Nama locals mengikuti yang di-set middleware AuthJWT
const (
	LocSchoolTimezone = "school_timezone" // string, misal "Asia/Jakarta"
	LocSchoolLoc      = "school_loc"      // *time.Location
)

// GetSchoolLocation: *time.Location berdasarkan token/locals.
// Fallback: Asia/Jakarta → UTC.
func GetSchoolLocation(c *fiber.Ctx) *time.Location {
	if c == nil {
		return time.UTC
	}

	if v := c.Locals(LocSchoolLoc); v != nil {
		if loc, ok := v.(*time.Location); ok && loc != nil {
			return loc
		}
	}

	if v := c.Locals(LocSchoolTimezone); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			if loc, err := time.LoadLocation(strings.TrimSpace(s)); err == nil {
				c.Locals(LocSchoolLoc, loc) // cache ke locals
				return loc
			}
		}
	}

	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		c.Locals(LocSchoolLoc, loc)
		return loc
	}
	return time.UTC
}

/* ===============================
   Batas hari (dipakai engine kehadiran)
=================================*/

// StartOfDay: 00:00:00.000000000 pada hari t (timezone t dipertahankan).
func StartOfDay(t time.Time) time.Time {
	return StartOfDayIn(t, t.Location())
}

// EndOfDay: 23:59:59.999999999 pada hari t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfDayIn: 00:00 pada TANGGAL KALENDER t, dihitung di loc. Dipakai saat
// t datang dari kolom DATE (selalu UTC midnight dari driver) tapi batasnya
// harus jatuh di timezone sekolah. Jangan pakai t.In(loc): itu menggeser
// instant dan bisa pindah hari.
func StartOfDayIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// EndOfDayIn: 23:59:59.999999999 pada tanggal kalender t, dihitung di loc.
func EndOfDayIn(t time.Time, loc *time.Location) time.Time {
	return StartOfDayIn(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDate: true kalau a dan b jatuh di tanggal kalender yang sama.
func SameDate(a, b time.Time) bool {
	return CompareDates(a, b) == 0
}

// CompareDates membandingkan tanggal kalender a dan b, masing-masing dibaca
// di timezone-nya SENDIRI: -1 kalau a sebelum b, 0 sama, +1 sesudah.
// Kolom DATE dan `now` ber-timezone sekolah jadi bisa dibandingkan langsung
// tanpa konversi instant.
func CompareDates(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ak := ay*10000 + int(am)*100 + ad
	bk := by*10000 + int(bm)*100 + bd
	switch {
	case ak < bk:
		return -1
	case ak > bk:
		return 1
	}
	return 0
}
