package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
)

func TestResolveDisplayStatus(t *testing.T) {
	classID := uuid.New()

	yesterday := makeSession(classID, -1, sessionModel.ClassSessionStatusDone)
	tomorrow := makeSession(classID, +1, sessionModel.ClassSessionStatusPlanned)
	todayPlanned := makeSession(classID, 0, sessionModel.ClassSessionStatusPlanned)
	todayDone := makeSession(classID, 0, sessionModel.ClassSessionStatusDone)

	tests := []struct {
		name string
		raw  *attendanceModel.AttendanceStatus
		sess *sessionModel.ClassSessionModel
		want DisplayStatus
	}{
		// silent no-show: sesi kemarin tanpa catatan → absent
		{"nil raw, sesi kemarin", nil, &yesterday, DisplayAbsent},
		{"planned raw, sesi kemarin", statusPtr(attendanceModel.AttendanceStatusPlanned), &yesterday, DisplayAbsent},

		// sesi besok → planned
		{"nil raw, sesi besok", nil, &tomorrow, DisplayPlanned},

		// hari ini: lifecycle masih planned → planned; sudah done → absent
		{"nil raw, hari ini masih planned", nil, &todayPlanned, DisplayPlanned},
		{"nil raw, hari ini sudah done", nil, &todayDone, DisplayAbsent},

		// pass-through
		{"present", statusPtr(attendanceModel.AttendanceStatusPresent), &yesterday, DisplayPresent},
		{"absent", statusPtr(attendanceModel.AttendanceStatusAbsent), &yesterday, DisplayAbsent},
		{"excused", statusPtr(attendanceModel.AttendanceStatusExcused), &yesterday, DisplayExcused},
		{"excused di sesi depan tetap excused", statusPtr(attendanceModel.AttendanceStatusExcused), &tomorrow, DisplayExcused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDisplayStatus(tt.raw, tt.sess, testNow)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Kolom DATE di-scan driver sebagai UTC midnight sedangkan now memakai
// timezone sekolah; resolusi harus membandingkan tanggal kalender, bukan
// instant. Sesi HARI INI yang sudah done + raw NULL wajib absent walau
// UTC midnight tanggal sesi masih "di depan" instant now.
func TestResolveDisplayStatusSchoolTimezone(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	classID := uuid.New()

	todayDone := makeAllDaySession(classID, 0, sessionModel.ClassSessionStatusDone)       // 2026-03-10 UTC
	todayPlanned := makeAllDaySession(classID, 0, sessionModel.ClassSessionStatusPlanned) // 2026-03-10 UTC
	tomorrow := makeAllDaySession(classID, +1, sessionModel.ClassSessionStatusPlanned)    // 2026-03-11 UTC

	morning := time.Date(2026, 3, 10, 10, 0, 0, 0, wib) // = 2026-03-10 03:00 UTC

	assert.Equal(t, DisplayAbsent, ResolveDisplayStatus(nil, &todayDone, morning))
	assert.Equal(t, DisplayPlanned, ResolveDisplayStatus(nil, &todayPlanned, morning))

	// timezone barat: instant sudah lewat UTC midnight tanggal sesi, tapi
	// tanggal kalender sekolah masih kemarin → tetap planned
	est := time.FixedZone("EST", -5*3600)
	lateEvening := time.Date(2026, 3, 9, 20, 0, 0, 0, est) // = 2026-03-10 01:00 UTC
	assert.Equal(t, DisplayPlanned, ResolveDisplayStatus(nil, &todayDone, lateEvening))

	// sesi besok tetap planned sampai tanggal WIB-nya tiba
	evening := time.Date(2026, 3, 10, 23, 30, 0, 0, wib) // = 2026-03-10 16:30 UTC
	assert.Equal(t, DisplayPlanned, ResolveDisplayStatus(nil, &tomorrow, evening))
}

func TestResolveDisplayStatusIdempotent(t *testing.T) {
	sess := makeSession(uuid.New(), -1, sessionModel.ClassSessionStatusDone)

	first := ResolveDisplayStatus(nil, &sess, testNow)
	second := ResolveDisplayStatus(nil, &sess, testNow)
	assert.Equal(t, first, second)
	assert.Equal(t, DisplayAbsent, first)
}
