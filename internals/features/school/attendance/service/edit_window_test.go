package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
	"kehadiranku_backend/internals/helpers/dbtime"
)

const testGrace = 48 * time.Hour

func TestSessionEditStateTransitions(t *testing.T) {
	classID := uuid.New()
	sess := makeSession(classID, 0, sessionModel.ClassSessionStatusPlanned) // 08:00–10:00 hari ini

	start := *sess.ClassSessionStartsAt
	end := *sess.ClassSessionEndsAt

	tests := []struct {
		name string
		now  time.Time
		want EditWindowState
	}{
		{"sebelum mulai", start.Add(-time.Hour), EditNotYetStarted},
		{"tepat di mulai", start, EditInProgress},
		{"di tengah sesi", start.Add(time.Hour), EditInProgress},
		{"tepat di akhir", end, EditInProgress},
		{"sesudah akhir, masih grace", end.Add(time.Hour), EditGrace},
		{"H+2 sore, masih grace", end.Add(testGrace - time.Minute), EditGrace},
		{"tepat di deadline grace", GraceDeadline(&sess, testGrace, time.UTC), EditGrace},
		{"lewat deadline grace", GraceDeadline(&sess, testGrace, time.UTC).Add(time.Second), EditLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SessionEditState(&sess, tt.now, testGrace))
		})
	}
}

// Deadline = (tanggal sesi + grace) akhir hari → cek batasnya dilewati tepat
// sekali: T+47h59m masih boleh, setelah deadline hari berikutnya tidak.
func TestEditWindowBoundaryCrossedOnce(t *testing.T) {
	classID := uuid.New()
	sess := makeSession(classID, 0, sessionModel.ClassSessionStatusPlanned)
	end := *sess.ClassSessionEndsAt

	deadline := GraceDeadline(&sess, testGrace, time.UTC)
	assert.Equal(t, dbtime.EndOfDayIn(sess.ClassSessionDate.Add(testGrace), time.UTC), deadline)

	assert.True(t, IsEditable(&sess, end.Add(47*time.Hour+59*time.Minute), testGrace))
	assert.True(t, IsEditable(&sess, deadline, testGrace))
	assert.False(t, IsEditable(&sess, deadline.Add(time.Second), testGrace))

	// satu kali transisi: editable terus sampai deadline, terkunci selamanya
	// setelahnya
	crossings := 0
	prev := true
	for _, offset := range []time.Duration{0, time.Hour, 24 * time.Hour, 48 * time.Hour, 72 * time.Hour, 96 * time.Hour} {
		cur := IsEditable(&sess, end.Add(offset), testGrace)
		if prev && !cur {
			crossings++
		}
		prev = cur
	}
	assert.Equal(t, 1, crossings)
}

func TestSessionWithoutTimeSlotUsesDayBoundaries(t *testing.T) {
	classID := uuid.New()
	sess := makeAllDaySession(classID, 0, sessionModel.ClassSessionStatusPlanned)

	dayStart := dbtime.StartOfDay(sess.ClassSessionDate)
	dayEnd := dbtime.EndOfDay(sess.ClassSessionDate)

	assert.Equal(t, EditNotYetStarted, SessionEditState(&sess, dayStart.Add(-time.Minute), testGrace))
	assert.Equal(t, EditInProgress, SessionEditState(&sess, dayStart, testGrace))
	assert.Equal(t, EditInProgress, SessionEditState(&sess, dayEnd, testGrace))
	assert.Equal(t, EditGrace, SessionEditState(&sess, dayEnd.Add(time.Minute), testGrace))
}

// Sesi cancelled: locked tanpa peduli waktu.
func TestCancelledSessionAlwaysLocked(t *testing.T) {
	classID := uuid.New()
	sess := makeSession(classID, 0, sessionModel.ClassSessionStatusCancelled)

	for _, now := range []time.Time{
		sess.StartBoundary(time.UTC).Add(-time.Hour), // sebelum mulai
		sess.StartBoundary(time.UTC).Add(time.Hour),  // saat berlangsung
		sess.EndBoundary(time.UTC).Add(time.Hour),    // masa grace
	} {
		assert.Equal(t, EditLocked, SessionEditState(&sess, now, testGrace))
		assert.False(t, IsEditable(&sess, now, testGrace))
	}
}

// Grace period dikonfigurasi, bukan konstanta: grace lebih pendek mengunci
// lebih awal.
func TestConfigurableGracePeriod(t *testing.T) {
	classID := uuid.New()
	sess := makeSession(classID, 0, sessionModel.ClassSessionStatusPlanned)
	end := *sess.ClassSessionEndsAt

	shortGrace := 2 * time.Hour
	afterDeadline := dbtime.EndOfDayIn(sess.ClassSessionDate.Add(shortGrace), time.UTC).Add(time.Hour)

	assert.False(t, IsEditable(&sess, afterDeadline, shortGrace))
	assert.True(t, IsEditable(&sess, end.Add(time.Hour), shortGrace))
}

// Tanggal sesi dari kolom DATE berlokasi UTC; now memakai timezone sekolah.
// Deadline grace harus jatuh di akhir hari TIMEZONE SEKOLAH, bukan akhir hari
// UTC (selisihnya ~7 jam untuk WIB).
func TestEditWindowSchoolTimezone(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	classID := uuid.New()
	sess := makeAllDaySession(classID, 0, sessionModel.ClassSessionStatusDone) // date = 2026-03-10 UTC

	// grace 48h → deadline = akhir 2026-03-12 WIB
	stillGrace := time.Date(2026, 3, 12, 23, 30, 0, 0, wib)
	locked := time.Date(2026, 3, 13, 0, 30, 0, 0, wib) // masih 2026-03-12 17:30 UTC

	assert.Equal(t, EditGrace, SessionEditState(&sess, stillGrace, testGrace))
	assert.Equal(t, EditLocked, SessionEditState(&sess, locked, testGrace))

	// hari sesi sendiri dihitung di WIB juga
	inProgress := time.Date(2026, 3, 10, 6, 0, 0, 0, wib) // 2026-03-09 23:00 UTC
	assert.Equal(t, EditInProgress, SessionEditState(&sess, inProgress, testGrace))
}
