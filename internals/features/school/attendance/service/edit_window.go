package service

import (
	"time"

	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
	"kehadiranku_backend/internals/helpers/dbtime"
)

/* =========================================
   Edit-Window Gate
   not_yet_started → in_progress → editable_grace → locked
   Transisi murni dari waktu, bukan event.
========================================= */

type EditWindowState string

const (
	EditNotYetStarted EditWindowState = "not_yet_started"
	EditInProgress    EditWindowState = "in_progress"
	EditGrace         EditWindowState = "editable_grace"
	EditLocked        EditWindowState = "locked"
)

// GraceDeadline: batas akhir koreksi = akhir hari dari (tanggal sesi + grace),
// dihitung di loc (timezone sekolah). Dengan grace default 48 jam ⇒
// "H+2, akhir hari".
func GraceDeadline(sess *sessionModel.ClassSessionModel, grace time.Duration, loc *time.Location) time.Time {
	return dbtime.EndOfDayIn(sess.ClassSessionDate.Add(grace), loc)
}

// SessionEditState menentukan posisi sesi di state machine edit-window.
// Sesi cancelled selalu locked, berapapun waktunya. Batas hari dihitung di
// timezone `now` (tanggal sesi dari DB berlokasi UTC, bukan instant).
func SessionEditState(sess *sessionModel.ClassSessionModel, now time.Time, grace time.Duration) EditWindowState {
	if sess.IsCancelled() {
		return EditLocked
	}

	loc := now.Location()
	start := sess.StartBoundary(loc)
	end := sess.EndBoundary(loc)

	switch {
	case now.Before(start):
		return EditNotYetStarted
	case !now.After(end):
		return EditInProgress
	case !now.After(GraceDeadline(sess, grace, loc)):
		return EditGrace
	default:
		return EditLocked
	}
}

// IsEditable: kehadiran boleh ditulis hanya saat in_progress / editable_grace.
func IsEditable(sess *sessionModel.ClassSessionModel, now time.Time, grace time.Duration) bool {
	switch SessionEditState(sess, now, grace) {
	case EditInProgress, EditGrace:
		return true
	}
	return false
}
