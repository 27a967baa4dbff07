package service

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
)

// Hasil efektif satu pasangan (sesi asal, student) setelah memindai semua
// baris makeup yang menunjuk ke sana.
type MakeupOutcome string

const (
	MakeupPending    MakeupOutcome = "pending"
	MakeupCompleted  MakeupOutcome = "completed"
	MakeupFailedPast MakeupOutcome = "failed_past"
)

type LinkKey struct {
	SessionID uuid.UUID
	StudentID uuid.UUID
}

// LinkageIndex: {(sesi asal, student)} → outcome makeup. Dibangun SEKALI per
// batch query lalu dipakai bersama oleh rate aggregator dan matrix builder,
// supaya semua view menghitung angka yang identik.
type LinkageIndex map[LinkKey]MakeupOutcome

// Outcome: hasil untuk pasangan; ok=false artinya tidak ada makeup yang
// dipesan sama sekali (beda makna dengan pending!).
func (idx LinkageIndex) Outcome(sessionID, studentID uuid.UUID) (MakeupOutcome, bool) {
	o, ok := idx[LinkKey{SessionID: sessionID, StudentID: studentID}]
	return o, ok
}

func (idx LinkageIndex) Completed(sessionID, studentID uuid.UUID) bool {
	o, ok := idx.Outcome(sessionID, studentID)
	return ok && o == MakeupCompleted
}

func (idx LinkageIndex) FailedPast(sessionID, studentID uuid.UUID) bool {
	o, ok := idx.Outcome(sessionID, studentID)
	return ok && o == MakeupFailedPast
}

// BuildLinkageIndex memindai baris-baris makeup yang menunjuk ke sesi dalam
// originalIDs dan menghitung outcome efektifnya:
//
//   - ada makeup berstatus present → completed (dominan: sekali completed
//     tetap completed walau percobaan lain gagal)
//   - ada makeup berstatus absent DAN sesi makeup-nya sudah lewat batas akhir
//     (EndBoundary; tanpa time-slot → akhir hari) → failed_past
//   - selain itu → pending
//
// sessionsByID harus memuat sesi milik baris makeup (bisa dari kelas lain);
// baris yang sesinya tidak ada di map dibiarkan pending karena batas
// waktunya tidak bisa ditentukan.
func BuildLinkageIndex(
	originalIDs map[uuid.UUID]struct{},
	makeupRows []attendanceModel.StudentClassSessionModel,
	sessionsByID map[uuid.UUID]sessionModel.ClassSessionModel,
	now time.Time,
) LinkageIndex {
	idx := make(LinkageIndex)

	for i := range makeupRows {
		row := &makeupRows[i]
		if !row.StudentClassSessionIsMakeup || row.StudentClassSessionOriginalSessionID == nil {
			continue
		}
		origID := *row.StudentClassSessionOriginalSessionID
		if _, ok := originalIDs[origID]; !ok {
			continue
		}

		key := LinkKey{SessionID: origID, StudentID: row.StudentClassSessionStudentID}
		if idx[key] == MakeupCompleted {
			continue // completed dominan
		}

		switch {
		case row.HasStatus(attendanceModel.AttendanceStatusPresent):
			idx[key] = MakeupCompleted

		case row.HasStatus(attendanceModel.AttendanceStatusAbsent):
			makeupSess, ok := sessionsByID[row.StudentClassSessionSessionID]
			if ok && makeupSess.EndBoundary(now.Location()).Before(now) {
				idx[key] = MakeupFailedPast
			} else if _, seen := idx[key]; !seen {
				idx[key] = MakeupPending
			}

		default:
			// planned / NULL / excused pada baris makeup → pending
			if _, seen := idx[key]; !seen {
				idx[key] = MakeupPending
			}
		}
	}

	return idx
}
