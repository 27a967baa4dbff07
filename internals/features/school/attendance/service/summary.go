package service

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
)

// Rekap satu sesi; selalu dihitung ulang lewat aturan hitung bersama,
// tidak pernah diambil dari cache.
type AttendanceSummary struct {
	SessionID uuid.UUID `json:"session_id"`

	// hitungan display status record non-makeup sesi ini
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Excused int `json:"excused"`
	Planned int `json:"planned"`

	// hasil aturan hitung (excused pending masuk ignored)
	Attended    int     `json:"attended"`
	NotAttended int     `json:"not_attended"`
	Ignored     int     `json:"ignored"`
	Rate        float64 `json:"rate"`
}

// SummarizeSession menghitung rekap satu sesi dari baris-barisnya.
func SummarizeSession(
	sess *sessionModel.ClassSessionModel,
	rows []attendanceModel.StudentClassSessionModel,
	idx LinkageIndex,
	now time.Time,
) AttendanceSummary {
	sum := AttendanceSummary{SessionID: sess.ClassSessionID}
	var t rateTally

	for i := range rows {
		row := &rows[i]
		if row.StudentClassSessionIsMakeup || row.StudentClassSessionSessionID != sess.ClassSessionID {
			continue
		}

		display := ResolveDisplayStatus(row.RawStatus(), sess, now)
		switch display {
		case DisplayPresent:
			sum.Present++
		case DisplayAbsent:
			sum.Absent++
		case DisplayExcused:
			sum.Excused++
		case DisplayPlanned:
			sum.Planned++
		}

		t.add(classifyDisplay(display, sess, row.StudentClassSessionStudentID, idx, now))
	}

	sum.Attended = t.Attended
	sum.NotAttended = t.NotAttended
	sum.Ignored = t.Ignored
	sum.Rate = t.Rate()
	return sum
}
