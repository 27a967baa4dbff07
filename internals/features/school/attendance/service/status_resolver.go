package service

import (
	"time"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"

	"kehadiranku_backend/internals/helpers/dbtime"
)

// Status kehadiran yang DITAMPILKAN (turunan read-time; tidak pernah disimpan).
type DisplayStatus string

const (
	DisplayPresent DisplayStatus = "present"
	DisplayAbsent  DisplayStatus = "absent"
	DisplayExcused DisplayStatus = "excused"
	DisplayPlanned DisplayStatus = "planned"
)

// ResolveDisplayStatus memetakan status mentah + timing sesi → status tampilan.
//
// Aturan (berurutan):
//  1. Caller wajib menyaring sesi cancelled lebih dulu; fungsi ini tidak
//     pernah menerimanya.
//  2. raw NULL/planned:
//     - tanggal sesi masih di depan, ATAU hari ini dan lifecycle masih
//       planned → planned
//     - selain itu → absent ("silent no-show": sesi lewat tanpa dicatat)
//  3. Selain itu raw diteruskan apa adanya.
//
// Murni & deterministik; pakai `now` yang stabil supaya hasil reprodusibel.
// Perbandingan per TANGGAL KALENDER (CompareDates), bukan per instant:
// kolom DATE di-scan driver sebagai UTC midnight sedangkan `now` ber-timezone
// sekolah, jadi dua instant itu tidak boleh dibandingkan langsung.
func ResolveDisplayStatus(raw *attendanceModel.AttendanceStatus, sess *sessionModel.ClassSessionModel, now time.Time) DisplayStatus {
	if raw == nil || *raw == attendanceModel.AttendanceStatusPlanned {
		switch dbtime.CompareDates(sess.ClassSessionDate, now) {
		case 1: // tanggal sesi masih di depan
			return DisplayPlanned
		case 0:
			if sess.ClassSessionStatus == sessionModel.ClassSessionStatusPlanned {
				return DisplayPlanned
			}
		}
		return DisplayAbsent
	}

	switch *raw {
	case attendanceModel.AttendanceStatusPresent:
		return DisplayPresent
	case attendanceModel.AttendanceStatusAbsent:
		return DisplayAbsent
	case attendanceModel.AttendanceStatusExcused:
		return DisplayExcused
	}
	// status tak dikenal → perlakukan seperti belum dicatat
	if dbtime.CompareDates(sess.ClassSessionDate, now) > 0 {
		return DisplayPlanned
	}
	return DisplayAbsent
}
