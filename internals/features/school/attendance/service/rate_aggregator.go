package service

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	classModel "kehadiranku_backend/internals/features/school/classes/model"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
)

/* =========================================
   Aturan hitung bersama (SATU-SATUNYA tempat
   aturan rate didefinisikan — jangan diduplikasi
   di consumer/dashboard manapun)
========================================= */

type tallyKind int

const (
	tallyIgnored tallyKind = iota
	tallyAttended
	tallyNotAttended
)

type rateTally struct {
	Attended    int
	NotAttended int
	Ignored     int
}

func (t *rateTally) add(k tallyKind) {
	switch k {
	case tallyAttended:
		t.Attended++
	case tallyNotAttended:
		t.NotAttended++
	default:
		t.Ignored++
	}
}

// Rate = attended / (attended + not-attended); penyebut 0 → tepat 0.0
// (jangan pernah NaN).
func (t *rateTally) Rate() float64 {
	return Rate(t.Attended, t.NotAttended)
}

// Rate: rumus rate bersama untuk consumer di luar package (controller,
// dashboard). Jangan tulis ulang rumusnya di call site.
func Rate(attended, notAttended int) float64 {
	denom := attended + notAttended
	if denom == 0 {
		return 0.0
	}
	return float64(attended) / float64(denom)
}

// excusedNotAttended: aturan "titik merah" untuk record excused —
// makeup failed_past, atau tidak ada makeup terpesan sama sekali dan batas
// akhir sesi ASAL sudah lewat.
func excusedNotAttended(sess *sessionModel.ClassSessionModel, studentID uuid.UUID, idx LinkageIndex, now time.Time) bool {
	outcome, booked := idx.Outcome(sess.ClassSessionID, studentID)
	if booked {
		return outcome == MakeupFailedPast
	}
	return sess.EndBoundary(now.Location()).Before(now)
}

// classifyDisplay: attended / not attended / ignored untuk satu record yang
// sudah di-resolve ke display status.
//
//   - present → attended
//   - absent  → not attended (termasuk silent no-show hasil resolusi)
//   - excused → completed = attended ("titik hijau"); failed_past atau tanpa
//     makeup setelah batas sesi asal = not attended ("titik merah"); sisanya
//     (pending, batas belum lewat) diabaikan dari pembilang DAN penyebut
//   - planned → ignored
func classifyDisplay(display DisplayStatus, sess *sessionModel.ClassSessionModel, studentID uuid.UUID, idx LinkageIndex, now time.Time) tallyKind {
	switch display {
	case DisplayPresent:
		return tallyAttended
	case DisplayAbsent:
		return tallyNotAttended
	case DisplayExcused:
		if idx.Completed(sess.ClassSessionID, studentID) {
			return tallyAttended
		}
		if excusedNotAttended(sess, studentID, idx, now) {
			return tallyNotAttended
		}
		return tallyIgnored
	default: // planned
		return tallyIgnored
	}
}

// tallyRows menjalankan aturan hitung atas baris-baris mentah.
// Baris makeup (is_makeup=true) dan baris yang sesinya cancelled/tidak
// dikenal dilewati; kontribusi makeup masuk lewat linkage index.
func tallyRows(
	rows []attendanceModel.StudentClassSessionModel,
	sessionsByID map[uuid.UUID]sessionModel.ClassSessionModel,
	idx LinkageIndex,
	now time.Time,
) rateTally {
	var t rateTally
	for i := range rows {
		row := &rows[i]
		if row.StudentClassSessionIsMakeup {
			continue
		}
		sess, ok := sessionsByID[row.StudentClassSessionSessionID]
		if !ok || sess.IsCancelled() {
			continue
		}
		display := ResolveDisplayStatus(row.RawStatus(), &sess, now)
		t.add(classifyDisplay(display, &sess, row.StudentClassSessionStudentID, idx, now))
	}
	return t
}

/* =========================================
   Entry point: rate per student
========================================= */

// StudentRate menghitung rate kehadiran satu student. Jendela keanggotaan
// enrollment (join/left session) diterapkan lebih dulu supaya student
// pindahan tidak dihukum oleh sesi di luar masa keanggotaannya.
func StudentRate(
	rows []attendanceModel.StudentClassSessionModel,
	sessionsByID map[uuid.UUID]sessionModel.ClassSessionModel,
	enrollment *classModel.ClassEnrollmentModel,
	idx LinkageIndex,
	now time.Time,
) float64 {
	windowed := ApplyEnrollmentWindow(rows, sessionsByID, enrollment)
	t := tallyRows(windowed, sessionsByID, idx, now)
	return t.Rate()
}

// StudentTally: varian yang mengembalikan hitungan mentah (dipakai summary &
// peringatan absen, supaya angkanya dijamin sama dengan rate).
func StudentTally(
	rows []attendanceModel.StudentClassSessionModel,
	sessionsByID map[uuid.UUID]sessionModel.ClassSessionModel,
	enrollment *classModel.ClassEnrollmentModel,
	idx LinkageIndex,
	now time.Time,
) (attended, notAttended int) {
	windowed := ApplyEnrollmentWindow(rows, sessionsByID, enrollment)
	t := tallyRows(windowed, sessionsByID, idx, now)
	return t.Attended, t.NotAttended
}

/* =========================================
   Entry point: rate per kelas
========================================= */

// ClassRate menghitung rate kehadiran satu kelas atas seluruh baris aktif.
// Baris makeup dikecualikan dari tally utama (anti hitung ganda); progresnya
// tetap terhitung lewat linkage index pada baris excused asalnya.
func ClassRate(
	rows []attendanceModel.StudentClassSessionModel,
	sessionsByID map[uuid.UUID]sessionModel.ClassSessionModel,
	idx LinkageIndex,
	now time.Time,
) float64 {
	t := tallyRows(rows, sessionsByID, idx, now)
	return t.Rate()
}

/* =========================================
   Jendela keanggotaan enrollment
========================================= */

// enrollmentWindow: batas tanggal join/left dari enrollment. Sisi yang NULL
// atau sesinya tak dikenal → nil (tidak membatasi). Satu-satunya tempat
// jendela keanggotaan diturunkan; dipakai jalur rate DAN matrix.
func enrollmentWindow(
	enrollment *classModel.ClassEnrollmentModel,
	sessionsByID map[uuid.UUID]sessionModel.ClassSessionModel,
) (joinDay, leftDay *time.Time) {
	if enrollment == nil {
		return nil, nil
	}
	if id := enrollment.ClassEnrollmentJoinSessionID; id != nil {
		if s, ok := sessionsByID[*id]; ok {
			d := s.ClassSessionDate
			joinDay = &d
		}
	}
	if id := enrollment.ClassEnrollmentLeftSessionID; id != nil {
		if s, ok := sessionsByID[*id]; ok {
			d := s.ClassSessionDate
			leftDay = &d
		}
	}
	return joinDay, leftDay
}

// ApplyEnrollmentWindow menyaring baris ke dalam jendela keanggotaan:
// [tanggal sesi join, tanggal sesi left], inklusif dua sisi. Sisi yang NULL
// (atau sesinya tak dikenal) tidak membatasi. Batas dibandingkan per tanggal
// sesi — deterministik, tidak bergantung urutan koleksi.
func ApplyEnrollmentWindow(
	rows []attendanceModel.StudentClassSessionModel,
	sessionsByID map[uuid.UUID]sessionModel.ClassSessionModel,
	enrollment *classModel.ClassEnrollmentModel,
) []attendanceModel.StudentClassSessionModel {
	joinDay, leftDay := enrollmentWindow(enrollment, sessionsByID)
	if joinDay == nil && leftDay == nil {
		return rows
	}

	out := make([]attendanceModel.StudentClassSessionModel, 0, len(rows))
	for i := range rows {
		sess, ok := sessionsByID[rows[i].StudentClassSessionSessionID]
		if !ok {
			continue
		}
		d := sess.ClassSessionDate
		if joinDay != nil && d.Before(*joinDay) {
			continue
		}
		if leftDay != nil && d.After(*leftDay) {
			continue
		}
		out = append(out, rows[i])
	}
	return out
}
