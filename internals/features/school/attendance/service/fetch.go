package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	classModel "kehadiranku_backend/internals/features/school/classes/model"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
)

/* =========================================
   Batch fetch untuk engine.
   Semua query di sini single-pass (ANY atas id set) supaya linkage index
   cukup dibangun sekali per request — bukan per student.
========================================= */

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func FetchClass(db *gorm.DB, classID uuid.UUID) (*classModel.ClassModel, error) {
	var cls classModel.ClassModel
	if err := db.First(&cls, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return &cls, nil
}

func FetchSession(db *gorm.DB, sessionID uuid.UUID) (*sessionModel.ClassSessionModel, error) {
	var sess sessionModel.ClassSessionModel
	if err := db.First(&sess, "class_session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &sess, nil
}

// FetchClassSessions: sesi satu kelas urut kronologis (tanggal, lalu id —
// deterministik, tidak bergantung urutan koleksi DB).
func FetchClassSessions(db *gorm.DB, classID uuid.UUID, includeCancelled bool) ([]sessionModel.ClassSessionModel, error) {
	q := db.Where("class_session_class_id = ?", classID)
	if !includeCancelled {
		q = q.Where("class_session_status <> ?", sessionModel.ClassSessionStatusCancelled)
	}
	var sessions []sessionModel.ClassSessionModel
	if err := q.Order("class_session_date ASC, class_session_id ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func FetchSessionsByIDs(db *gorm.DB, ids []uuid.UUID) ([]sessionModel.ClassSessionModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var sessions []sessionModel.ClassSessionModel
	err := db.
		Where("class_session_id = ANY(?)", pq.Array(uuidStrings(ids))).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// FetchRowsBySessionIDs: seluruh baris kehadiran untuk kumpulan sesi.
func FetchRowsBySessionIDs(db *gorm.DB, sessionIDs []uuid.UUID) ([]attendanceModel.StudentClassSessionModel, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	var rows []attendanceModel.StudentClassSessionModel
	err := db.
		Where("student_class_session_session_id = ANY(?)", pq.Array(uuidStrings(sessionIDs))).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchMakeupRowsByOriginalIDs: baris makeup yang menunjuk sesi-sesi asal.
func FetchMakeupRowsByOriginalIDs(db *gorm.DB, originalIDs []uuid.UUID) ([]attendanceModel.StudentClassSessionModel, error) {
	if len(originalIDs) == 0 {
		return nil, nil
	}
	var rows []attendanceModel.StudentClassSessionModel
	err := db.
		Where("student_class_session_is_makeup = TRUE").
		Where("student_class_session_original_session_id = ANY(?)", pq.Array(uuidStrings(originalIDs))).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchEnrollmentsWithStudents: enrollment kelas + data student-nya.
func FetchEnrollmentsWithStudents(db *gorm.DB, classID uuid.UUID) ([]classModel.ClassEnrollmentModel, []classModel.StudentModel, error) {
	var enrollments []classModel.ClassEnrollmentModel
	if err := db.
		Where("class_enrollment_class_id = ?", classID).
		Find(&enrollments).Error; err != nil {
		return nil, nil, err
	}
	if len(enrollments) == 0 {
		return enrollments, nil, nil
	}

	studentIDs := make([]uuid.UUID, 0, len(enrollments))
	for i := range enrollments {
		studentIDs = append(studentIDs, enrollments[i].ClassEnrollmentStudentID)
	}

	var students []classModel.StudentModel
	if err := db.
		Where("student_id = ANY(?)", pq.Array(uuidStrings(studentIDs))).
		Find(&students).Error; err != nil {
		return nil, nil, err
	}
	return enrollments, students, nil
}

/* =========================================
   Perakit input matrix / rate (satu batched load per request)
========================================= */

type ClassAttendanceData struct {
	Class        *classModel.ClassModel
	Sessions     []sessionModel.ClassSessionModel // non-cancelled, urut
	SessionsByID map[uuid.UUID]sessionModel.ClassSessionModel
	Enrollments  map[uuid.UUID]*classModel.ClassEnrollmentModel
	Students     []classModel.StudentModel
	Rows         []attendanceModel.StudentClassSessionModel
	MakeupRows   []attendanceModel.StudentClassSessionModel
}

// LoadClassAttendanceData menarik semua data yang dibutuhkan engine untuk
// satu kelas dalam hitungan query tetap (tidak per-student).
func LoadClassAttendanceData(db *gorm.DB, classID uuid.UUID) (*ClassAttendanceData, error) {
	cls, err := FetchClass(db, classID)
	if err != nil {
		return nil, err
	}

	sessions, err := FetchClassSessions(db, classID, false)
	if err != nil {
		return nil, err
	}

	sessionIDs := make([]uuid.UUID, 0, len(sessions))
	sessionsByID := make(map[uuid.UUID]sessionModel.ClassSessionModel, len(sessions))
	for i := range sessions {
		sessionIDs = append(sessionIDs, sessions[i].ClassSessionID)
		sessionsByID[sessions[i].ClassSessionID] = sessions[i]
	}

	enrollments, students, err := FetchEnrollmentsWithStudents(db, classID)
	if err != nil {
		return nil, err
	}
	enrollmentByStudent := make(map[uuid.UUID]*classModel.ClassEnrollmentModel, len(enrollments))
	for i := range enrollments {
		enrollmentByStudent[enrollments[i].ClassEnrollmentStudentID] = &enrollments[i]
	}

	rows, err := FetchRowsBySessionIDs(db, sessionIDs)
	if err != nil {
		return nil, err
	}

	makeupRows, err := FetchMakeupRowsByOriginalIDs(db, sessionIDs)
	if err != nil {
		return nil, err
	}

	// sesi milik baris makeup bisa di luar kelas ini → lengkapi map
	missing := make([]uuid.UUID, 0)
	for i := range makeupRows {
		id := makeupRows[i].StudentClassSessionSessionID
		if _, ok := sessionsByID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		extra, err := FetchSessionsByIDs(db, missing)
		if err != nil {
			return nil, err
		}
		for i := range extra {
			sessionsByID[extra[i].ClassSessionID] = extra[i]
		}
	}

	return &ClassAttendanceData{
		Class:        cls,
		Sessions:     sessions,
		SessionsByID: sessionsByID,
		Enrollments:  enrollmentByStudent,
		Students:     students,
		Rows:         rows,
		MakeupRows:   makeupRows,
	}, nil
}

// Linkage membangun linkage index untuk sesi-sesi kelas (sekali per batch;
// JANGAN dibangun ulang per student/per view).
func (d *ClassAttendanceData) Linkage(now time.Time) LinkageIndex {
	originalIDs := make(map[uuid.UUID]struct{}, len(d.Sessions))
	for i := range d.Sessions {
		originalIDs[d.Sessions[i].ClassSessionID] = struct{}{}
	}
	return BuildLinkageIndex(originalIDs, d.MakeupRows, d.SessionsByID, now)
}

// CompleteRows: baris asli + baris kosong sintetis untuk pasangan
// (student, sesi) yang barisnya hilang (gap generate-sesi). Resolver
// memperlakukan baris kosong persis seperti cell sintetis matrix, jadi jalur
// rate berbasis baris menghitung angka yang SAMA dengan matrix — satu record
// hilang tidak boleh membuat dua view berbeda angka.
func (d *ClassAttendanceData) CompleteRows() []attendanceModel.StudentClassSessionModel {
	have := make(map[LinkKey]struct{}, len(d.Rows))
	for i := range d.Rows {
		r := &d.Rows[i]
		have[LinkKey{SessionID: r.StudentClassSessionSessionID, StudentID: r.StudentClassSessionStudentID}] = struct{}{}
	}

	out := append([]attendanceModel.StudentClassSessionModel(nil), d.Rows...)
	for i := range d.Students {
		for j := range d.Sessions {
			key := LinkKey{SessionID: d.Sessions[j].ClassSessionID, StudentID: d.Students[i].StudentID}
			if _, ok := have[key]; ok {
				continue
			}
			out = append(out, attendanceModel.StudentClassSessionModel{
				StudentClassSessionStudentID: d.Students[i].StudentID,
				StudentClassSessionSessionID: d.Sessions[j].ClassSessionID,
			})
		}
	}
	return out
}

// RowsByStudent mengelompokkan baris non-makeup per student, atas set baris
// yang sudah dilengkapi CompleteRows.
func (d *ClassAttendanceData) RowsByStudent() map[uuid.UUID][]attendanceModel.StudentClassSessionModel {
	rows := d.CompleteRows()
	out := make(map[uuid.UUID][]attendanceModel.StudentClassSessionModel)
	for i := range rows {
		r := rows[i]
		if r.StudentClassSessionIsMakeup {
			continue
		}
		out[r.StudentClassSessionStudentID] = append(out[r.StudentClassSessionStudentID], r)
	}
	return out
}
