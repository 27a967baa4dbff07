package service

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	classModel "kehadiranku_backend/internals/features/school/classes/model"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
)

// now tetap untuk semua test: Selasa 2026-03-10 12:00 UTC
var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func strPtr(s string) *string { return &s }

func statusPtr(s attendanceModel.AttendanceStatus) *attendanceModel.AttendanceStatus { return &s }

func hwPtr(s attendanceModel.HomeworkStatus) *attendanceModel.HomeworkStatus { return &s }

// makeSession: sesi dengan time-slot 08:00–10:00 di tanggal day(offset).
func makeSession(classID uuid.UUID, dayOffset int, status sessionModel.ClassSessionStatus) sessionModel.ClassSessionModel {
	date := day(dayOffset)
	starts := date.Add(8 * time.Hour)
	ends := date.Add(10 * time.Hour)
	return sessionModel.ClassSessionModel{
		ClassSessionID:       uuid.New(),
		ClassSessionClassID:  classID,
		ClassSessionDate:     date,
		ClassSessionStartsAt: &starts,
		ClassSessionEndsAt:   &ends,
		ClassSessionStatus:   status,
	}
}

// makeAllDaySession: sesi tanpa time-slot (batas = akhir hari).
func makeAllDaySession(classID uuid.UUID, dayOffset int, status sessionModel.ClassSessionStatus) sessionModel.ClassSessionModel {
	return sessionModel.ClassSessionModel{
		ClassSessionID:      uuid.New(),
		ClassSessionClassID: classID,
		ClassSessionDate:    day(dayOffset),
		ClassSessionStatus:  status,
	}
}

func makeRow(studentID uuid.UUID, sessionID uuid.UUID, raw *attendanceModel.AttendanceStatus) attendanceModel.StudentClassSessionModel {
	return attendanceModel.StudentClassSessionModel{
		StudentClassSessionID:               uuid.New(),
		StudentClassSessionStudentID:        studentID,
		StudentClassSessionSessionID:        sessionID,
		StudentClassSessionAttendanceStatus: raw,
	}
}

// makeMakeupRow: baris makeup yang menunjuk sesi asal.
func makeMakeupRow(studentID, makeupSessionID, originalSessionID uuid.UUID, raw *attendanceModel.AttendanceStatus) attendanceModel.StudentClassSessionModel {
	row := makeRow(studentID, makeupSessionID, raw)
	row.StudentClassSessionIsMakeup = true
	row.StudentClassSessionOriginalSessionID = &originalSessionID
	return row
}

func sessionMap(sessions ...sessionModel.ClassSessionModel) map[uuid.UUID]sessionModel.ClassSessionModel {
	m := make(map[uuid.UUID]sessionModel.ClassSessionModel, len(sessions))
	for _, s := range sessions {
		m[s.ClassSessionID] = s
	}
	return m
}

func idSet(sessions ...sessionModel.ClassSessionModel) map[uuid.UUID]struct{} {
	m := make(map[uuid.UUID]struct{}, len(sessions))
	for _, s := range sessions {
		m[s.ClassSessionID] = struct{}{}
	}
	return m
}

func makeStudent(code *string, name string) classModel.StudentModel {
	return classModel.StudentModel{
		StudentID:   uuid.New(),
		StudentCode: code,
		StudentName: name,
	}
}
