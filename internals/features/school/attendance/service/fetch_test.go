package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	classModel "kehadiranku_backend/internals/features/school/classes/model"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
)

/* =========================================
   CompleteRows: gap record (pasangan student×sesi tanpa baris) harus
   disintesis supaya jalur rate berbasis baris menghitung angka yang sama
   dengan matrix.
========================================= */

func TestCompleteRowsSynthesizesMissingPairs(t *testing.T) {
	classID := uuid.New()
	s1 := makeSession(classID, -3, sessionModel.ClassSessionStatusDone)
	s2 := makeSession(classID, -1, sessionModel.ClassSessionStatusDone)

	budi := makeStudent(strPtr("A-01"), "Budi")
	sari := makeStudent(strPtr("A-02"), "Sari")

	// Sari tidak punya baris untuk s2 (generate-sesi bolong).
	data := &ClassAttendanceData{
		Sessions:     []sessionModel.ClassSessionModel{s1, s2},
		SessionsByID: sessionMap(s1, s2),
		Students:     []classModel.StudentModel{budi, sari},
		Rows: []attendanceModel.StudentClassSessionModel{
			makeRow(budi.StudentID, s1.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusPresent)),
			makeRow(budi.StudentID, s2.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusPresent)),
			makeRow(sari.StudentID, s1.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusPresent)),
		},
	}

	rows := data.CompleteRows()
	assert.Len(t, rows, 4)

	var synth *attendanceModel.StudentClassSessionModel
	for i := range rows {
		if rows[i].StudentClassSessionStudentID == sari.StudentID &&
			rows[i].StudentClassSessionSessionID == s2.ClassSessionID {
			synth = &rows[i]
		}
	}
	if assert.NotNil(t, synth, "baris hilang harus disintesis") {
		assert.Nil(t, synth.StudentClassSessionAttendanceStatus)
	}

	// RowsByStudent ikut melihat baris sintetis
	byStudent := data.RowsByStudent()
	assert.Len(t, byStudent[budi.StudentID], 2)
	assert.Len(t, byStudent[sari.StudentID], 2)
}

func TestCompleteRowsKeepsExistingPairsUntouched(t *testing.T) {
	classID := uuid.New()
	s1 := makeSession(classID, -2, sessionModel.ClassSessionStatusDone)
	st := makeStudent(nil, "Budi")

	data := &ClassAttendanceData{
		Sessions:     []sessionModel.ClassSessionModel{s1},
		SessionsByID: sessionMap(s1),
		Students:     []classModel.StudentModel{st},
		Rows: []attendanceModel.StudentClassSessionModel{
			makeRow(st.StudentID, s1.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusAbsent)),
		},
	}

	rows := data.CompleteRows()
	assert.Len(t, rows, 1)
	assert.Equal(t, attendanceModel.AttendanceStatusAbsent, *rows[0].StudentClassSessionAttendanceStatus)
}

// Gap record: ClassRate atas CompleteRows harus identik dengan ClassRate
// dari matrix. Tanpa sintesis, jalur baris melihat 3/3 sementara matrix
// melihat 3/4.
func TestClassRateMatchesMatrixOnRowGap(t *testing.T) {
	classID := uuid.New()
	s1 := makeSession(classID, -3, sessionModel.ClassSessionStatusDone)
	s2 := makeSession(classID, -1, sessionModel.ClassSessionStatusDone)

	budi := makeStudent(strPtr("A-01"), "Budi")
	sari := makeStudent(strPtr("A-02"), "Sari")

	data := &ClassAttendanceData{
		Sessions:     []sessionModel.ClassSessionModel{s1, s2},
		SessionsByID: sessionMap(s1, s2),
		Students:     []classModel.StudentModel{budi, sari},
		Rows: []attendanceModel.StudentClassSessionModel{
			makeRow(budi.StudentID, s1.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusPresent)),
			makeRow(budi.StudentID, s2.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusPresent)),
			makeRow(sari.StudentID, s1.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusPresent)),
		},
	}

	idx := data.Linkage(testNow)
	matrix := BuildMatrix(MatrixInput{
		ClassID:      classID,
		Students:     data.Students,
		Enrollments:  data.Enrollments,
		Sessions:     data.Sessions,
		SessionsByID: data.SessionsByID,
		Rows:         data.Rows,
		MakeupRows:   data.MakeupRows,
	}, testNow)

	rowRate := ClassRate(data.CompleteRows(), data.SessionsByID, idx, testNow)
	assert.InDelta(t, 0.75, matrix.ClassRate, 1e-9)
	assert.Equal(t, matrix.ClassRate, rowRate)
}
