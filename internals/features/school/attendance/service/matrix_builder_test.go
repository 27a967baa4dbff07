package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	classModel "kehadiranku_backend/internals/features/school/classes/model"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
)

func TestBuildMatrixScenario(t *testing.T) {
	classID := uuid.New()

	studentA := makeStudent(strPtr("S-01"), "Ahmad")
	studentB := makeStudent(strPtr("S-02"), "Bilal")
	studentC := makeStudent(strPtr("S-03"), "Citra")

	s1 := makeSession(classID, -3, sessionModel.ClassSessionStatusDone)
	s2 := makeSession(classID, +3, sessionModel.ClassSessionStatusPlanned)
	makeup := makeSession(classID, -1, sessionModel.ClassSessionStatusDone)

	rows := []attendanceModel.StudentClassSessionModel{
		makeRow(studentA.StudentID, s1.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusPresent)),
		makeRow(studentB.StudentID, s1.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusAbsent)),
		makeRow(studentC.StudentID, s1.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusExcused)),
	}
	makeupRows := []attendanceModel.StudentClassSessionModel{
		makeMakeupRow(studentC.StudentID, makeup.ClassSessionID, s1.ClassSessionID,
			statusPtr(attendanceModel.AttendanceStatusPresent)),
	}

	in := MatrixInput{
		ClassID:      classID,
		Students:     []classModel.StudentModel{studentC, studentA, studentB}, // sengaja acak
		Enrollments:  map[uuid.UUID]*classModel.ClassEnrollmentModel{},
		Sessions:     []sessionModel.ClassSessionModel{s1, s2},
		SessionsByID: sessionMap(s1, s2, makeup),
		Rows:         rows,
		MakeupRows:   makeupRows,
	}

	m := BuildMatrix(in, testNow)

	// kolom kronologis, baris urut student_code
	require.Len(t, m.Columns, 2)
	assert.Equal(t, s1.ClassSessionID, m.Columns[0].SessionID)
	require.Len(t, m.Rows, 3)
	assert.Equal(t, "Ahmad", m.Rows[0].StudentName)
	assert.Equal(t, "Bilal", m.Rows[1].StudentName)
	assert.Equal(t, "Citra", m.Rows[2].StudentName)

	// cell C/S1: excused + makeup completed (titik hijau)
	cellC := m.Rows[2].Cells[0]
	assert.Equal(t, DisplayExcused, cellC.DisplayStatus)
	assert.True(t, cellC.HasMakeupCompleted)
	assert.False(t, cellC.HasMakeupPlanned)

	// rate kelas = 2/3 (A & C attended, B tidak; S2 depan diabaikan)
	assert.InDelta(t, 2.0/3.0, m.ClassRate, 1e-9)

	// rate matrix harus identik dengan rate aggregator (satu aturan hitung)
	idx := BuildLinkageIndex(idSet(s1, s2), makeupRows, in.SessionsByID, testNow)
	allRows := append(append([]attendanceModel.StudentClassSessionModel{}, rows...),
		makeRow(studentA.StudentID, s2.ClassSessionID, nil),
		makeRow(studentB.StudentID, s2.ClassSessionID, nil),
		makeRow(studentC.StudentID, s2.ClassSessionID, nil))
	assert.InDelta(t, ClassRate(allRows, in.SessionsByID, idx, testNow), m.ClassRate, 1e-9)
}

func TestBuildMatrixFailedMakeupRedDot(t *testing.T) {
	classID := uuid.New()

	studentA := makeStudent(strPtr("S-01"), "Ahmad")
	studentB := makeStudent(strPtr("S-02"), "Bilal")
	studentC := makeStudent(strPtr("S-03"), "Citra")

	s1 := makeSession(classID, -3, sessionModel.ClassSessionStatusDone)
	makeup := makeSession(classID, -1, sessionModel.ClassSessionStatusDone)

	rows := []attendanceModel.StudentClassSessionModel{
		makeRow(studentA.StudentID, s1.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusPresent)),
		makeRow(studentB.StudentID, s1.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusAbsent)),
		makeRow(studentC.StudentID, s1.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusExcused)),
	}
	makeupRows := []attendanceModel.StudentClassSessionModel{
		makeMakeupRow(studentC.StudentID, makeup.ClassSessionID, s1.ClassSessionID,
			statusPtr(attendanceModel.AttendanceStatusAbsent)),
	}

	m := BuildMatrix(MatrixInput{
		ClassID:      classID,
		Students:     []classModel.StudentModel{studentA, studentB, studentC},
		Sessions:     []sessionModel.ClassSessionModel{s1},
		SessionsByID: sessionMap(s1, makeup),
		Rows:         rows,
		MakeupRows:   makeupRows,
	}, testNow)

	cellC := m.Rows[2].Cells[0]
	assert.Equal(t, DisplayExcused, cellC.DisplayStatus)
	assert.False(t, cellC.HasMakeupCompleted)
	assert.True(t, cellC.HasMakeupPlanned) // titik merah

	// C not attended → 1/3
	assert.InDelta(t, 1.0/3.0, m.ClassRate, 1e-9)
}

// Baris tanpa catatan (gap generate-sesi) disintesis, bukan error.
func TestBuildMatrixSynthesizesMissingCells(t *testing.T) {
	classID := uuid.New()
	student := makeStudent(strPtr("S-01"), "Ahmad")

	sPast := makeSession(classID, -2, sessionModel.ClassSessionStatusDone)
	sFuture := makeSession(classID, +2, sessionModel.ClassSessionStatusPlanned)

	m := BuildMatrix(MatrixInput{
		ClassID:      classID,
		Students:     []classModel.StudentModel{student},
		Sessions:     []sessionModel.ClassSessionModel{sPast, sFuture},
		SessionsByID: sessionMap(sPast, sFuture),
		Rows:         nil, // tidak ada baris sama sekali
	}, testNow)

	require.Len(t, m.Rows, 1)
	cells := m.Rows[0].Cells
	require.Len(t, cells, 2)

	assert.Equal(t, DisplayAbsent, cells[0].DisplayStatus) // silent no-show
	assert.Equal(t, DisplayPlanned, cells[1].DisplayStatus)
	assert.False(t, cells[0].IsMakeup)
	assert.False(t, cells[0].HasMakeupPlanned)
	assert.False(t, cells[0].HasMakeupCompleted)

	assert.Equal(t, 0.0, m.Rows[0].AttendanceRate)
}

// student_code NULL diurut paling akhir.
func TestBuildMatrixSortsNullCodesLast(t *testing.T) {
	classID := uuid.New()

	noCode := makeStudent(nil, "Zainab")
	withCode := makeStudent(strPtr("S-09"), "Ahmad")

	m := BuildMatrix(MatrixInput{
		ClassID:      classID,
		Students:     []classModel.StudentModel{noCode, withCode},
		Sessions:     nil,
		SessionsByID: map[uuid.UUID]sessionModel.ClassSessionModel{},
	}, testNow)

	require.Len(t, m.Rows, 2)
	assert.Equal(t, "Ahmad", m.Rows[0].StudentName)
	assert.Equal(t, "Zainab", m.Rows[1].StudentName)
}

// Matrix murni: input sama + now sama → output identik.
func TestBuildMatrixDeterministic(t *testing.T) {
	classID := uuid.New()
	student := makeStudent(strPtr("S-01"), "Ahmad")
	s1 := makeSession(classID, -1, sessionModel.ClassSessionStatusDone)

	in := MatrixInput{
		ClassID:      classID,
		Students:     []classModel.StudentModel{student},
		Sessions:     []sessionModel.ClassSessionModel{s1},
		SessionsByID: sessionMap(s1),
		Rows: []attendanceModel.StudentClassSessionModel{
			makeRow(student.StudentID, s1.ClassSessionID, statusPtr(attendanceModel.AttendanceStatusPresent)),
		},
	}

	first := BuildMatrix(in, testNow)
	second := BuildMatrix(in, testNow)
	assert.Equal(t, first, second)
}
