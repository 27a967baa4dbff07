package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	classModel "kehadiranku_backend/internals/features/school/classes/model"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
)

/* =========================================
   Output matrix (grid guru: student × sesi)
========================================= */

type MatrixCell struct {
	SessionID          uuid.UUID                       `json:"session_id"`
	DisplayStatus      DisplayStatus                   `json:"display_status"`
	HomeworkStatus     *attendanceModel.HomeworkStatus `json:"homework_status,omitempty"`
	Note               *string                         `json:"note,omitempty"`
	IsMakeup           bool                            `json:"is_makeup"`
	HasMakeupPlanned   bool                            `json:"has_makeup_planned"`   // indikator titik merah
	HasMakeupCompleted bool                            `json:"has_makeup_completed"` // indikator titik hijau
}

type MatrixRow struct {
	StudentID      uuid.UUID    `json:"student_id"`
	StudentCode    *string      `json:"student_code,omitempty"`
	StudentName    string       `json:"student_name"`
	Cells          []MatrixCell `json:"cells"`
	AttendanceRate float64      `json:"attendance_rate"`
}

type MatrixColumn struct {
	SessionID uuid.UUID                       `json:"session_id"`
	Date      time.Time                       `json:"date"`
	Status    sessionModel.ClassSessionStatus `json:"status"`
	Title     *string                         `json:"title,omitempty"`
}

type AttendanceMatrix struct {
	ClassID   uuid.UUID      `json:"class_id"`
	Columns   []MatrixColumn `json:"columns"`
	Rows      []MatrixRow    `json:"rows"`
	ClassRate float64        `json:"class_rate"`
}

// Input matrix; seluruh data sudah di-load caller (engine tidak menyentuh DB).
type MatrixInput struct {
	ClassID  uuid.UUID
	Students []classModel.StudentModel
	// enrollment per student (jendela keanggotaan); boleh kosong
	Enrollments map[uuid.UUID]*classModel.ClassEnrollmentModel
	// sesi kelas, urut kronologis, cancelled SUDAH dibuang
	Sessions []sessionModel.ClassSessionModel
	// superset sesi: sesi kelas + sesi milik baris makeup (bisa lintas kelas)
	SessionsByID map[uuid.UUID]sessionModel.ClassSessionModel
	// baris kehadiran sesi-sesi kelas ini (termasuk baris makeup di dalamnya)
	Rows []attendanceModel.StudentClassSessionModel
	// baris makeup yang menunjuk sesi kelas ini (hasil fetch by original ids)
	MakeupRows []attendanceModel.StudentClassSessionModel
}

// BuildMatrix menyusun grid kehadiran lengkap: resolver + linkage index +
// aturan hitung yang sama dengan rate aggregator, dijalankan atas cell hasil
// resolve supaya dua jalur itu tak mungkin berbeda angka.
func BuildMatrix(in MatrixInput, now time.Time) AttendanceMatrix {
	// 1) linkage index SEKALI untuk semua sesi di grid
	originalIDs := make(map[uuid.UUID]struct{}, len(in.Sessions))
	for i := range in.Sessions {
		originalIDs[in.Sessions[i].ClassSessionID] = struct{}{}
	}
	idx := BuildLinkageIndex(originalIDs, in.MakeupRows, in.SessionsByID, now)

	// lookup baris per (session, student)
	rowsByKey := make(map[LinkKey]*attendanceModel.StudentClassSessionModel, len(in.Rows))
	for i := range in.Rows {
		r := &in.Rows[i]
		rowsByKey[LinkKey{SessionID: r.StudentClassSessionSessionID, StudentID: r.StudentClassSessionStudentID}] = r
	}

	// urutan baris: student_code naik, NULL paling akhir; seri → nama
	students := make([]classModel.StudentModel, len(in.Students))
	copy(students, in.Students)
	sort.SliceStable(students, func(i, j int) bool {
		a, b := students[i].StudentCode, students[j].StudentCode
		switch {
		case a == nil && b == nil:
			return students[i].StudentName < students[j].StudentName
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a < *b
		}
		return students[i].StudentName < students[j].StudentName
	})

	columns := make([]MatrixColumn, 0, len(in.Sessions))
	for i := range in.Sessions {
		s := &in.Sessions[i]
		columns = append(columns, MatrixColumn{
			SessionID: s.ClassSessionID,
			Date:      s.ClassSessionDate,
			Status:    s.ClassSessionStatus,
			Title:     s.ClassSessionTitle,
		})
	}

	var classTally rateTally
	rows := make([]MatrixRow, 0, len(students))

	for si := range students {
		st := &students[si]
		cells := make([]MatrixCell, 0, len(in.Sessions))
		var studentTally rateTally

		for ci := range in.Sessions {
			sess := &in.Sessions[ci]
			key := LinkKey{SessionID: sess.ClassSessionID, StudentID: st.StudentID}

			cell := MatrixCell{SessionID: sess.ClassSessionID}
			if row, ok := rowsByKey[key]; ok {
				cell.DisplayStatus = ResolveDisplayStatus(row.RawStatus(), sess, now)
				cell.HomeworkStatus = row.StudentClassSessionHomeworkStatus
				cell.Note = row.StudentClassSessionNote
				cell.IsMakeup = row.StudentClassSessionIsMakeup

				if cell.DisplayStatus == DisplayExcused && !cell.IsMakeup {
					cell.HasMakeupCompleted = idx.Completed(sess.ClassSessionID, st.StudentID)
					if !cell.HasMakeupCompleted {
						cell.HasMakeupPlanned = excusedNotAttended(sess, st.StudentID, idx, now)
					}
				}
			} else {
				// tidak ada baris (gap generate-sesi) → sintesis pakai aturan
				// default future/past; satu record hilang tidak boleh
				// menggagalkan laporan satu kelas
				cell.DisplayStatus = ResolveDisplayStatus(nil, sess, now)
			}
			cells = append(cells, cell)

			// rate per student dihitung atas cell hasil resolve, dengan
			// aturan hitung yang sama persis dengan ClassRate/StudentRate
			if !cell.IsMakeup {
				k := classifyDisplay(cell.DisplayStatus, sess, st.StudentID, idx, now)
				studentTally.add(k)
				classTally.add(k)
			}
		}

		// jendela keanggotaan untuk rate (cell tetap ditampilkan semua)
		if enr := in.Enrollments[st.StudentID]; enr != nil {
			studentTally = windowedTally(st.StudentID, in.Sessions, rowsByKey, enr, in.SessionsByID, idx, now)
		}

		rows = append(rows, MatrixRow{
			StudentID:      st.StudentID,
			StudentCode:    st.StudentCode,
			StudentName:    st.StudentName,
			Cells:          cells,
			AttendanceRate: studentTally.Rate(),
		})
	}

	return AttendanceMatrix{
		ClassID:   in.ClassID,
		Columns:   columns,
		Rows:      rows,
		ClassRate: classTally.Rate(),
	}
}

// windowedTally mengulang hitungan satu student dengan jendela enrollment
// diterapkan (sesi di luar jendela tidak masuk pembilang/penyebut).
func windowedTally(
	studentID uuid.UUID,
	sessions []sessionModel.ClassSessionModel,
	rowsByKey map[LinkKey]*attendanceModel.StudentClassSessionModel,
	enrollment *classModel.ClassEnrollmentModel,
	sessionsByID map[uuid.UUID]sessionModel.ClassSessionModel,
	idx LinkageIndex,
	now time.Time,
) rateTally {
	joinDay, leftDay := enrollmentWindow(enrollment, sessionsByID)

	var t rateTally
	for i := range sessions {
		sess := &sessions[i]
		d := sess.ClassSessionDate
		if joinDay != nil && d.Before(*joinDay) {
			continue
		}
		if leftDay != nil && d.After(*leftDay) {
			continue
		}

		key := LinkKey{SessionID: sess.ClassSessionID, StudentID: studentID}
		var display DisplayStatus
		if row, ok := rowsByKey[key]; ok {
			if row.StudentClassSessionIsMakeup {
				continue
			}
			display = ResolveDisplayStatus(row.RawStatus(), sess, now)
		} else {
			display = ResolveDisplayStatus(nil, sess, now)
		}
		t.add(classifyDisplay(display, sess, studentID, idx, now))
	}
	return t
}
