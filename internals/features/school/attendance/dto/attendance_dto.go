package dto

import (
	"github.com/google/uuid"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	"kehadiranku_backend/internals/features/school/attendance/service"
)

/* =========================================
   Request
========================================= */

type SaveAttendanceRecordRequest struct {
	StudentID        string  `json:"student_id" validate:"required,uuid"`
	AttendanceStatus string  `json:"attendance_status" validate:"required,oneof=planned present absent excused"`
	HomeworkStatus   *string `json:"homework_status,omitempty" validate:"omitempty,oneof=complete incomplete no_homework"`
	Note             *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type SaveAttendanceRequest struct {
	Records []SaveAttendanceRecordRequest `json:"records" validate:"required,min=1,dive"`
}

// ToServiceRecords mengubah payload ke record engine; student_id sudah lolos
// validasi uuid sehingga parse di sini tidak bisa gagal secara normal.
func (r *SaveAttendanceRequest) ToServiceRecords() ([]service.SaveRecord, error) {
	out := make([]service.SaveRecord, 0, len(r.Records))
	for i := range r.Records {
		rec := &r.Records[i]
		id, err := uuid.Parse(rec.StudentID)
		if err != nil {
			return nil, err
		}
		sr := service.SaveRecord{
			StudentID:        id,
			AttendanceStatus: attendanceModel.AttendanceStatus(rec.AttendanceStatus),
			Note:             rec.Note,
		}
		if rec.HomeworkStatus != nil {
			hw := attendanceModel.HomeworkStatus(*rec.HomeworkStatus)
			sr.HomeworkStatus = &hw
		}
		out = append(out, sr)
	}
	return out, nil
}

/* =========================================
   Response
========================================= */

type StudentAttendanceReportResponse struct {
	ClassID        uuid.UUID            `json:"class_id"`
	StudentID      uuid.UUID            `json:"student_id"`
	StudentName    string               `json:"student_name"`
	StudentCode    *string              `json:"student_code,omitempty"`
	AttendanceRate float64              `json:"attendance_rate"`
	Cells          []service.MatrixCell `json:"cells"`
}

type ClassAttendanceSummaryResponse struct {
	ClassID   uuid.UUID                   `json:"class_id"`
	ClassRate float64                     `json:"class_rate"`
	Students  []StudentSummaryItem        `json:"students"`
	Warnings  []service.AbsenceWarning    `json:"warnings"`
	Sessions  []service.AttendanceSummary `json:"sessions"`
}

type StudentSummaryItem struct {
	StudentID      uuid.UUID `json:"student_id"`
	StudentName    string    `json:"student_name"`
	StudentCode    *string   `json:"student_code,omitempty"`
	Attended       int       `json:"attended"`
	NotAttended    int       `json:"not_attended"`
	AttendanceRate float64   `json:"attendance_rate"`
}
