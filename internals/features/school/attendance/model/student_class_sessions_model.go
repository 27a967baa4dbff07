package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

// Status kehadiran mentah (yang tersimpan). NULL = belum dicatat.
type AttendanceStatus string

const (
	AttendanceStatusPlanned AttendanceStatus = "planned"
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

// Status PR; hanya bermakna kalau sesi SEBELUMNYA memberi PR.
type HomeworkStatus string

const (
	HomeworkStatusComplete   HomeworkStatus = "complete"
	HomeworkStatusIncomplete HomeworkStatus = "incomplete"
	HomeworkStatusNoHomework HomeworkStatus = "no_homework"
)

/* =========================================
   Model: student_class_sessions
   Satu baris per (student, session); dibuat saat enrollment,
   dimutasi hanya lewat save attendance.
========================================= */

type StudentClassSessionModel struct {
	StudentClassSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_class_session_id" json:"student_class_session_id"`

	// Identitas komposit (student, session) — unik
	StudentClassSessionStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_student_class_session;column:student_class_session_student_id" json:"student_class_session_student_id"`
	StudentClassSessionSessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_student_class_session;index;column:student_class_session_session_id" json:"student_class_session_session_id"`

	StudentClassSessionAttendanceStatus *AttendanceStatus `gorm:"type:varchar(20);column:student_class_session_attendance_status" json:"student_class_session_attendance_status,omitempty"`
	StudentClassSessionHomeworkStatus   *HomeworkStatus   `gorm:"type:varchar(20);column:student_class_session_homework_status" json:"student_class_session_homework_status,omitempty"`
	StudentClassSessionNote             *string           `gorm:"type:text;column:student_class_session_note" json:"student_class_session_note,omitempty"`

	// Makeup linkage (relasi turunan, bukan entity sendiri):
	// - is_makeup=true  → baris ini sendiri catatan sesi pengganti;
	//   original_session_id menunjuk sesi asal yang di-excused.
	// - makeup_session_id (di baris asal) → sesi pengganti yang dipesan.
	StudentClassSessionIsMakeup          bool       `gorm:"not null;default:false;column:student_class_session_is_makeup" json:"student_class_session_is_makeup"`
	StudentClassSessionMakeupSessionID   *uuid.UUID `gorm:"type:uuid;column:student_class_session_makeup_session_id" json:"student_class_session_makeup_session_id,omitempty"`
	StudentClassSessionOriginalSessionID *uuid.UUID `gorm:"type:uuid;index;column:student_class_session_original_session_id" json:"student_class_session_original_session_id,omitempty"`

	StudentClassSessionRecordedAt *time.Time `gorm:"type:timestamptz;column:student_class_session_recorded_at" json:"student_class_session_recorded_at,omitempty"`

	StudentClassSessionCreatedAt time.Time      `gorm:"column:student_class_session_created_at;autoCreateTime" json:"student_class_session_created_at"`
	StudentClassSessionUpdatedAt time.Time      `gorm:"column:student_class_session_updated_at;autoUpdateTime" json:"student_class_session_updated_at"`
	StudentClassSessionDeletedAt gorm.DeletedAt `gorm:"column:student_class_session_deleted_at;index" json:"-"`
}

func (StudentClassSessionModel) TableName() string { return "student_class_sessions" }

// RawStatus: status mentah; NULL dianggap belum dicatat.
func (m *StudentClassSessionModel) RawStatus() *AttendanceStatus {
	return m.StudentClassSessionAttendanceStatus
}

func (m *StudentClassSessionModel) HasStatus(s AttendanceStatus) bool {
	return m.StudentClassSessionAttendanceStatus != nil && *m.StudentClassSessionAttendanceStatus == s
}
