package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type EnrollmentStatus string

const (
	EnrollmentStatusEnrolled    EnrollmentStatus = "enrolled"
	EnrollmentStatusCompleted   EnrollmentStatus = "completed"
	EnrollmentStatusTransferred EnrollmentStatus = "transferred"
)

/* =========================================
   Model: class_enrollments
========================================= */

type ClassEnrollmentModel struct {
	ClassEnrollmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_enrollment_id" json:"class_enrollment_id"`

	ClassEnrollmentClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_enrollment;column:class_enrollment_class_id" json:"class_enrollment_class_id"`
	ClassEnrollmentStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_enrollment;column:class_enrollment_student_id" json:"class_enrollment_student_id"`

	ClassEnrollmentStatus EnrollmentStatus `gorm:"type:varchar(20);not null;default:'enrolled';column:class_enrollment_status" json:"class_enrollment_status"`

	// Jendela keanggotaan: sesi pertama/terakhir yang ditanggung enrollment.
	// NULL = tidak dibatasi di sisi itu (join dari awal / belum keluar).
	ClassEnrollmentJoinSessionID *uuid.UUID `gorm:"type:uuid;column:class_enrollment_join_session_id" json:"class_enrollment_join_session_id,omitempty"`
	ClassEnrollmentLeftSessionID *uuid.UUID `gorm:"type:uuid;column:class_enrollment_left_session_id" json:"class_enrollment_left_session_id,omitempty"`

	ClassEnrollmentCreatedAt time.Time      `gorm:"column:class_enrollment_created_at;autoCreateTime" json:"class_enrollment_created_at"`
	ClassEnrollmentUpdatedAt time.Time      `gorm:"column:class_enrollment_updated_at;autoUpdateTime" json:"class_enrollment_updated_at"`
	ClassEnrollmentDeletedAt gorm.DeletedAt `gorm:"column:class_enrollment_deleted_at;index" json:"-"`
}

func (ClassEnrollmentModel) TableName() string { return "class_enrollments" }
