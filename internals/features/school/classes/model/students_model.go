package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: students
   (data kolaborator; dipakai matrix untuk urutan baris)
========================================= */

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentSchoolID uuid.UUID  `gorm:"type:uuid;not null;index;column:student_school_id" json:"student_school_id"`
	StudentUserID   *uuid.UUID `gorm:"type:uuid;column:student_user_id" json:"student_user_id,omitempty"`

	// NIS/kode absen; nullable → di matrix diurut paling akhir
	StudentCode *string `gorm:"type:varchar(50);column:student_code" json:"student_code,omitempty"`
	StudentName string  `gorm:"type:varchar(160);not null;column:student_name" json:"student_name"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }
