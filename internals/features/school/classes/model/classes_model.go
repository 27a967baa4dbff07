package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: classes
========================================= */

type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`

	// Tenant
	ClassSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:class_school_id" json:"class_school_id"`

	// Identitas
	ClassName        string  `gorm:"type:varchar(160);not null;column:class_name" json:"class_name"`
	ClassSlug        *string `gorm:"type:varchar(160);uniqueIndex;column:class_slug" json:"class_slug,omitempty"`
	ClassTeacherName *string `gorm:"type:varchar(160);column:class_teacher_name" json:"class_teacher_name,omitempty"`

	// Audit
	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`
}

func (ClassModel) TableName() string { return "classes" }
