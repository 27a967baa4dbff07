package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: users
   (akses/role dikelola kolaborator eksternal; di sini cuma dipakai
   seeds & klaim JWT)
========================================= */

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserSchoolID *uuid.UUID `gorm:"type:uuid;column:user_school_id" json:"user_school_id,omitempty"`

	UserName     string `gorm:"type:varchar(160);not null;column:user_name" json:"user_name"`
	UserEmail    string `gorm:"type:varchar(255);not null;uniqueIndex;column:user_email" json:"user_email"`
	UserPassword string `gorm:"type:varchar(255);not null;column:user_password" json:"-"`
	UserRole     string `gorm:"type:varchar(20);not null;default:'user';column:user_role" json:"user_role"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }
