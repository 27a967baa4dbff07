package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kehadiranku_backend/internals/helpers/dbtime"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type ClassSessionStatus string

const (
	ClassSessionStatusPlanned   ClassSessionStatus = "planned"
	ClassSessionStatusDone      ClassSessionStatus = "done"
	ClassSessionStatusCancelled ClassSessionStatus = "cancelled"
)

/* =========================================
   Model: class_sessions
   Dibuat oleh proses generate-sesi (eksternal);
   dimutasi lewat laporan guru / pembatalan; tidak pernah dihapus.
========================================= */

type ClassSessionModel struct {
	// PK
	ClassSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_session_id" json:"class_session_id"`

	ClassSessionClassID uuid.UUID `gorm:"type:uuid;not null;index;column:class_session_class_id" json:"class_session_class_id"`

	// Occurrence
	ClassSessionDate     time.Time  `gorm:"type:date;not null;index;column:class_session_date" json:"class_session_date"`
	ClassSessionStartsAt *time.Time `gorm:"type:timestamptz;column:class_session_starts_at" json:"class_session_starts_at,omitempty"`
	ClassSessionEndsAt   *time.Time `gorm:"type:timestamptz;column:class_session_ends_at" json:"class_session_ends_at,omitempty"`

	// Lifecycle
	ClassSessionStatus ClassSessionStatus `gorm:"type:varchar(20);not null;default:'planned';column:class_session_status" json:"class_session_status"`

	// Laporan guru
	ClassSessionTitle *string `gorm:"type:text;column:class_session_title" json:"class_session_title,omitempty"`
	// Topik/tugas PR yang diberikan di sesi ini; kosong = tidak ada PR.
	// Dipakai aturan konsistensi homework_status sesi BERIKUTNYA.
	ClassSessionHomework *string `gorm:"type:text;column:class_session_homework" json:"class_session_homework,omitempty"`
	ClassSessionNote     *string `gorm:"type:text;column:class_session_note" json:"class_session_note,omitempty"`

	// Snapshot rekap kehadiran terakhir (diisi ulang tiap save; sumber
	// kebenaran tetap perhitungan ulang di read path)
	ClassSessionAttendanceRecap datatypes.JSON `gorm:"type:jsonb;column:class_session_attendance_recap" json:"class_session_attendance_recap,omitempty"`

	// Audit
	ClassSessionCreatedAt time.Time      `gorm:"column:class_session_created_at;autoCreateTime" json:"class_session_created_at"`
	ClassSessionUpdatedAt time.Time      `gorm:"column:class_session_updated_at;autoUpdateTime" json:"class_session_updated_at"`
	ClassSessionDeletedAt gorm.DeletedAt `gorm:"column:class_session_deleted_at;index" json:"-"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }

/* =========================================
   Batas waktu sesi
========================================= */

// StartBoundary: mulai sesi; tanpa time-slot → awal hari tanggal sesi di loc.
// loc wajib timezone pembanding (biasanya now.Location()): kolom DATE datang
// dari driver sebagai UTC midnight, bukan instant yang bisa dibandingkan.
func (m *ClassSessionModel) StartBoundary(loc *time.Location) time.Time {
	if m.ClassSessionStartsAt != nil {
		return *m.ClassSessionStartsAt
	}
	return dbtime.StartOfDayIn(m.ClassSessionDate, loc)
}

// EndBoundary: akhir sesi; tanpa time-slot → akhir hari tanggal sesi di loc.
func (m *ClassSessionModel) EndBoundary(loc *time.Location) time.Time {
	if m.ClassSessionEndsAt != nil {
		return *m.ClassSessionEndsAt
	}
	return dbtime.EndOfDayIn(m.ClassSessionDate, loc)
}

func (m *ClassSessionModel) IsCancelled() bool {
	return m.ClassSessionStatus == ClassSessionStatusCancelled
}

// HasHomework: sesi ini memberi PR (topik/tugas tidak kosong).
func (m *ClassSessionModel) HasHomework() bool {
	return m.ClassSessionHomework != nil && strings.TrimSpace(*m.ClassSessionHomework) != ""
}
