package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	classModel "kehadiranku_backend/internals/features/school/classes/model"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
)

/* =========================================
   Peringatan absen
   Engine hanya MENGHITUNG; pengiriman (email/notif) urusan kolaborator
   eksternal dan TIDAK BOLEH jalan di dalam transaksi tulis kehadiran
   (pernah bikin transaksi rollback-only di sistem lama).
========================================= */

type AbsenceWarning struct {
	ClassID      uuid.UUID `json:"class_id"`
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	AbsenceCount int       `json:"absence_count"`
	AbsenceRate  float64   `json:"absence_rate"`
}

// Notifier: kontrak dispatch ke kolaborator eksternal.
type Notifier interface {
	NotifyAbsenceWarning(ctx context.Context, w AbsenceWarning) error
}

// LogNotifier: default; cuma mencatat. Implementasi email/push dipasang
// dari luar lewat interface yang sama.
type LogNotifier struct{}

func (LogNotifier) NotifyAbsenceWarning(_ context.Context, w AbsenceWarning) error {
	log.Printf("⚠️ [ABSENCE-WARNING] class=%s student=%s (%s) absen=%d rate=%.2f",
		w.ClassID, w.StudentID, w.StudentName, w.AbsenceCount, w.AbsenceRate)
	return nil
}

// CollectAbsenceWarnings menghitung rasio absen per student (pakai aturan
// hitung bersama + jendela enrollment) dan mengembalikan yang menyentuh
// ambang. threshold dibanding dengan notAttended/(attended+notAttended).
func CollectAbsenceWarnings(
	classID uuid.UUID,
	students []classModel.StudentModel,
	enrollments map[uuid.UUID]*classModel.ClassEnrollmentModel,
	rowsByStudent map[uuid.UUID][]attendanceModel.StudentClassSessionModel,
	sessionsByID map[uuid.UUID]sessionModel.ClassSessionModel,
	idx LinkageIndex,
	threshold float64,
	now time.Time,
) []AbsenceWarning {
	warnings := make([]AbsenceWarning, 0)

	for i := range students {
		st := &students[i]
		attended, notAttended := StudentTally(
			rowsByStudent[st.StudentID], sessionsByID, enrollments[st.StudentID], idx, now)

		denom := attended + notAttended
		if denom == 0 {
			continue
		}
		rate := float64(notAttended) / float64(denom)
		if rate >= threshold {
			warnings = append(warnings, AbsenceWarning{
				ClassID:      classID,
				StudentID:    st.StudentID,
				StudentName:  st.StudentName,
				AbsenceCount: notAttended,
				AbsenceRate:  rate,
			})
		}
	}
	return warnings
}
