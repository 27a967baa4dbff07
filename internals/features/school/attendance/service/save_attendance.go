package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
)

/* =========================================
   Save/Commit kehadiran
   Satu-satunya jalur tulis; satu transaksi per sesi (semua record
   berhasil atau tidak sama sekali).
========================================= */

type SaveRecord struct {
	StudentID        uuid.UUID
	AttendanceStatus attendanceModel.AttendanceStatus
	HomeworkStatus   *attendanceModel.HomeworkStatus
	Note             *string
}

type SaveService struct {
	DB            *gorm.DB
	Grace         time.Duration
	WarnThreshold float64
	Notifier      Notifier
}

func NewSaveService(db *gorm.DB, grace time.Duration, warnThreshold float64, notifier Notifier) *SaveService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &SaveService{DB: db, Grace: grace, WarnThreshold: warnThreshold, Notifier: notifier}
}

// SaveAttendance memvalidasi dan menyimpan satu batch edit kehadiran untuk
// satu sesi, lalu mengembalikan rekap yang dihitung ulang.
//
// Prasyarat:
//   - Edit-Window Gate mengizinkan tulis (sesi cancelled selalu ditolak)
//   - records tidak kosong
//   - setiap student sudah punya baris kehadiran di sesi ini (tidak ada
//     pembuatan implisit)
//
// Status disimpan verbatim — resolusi display adalah urusan read-time.
// Satu record invalid membatalkan seluruh batch (transaksional).
func (s *SaveService) SaveAttendance(ctx context.Context, sessionID uuid.UUID, records []SaveRecord, now time.Time) (*AttendanceSummary, error) {
	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}

	sess, err := FetchSession(s.DB.WithContext(ctx), sessionID)
	if err != nil {
		return nil, err
	}
	if err := checkSessionWritable(sess, now, s.Grace); err != nil {
		return nil, err
	}

	// Konsistensi homework_status dinilai dari sesi SEBELUMNYA (by date,
	// tie-break id — deterministik) di kelas yang sama.
	prev, err := s.previousSession(ctx, sess)
	if err != nil {
		return nil, err
	}
	homeworkAssigned := prev != nil && prev.HasHomework()

	for i := range records {
		if err := validateHomeworkStatus(records[i].HomeworkStatus, homeworkAssigned); err != nil {
			return nil, fmt.Errorf("student %s: %w", records[i].StudentID, err)
		}
	}

	var summary AttendanceSummary
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			rec := &records[i]
			res := tx.Model(&attendanceModel.StudentClassSessionModel{}).
				Where("student_class_session_session_id = ? AND student_class_session_student_id = ?",
					sessionID, rec.StudentID).
				Updates(map[string]interface{}{
					"student_class_session_attendance_status": string(rec.AttendanceStatus),
					"student_class_session_homework_status":   homeworkStatusValue(rec.HomeworkStatus),
					"student_class_session_note":              rec.Note,
					"student_class_session_recorded_at":       now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("student %s: %w", rec.StudentID, ErrStudentNotInSession)
			}
		}

		sum, err := s.recomputeSummary(tx, sess, now)
		if err != nil {
			return err
		}
		summary = *sum

		// snapshot rekap di baris sesi (read path tetap menghitung ulang)
		recap, err := json.Marshal(summary)
		if err != nil {
			return err
		}
		return tx.Model(&sessionModel.ClassSessionModel{}).
			Where("class_session_id = ?", sessionID).
			Update("class_session_attendance_recap", datatypes.JSON(recap)).Error
	})
	if err != nil {
		return nil, err
	}

	// Dispatch peringatan absen SETELAH commit, di luar transaksi — gagal
	// kirim tidak boleh membatalkan tulis kehadiran.
	go s.dispatchWarnings(sess.ClassSessionClassID)

	return &summary, nil
}

func (s *SaveService) previousSession(ctx context.Context, sess *sessionModel.ClassSessionModel) (*sessionModel.ClassSessionModel, error) {
	var prev sessionModel.ClassSessionModel
	err := s.DB.WithContext(ctx).
		Where("class_session_class_id = ?", sess.ClassSessionClassID).
		Where("class_session_status <> ?", sessionModel.ClassSessionStatusCancelled).
		Where("class_session_date < ?", sess.ClassSessionDate).
		Order("class_session_date DESC, class_session_id DESC").
		Limit(1).
		Find(&prev).Error
	if err != nil {
		return nil, err
	}
	if prev.ClassSessionID == uuid.Nil {
		return nil, nil
	}
	return &prev, nil
}

// checkSessionWritable: gate tulis atas sesi yang sudah di-load. Sesi
// cancelled selalu ditolak, kapanpun dicoba.
func checkSessionWritable(sess *sessionModel.ClassSessionModel, now time.Time, grace time.Duration) error {
	if !IsEditable(sess, now, grace) {
		return ErrSessionLocked
	}
	return nil
}

// validateHomeworkStatus: aturan konsistensi PR.
//   - sesi sebelumnya TANPA PR → selain no_homework ditolak
//   - sesi sebelumnya DENGAN PR → no_homework ditolak
func validateHomeworkStatus(hw *attendanceModel.HomeworkStatus, homeworkAssigned bool) error {
	if hw == nil {
		return nil
	}
	if !homeworkAssigned && *hw != attendanceModel.HomeworkStatusNoHomework {
		return ErrHomeworkNotAssigned
	}
	if homeworkAssigned && *hw == attendanceModel.HomeworkStatusNoHomework {
		return ErrHomeworkRequired
	}
	return nil
}

func homeworkStatusValue(hw *attendanceModel.HomeworkStatus) interface{} {
	if hw == nil {
		return gorm.Expr("student_class_session_homework_status") // biarkan nilai lama
	}
	return string(*hw)
}

func (s *SaveService) recomputeSummary(tx *gorm.DB, sess *sessionModel.ClassSessionModel, now time.Time) (*AttendanceSummary, error) {
	rows, err := FetchRowsBySessionIDs(tx, []uuid.UUID{sess.ClassSessionID})
	if err != nil {
		return nil, err
	}

	makeupRows, err := FetchMakeupRowsByOriginalIDs(tx, []uuid.UUID{sess.ClassSessionID})
	if err != nil {
		return nil, err
	}

	sessionsByID := map[uuid.UUID]sessionModel.ClassSessionModel{sess.ClassSessionID: *sess}
	missing := make([]uuid.UUID, 0, len(makeupRows))
	for i := range makeupRows {
		id := makeupRows[i].StudentClassSessionSessionID
		if _, ok := sessionsByID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		extra, err := FetchSessionsByIDs(tx, missing)
		if err != nil {
			return nil, err
		}
		for i := range extra {
			sessionsByID[extra[i].ClassSessionID] = extra[i]
		}
	}

	idx := BuildLinkageIndex(
		map[uuid.UUID]struct{}{sess.ClassSessionID: {}},
		makeupRows, sessionsByID, now)

	sum := SummarizeSession(sess, rows, idx, now)
	return &sum, nil
}

// dispatchWarnings menghitung peringatan absen kelas lalu memanggil Notifier.
// Jalan fire-and-forget; error cukup dicatat.
func (s *SaveService) dispatchWarnings(classID uuid.UUID) {
	ctx := context.Background()
	now := time.Now()

	data, err := LoadClassAttendanceData(s.DB, classID)
	if err != nil {
		log.Printf("[WARNING] gagal load data peringatan absen class=%s: %v", classID, err)
		return
	}

	warnings := CollectAbsenceWarnings(
		classID, data.Students, data.Enrollments, data.RowsByStudent(),
		data.SessionsByID, data.Linkage(now), s.WarnThreshold, now)

	for _, w := range warnings {
		if err := s.Notifier.NotifyAbsenceWarning(ctx, w); err != nil {
			log.Printf("[WARNING] gagal kirim peringatan absen student=%s: %v", w.StudentID, err)
		}
	}
}
