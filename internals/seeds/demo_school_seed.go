// file: internals/seeds/demo_school_seed.go
package seeds

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "kehadiranku_backend/internals/features/school/attendance/model"
	classModel "kehadiranku_backend/internals/features/school/classes/model"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"

	"kehadiranku_backend/internals/helpers/dbtime"
)

// SeedDemoSchool membuat satu kelas demo lengkap: students, enrollments,
// sesi seminggu terakhir + seminggu ke depan, dan baris kehadiran per
// (student, sesi) — sesuai alur "baris dibuat saat enrollment".
func SeedDemoSchool(db *gorm.DB) error {
	var count int64
	if err := db.Model(&classModel.ClassModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️ classes sudah ada, skip")
		return nil
	}

	schoolID := uuid.New()
	teacherName := "Guru Demo"
	cls := classModel.ClassModel{
		ClassSchoolID:    schoolID,
		ClassName:        "Tahfidz 1A",
		ClassTeacherName: &teacherName,
	}
	if err := db.Create(&cls).Error; err != nil {
		return err
	}

	studentNames := []string{"Ahmad Fauzi", "Bilal Rahman", "Citra Ayu"}
	students := make([]classModel.StudentModel, 0, len(studentNames))
	for i, name := range studentNames {
		code := fmt.Sprintf("S-%02d", i+1)
		st := classModel.StudentModel{
			StudentSchoolID: schoolID,
			StudentCode:     &code,
			StudentName:     name,
		}
		if err := db.Create(&st).Error; err != nil {
			return err
		}
		students = append(students, st)

		enr := classModel.ClassEnrollmentModel{
			ClassEnrollmentClassID:   cls.ClassID,
			ClassEnrollmentStudentID: st.StudentID,
			ClassEnrollmentStatus:    classModel.EnrollmentStatusEnrolled,
		}
		if err := db.Create(&enr).Error; err != nil {
			return err
		}
	}

	// 2 sesi lewat (done), 1 hari ini (planned), 2 depan (planned)
	today := dbtime.StartOfDay(time.Now())
	offsets := []int{-7, -3, 0, 3, 7}
	for _, off := range offsets {
		date := today.AddDate(0, 0, off)
		status := sessionModel.ClassSessionStatusPlanned
		if off < 0 {
			status = sessionModel.ClassSessionStatusDone
		}

		starts := date.Add(8 * time.Hour)
		ends := date.Add(10 * time.Hour)
		sess := sessionModel.ClassSessionModel{
			ClassSessionClassID:  cls.ClassID,
			ClassSessionDate:     date,
			ClassSessionStartsAt: &starts,
			ClassSessionEndsAt:   &ends,
			ClassSessionStatus:   status,
		}
		if err := db.Create(&sess).Error; err != nil {
			return err
		}

		for i := range students {
			row := attendanceModel.StudentClassSessionModel{
				StudentClassSessionStudentID: students[i].StudentID,
				StudentClassSessionSessionID: sess.ClassSessionID,
			}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
		}
	}

	log.Printf("🏫 kelas demo %q dibuat (%d students, %d sesi)", cls.ClassName, len(students), len(offsets))
	return nil
}
