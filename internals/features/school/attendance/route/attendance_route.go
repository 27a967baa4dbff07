// internals/features/school/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "kehadiranku_backend/internals/features/school/attendance/controller"
)

// AttendanceAdminRoutes: endpoint guru/admin (group sudah lewat AuthJWT).
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	admin.Get("/classes/:class_id/attendance-matrix", ctrl.GetClassMatrix)
	admin.Get("/classes/:class_id/attendance-summary", ctrl.GetClassSummary)
	admin.Post("/class-sessions/:session_id/attendance", ctrl.SaveAttendance)
}

// AttendanceUserRoutes: endpoint user login (student/ortu melihat laporan).
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	user.Get("/classes/:class_id/students/:student_id/attendance", ctrl.GetStudentReport)
}
