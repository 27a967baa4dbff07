// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "kehadiranku_backend/internals/features/school/attendance/route"
	classRoute "kehadiranku_backend/internals/features/school/classes/route"
	sessionRoute "kehadiranku_backend/internals/features/school/sessions/route"
	authMiddleware "kehadiranku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh route aplikasi.
// /api/a = guru/admin (role dicek di controller), /api/u = user login.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	api := app.Group("/api", authMiddleware.AuthJWT())

	admin := api.Group("/a")
	classRoute.ClassAdminRoutes(admin, db)
	sessionRoute.SessionAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)

	user := api.Group("/u")
	attendanceRoute.AttendanceUserRoutes(user, db)
}
