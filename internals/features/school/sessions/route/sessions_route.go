// internals/features/school/sessions/route/sessions_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "kehadiranku_backend/internals/features/school/sessions/controller"
)

func SessionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewClassSessionController(db)

	admin.Get("/classes/:class_id/sessions", ctrl.ListClassSessions)
	admin.Get("/class-sessions/:session_id/edit-window", ctrl.GetEditWindow)
	admin.Post("/class-sessions/:session_id/report", ctrl.SubmitReport)
	admin.Post("/class-sessions/:session_id/cancel", ctrl.CancelSession)
}
