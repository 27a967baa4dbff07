// internals/features/school/classes/route/classes_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "kehadiranku_backend/internals/features/school/classes/controller"
)

func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	admin.Get("/classes", ctrl.ListClasses)
}
