// internals/features/school/classes/controller/classes_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kehadiranku_backend/internals/constants"
	classModel "kehadiranku_backend/internals/features/school/classes/model"
	helper "kehadiranku_backend/internals/helpers"
	helperAuth "kehadiranku_backend/internals/helpers/auth"
)

type ClassController struct{ DB *gorm.DB }

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

/* =========================================
   GET /api/a/classes
   Daftar kelas sekolah (scope dari token), paginated.
========================================= */

func (ctrl *ClassController) ListClasses(c *fiber.Ctx) error {
	if !helperAuth.IsStaff(c) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorTeacher("daftar kelas"))
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&classModel.ClassModel{}).
		Where("class_school_id = ?", schoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var classes []classModel.ClassModel
	if err := q.
		Order("class_name ASC, class_id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "daftar kelas", classes,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
