// internals/features/school/attendance/controller/attendance_save_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"kehadiranku_backend/internals/configs"
	"kehadiranku_backend/internals/constants"
	attendanceDTO "kehadiranku_backend/internals/features/school/attendance/dto"
	"kehadiranku_backend/internals/features/school/attendance/service"
	helper "kehadiranku_backend/internals/helpers"
	helperAuth "kehadiranku_backend/internals/helpers/auth"
)

/* =========================================
   POST /api/a/class-sessions/:session_id/attendance
   Simpan satu batch edit kehadiran (all-or-nothing).
========================================= */

func (ctrl *AttendanceController) SaveAttendance(c *fiber.Ctx) error {
	if !helperAuth.IsStaff(c) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorTeacher("input kehadiran"))
	}

	sessionID, err := parseUUIDParam(c, "session_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req attendanceDTO.SaveAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, validationErrMap(err))
	}

	records, err := req.ToServiceRecords()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id bukan UUID valid")
	}

	svc := service.NewSaveService(
		ctrl.DB,
		configs.EditGracePeriod(),
		configs.WarningThreshold(),
		nil, // LogNotifier default; implementasi email dipasang dari luar
	)

	summary, err := svc.SaveAttendance(c.UserContext(), sessionID, records, requestNow(c))
	if err != nil {
		return jsonEngineError(c, err)
	}

	return helper.JsonUpdated(c, "kehadiran tersimpan", summary)
}

// jsonEngineError memetakan taksonomi error engine ke kode HTTP.
// Not-found ≠ validation; jangan pernah disamakan.
func jsonEngineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrClassNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrSessionLocked):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())

	case errors.Is(err, service.ErrEmptyBatch),
		errors.Is(err, service.ErrStudentNotInSession),
		errors.Is(err, service.ErrHomeworkNotAssigned),
		errors.Is(err, service.ErrHomeworkRequired):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
