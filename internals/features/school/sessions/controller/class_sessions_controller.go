// internals/features/school/sessions/controller/class_sessions_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kehadiranku_backend/internals/configs"
	"kehadiranku_backend/internals/constants"
	attendanceService "kehadiranku_backend/internals/features/school/attendance/service"
	sessionDTO "kehadiranku_backend/internals/features/school/sessions/dto"
	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
	helper "kehadiranku_backend/internals/helpers"
	helperAuth "kehadiranku_backend/internals/helpers/auth"
	"kehadiranku_backend/internals/helpers/dbtime"
)

type ClassSessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassSessionController(db *gorm.DB) *ClassSessionController {
	return &ClassSessionController{DB: db, Validate: validator.New()}
}

func (ctrl *ClassSessionController) findSession(c *fiber.Ctx) (*sessionModel.ClassSessionModel, error) {
	id, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "session_id bukan UUID valid")
	}
	sess, err := attendanceService.FetchSession(ctrl.DB.WithContext(c.UserContext()), id)
	if err != nil {
		if errors.Is(err, attendanceService.ErrSessionNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return sess, nil
}

/* =========================================
   GET /api/a/classes/:class_id/sessions
========================================= */

func (ctrl *ClassSessionController) ListClassSessions(c *fiber.Ctx) error {
	if !helperAuth.IsStaff(c) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorTeacher("daftar sesi"))
	}

	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id bukan UUID valid")
	}

	includeCancelled := c.QueryBool("include_cancelled", false)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&sessionModel.ClassSessionModel{}).
		Where("class_session_class_id = ?", classID)
	if !includeCancelled {
		q = q.Where("class_session_status <> ?", sessionModel.ClassSessionStatusCancelled)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var sessions []sessionModel.ClassSessionModel
	if err := q.
		Order("class_session_date ASC, class_session_id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]sessionDTO.ClassSessionResponse, 0, len(sessions))
	for i := range sessions {
		items = append(items, sessionDTO.FromModel(&sessions[i]))
	}

	return helper.JsonList(c, "daftar sesi", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================
   GET /api/a/class-sessions/:session_id/edit-window
   Cek state mesin edit-window (buat UI mengunci form).
========================================= */

func (ctrl *ClassSessionController) GetEditWindow(c *fiber.Ctx) error {
	sess, err := ctrl.findSession(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	now := time.Now().In(dbtime.GetSchoolLocation(c))
	grace := configs.EditGracePeriod()

	return helper.JsonOK(c, "edit window", sessionDTO.EditWindowResponse{
		SessionID: sess.ClassSessionID,
		State:     string(attendanceService.SessionEditState(sess, now, grace)),
		Editable:  attendanceService.IsEditable(sess, now, grace),
		Deadline:  attendanceService.GraceDeadline(sess, grace, now.Location()),
	})
}

/* =========================================
   POST /api/a/class-sessions/:session_id/report
   Laporan guru: sesi → done (+title/homework/note). Tunduk edit window.
========================================= */

func (ctrl *ClassSessionController) SubmitReport(c *fiber.Ctx) error {
	if !helperAuth.IsStaff(c) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorTeacher("laporan sesi"))
	}

	sess, err := ctrl.findSession(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req sessionDTO.SubmitSessionReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	now := time.Now().In(dbtime.GetSchoolLocation(c))
	if !attendanceService.IsEditable(sess, now, configs.EditGracePeriod()) {
		return helper.JsonError(c, fiber.StatusConflict, attendanceService.ErrSessionLocked.Error())
	}

	updates := map[string]interface{}{
		"class_session_status": sessionModel.ClassSessionStatusDone,
	}
	if req.Title != nil {
		updates["class_session_title"] = req.Title
	}
	if req.Homework != nil {
		updates["class_session_homework"] = req.Homework
	}
	if req.Note != nil {
		updates["class_session_note"] = req.Note
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&sessionModel.ClassSessionModel{}).
		Where("class_session_id = ?", sess.ClassSessionID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	sess.ClassSessionStatus = sessionModel.ClassSessionStatusDone
	return helper.JsonUpdated(c, "laporan sesi tersimpan", sessionDTO.FromModel(sess))
}

/* =========================================
   POST /api/a/class-sessions/:session_id/cancel
   Input pembatalan (kebijakan batalnya eksternal). Sesi cancelled keluar
   dari semua perhitungan rate/matrix.
========================================= */

func (ctrl *ClassSessionController) CancelSession(c *fiber.Ctx) error {
	if !helperAuth.IsStaff(c) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorTeacher("pembatalan sesi"))
	}

	sess, err := ctrl.findSession(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if sess.IsCancelled() {
		return helper.JsonError(c, fiber.StatusConflict, "sesi sudah dibatalkan")
	}

	var req sessionDTO.CancelSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
		}
	}

	updates := map[string]interface{}{
		"class_session_status": sessionModel.ClassSessionStatusCancelled,
	}
	if req.Reason != nil {
		updates["class_session_note"] = req.Reason
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&sessionModel.ClassSessionModel{}).
		Where("class_session_id = ?", sess.ClassSessionID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	sess.ClassSessionStatus = sessionModel.ClassSessionStatusCancelled
	return helper.JsonUpdated(c, "sesi dibatalkan", sessionDTO.FromModel(sess))
}
