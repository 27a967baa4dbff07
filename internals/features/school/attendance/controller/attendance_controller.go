// internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kehadiranku_backend/internals/configs"
	"kehadiranku_backend/internals/constants"
	attendanceDTO "kehadiranku_backend/internals/features/school/attendance/dto"
	"kehadiranku_backend/internals/features/school/attendance/service"
	helper "kehadiranku_backend/internals/helpers"
	helperAuth "kehadiranku_backend/internals/helpers/auth"
	"kehadiranku_backend/internals/helpers/dbtime"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

/* ========== small helpers ========== */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" bukan UUID valid")
	}
	return id, nil
}

func validationErrMap(err error) map[string][]string {
	out := map[string][]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}

// now yang stabil per request, di timezone sekolah
func requestNow(c *fiber.Ctx) time.Time {
	return time.Now().In(dbtime.GetSchoolLocation(c))
}

/* =========================================
   GET /api/a/classes/:class_id/attendance-matrix
   Grid guru: student × sesi + rate per student + rate kelas.
========================================= */

func (ctrl *AttendanceController) GetClassMatrix(c *fiber.Ctx) error {
	if !helperAuth.IsStaff(c) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorTeacher("matrix kehadiran"))
	}

	classID, err := parseUUIDParam(c, "class_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	now := requestNow(c)

	data, err := service.LoadClassAttendanceData(ctrl.DB.WithContext(c.UserContext()), classID)
	if err != nil {
		return jsonEngineError(c, err)
	}

	matrix := service.BuildMatrix(service.MatrixInput{
		ClassID:      classID,
		Students:     data.Students,
		Enrollments:  data.Enrollments,
		Sessions:     data.Sessions,
		SessionsByID: data.SessionsByID,
		Rows:         data.Rows,
		MakeupRows:   data.MakeupRows,
	}, now)

	return helper.JsonOK(c, "matrix kehadiran", matrix)
}

/* =========================================
   GET /api/a/classes/:class_id/attendance-summary
   Dashboard: rate kelas, tally per student, rekap per sesi, daftar
   peringatan absen (rate absen >= ambang konfigurasi).
========================================= */

func (ctrl *AttendanceController) GetClassSummary(c *fiber.Ctx) error {
	if !helperAuth.IsStaff(c) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorTeacher("rekap kehadiran"))
	}

	classID, err := parseUUIDParam(c, "class_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	now := requestNow(c)

	data, err := service.LoadClassAttendanceData(ctrl.DB.WithContext(c.UserContext()), classID)
	if err != nil {
		return jsonEngineError(c, err)
	}

	idx := data.Linkage(now)
	rows := data.CompleteRows() // termasuk baris sintetis utk record yang hilang
	rowsByStudent := data.RowsByStudent()

	resp := attendanceDTO.ClassAttendanceSummaryResponse{
		ClassID:   classID,
		ClassRate: service.ClassRate(rows, data.SessionsByID, idx, now),
	}

	for i := range data.Students {
		st := &data.Students[i]
		attended, notAttended := service.StudentTally(
			rowsByStudent[st.StudentID], data.SessionsByID, data.Enrollments[st.StudentID], idx, now)

		resp.Students = append(resp.Students, attendanceDTO.StudentSummaryItem{
			StudentID:      st.StudentID,
			StudentName:    st.StudentName,
			StudentCode:    st.StudentCode,
			Attended:       attended,
			NotAttended:    notAttended,
			AttendanceRate: service.Rate(attended, notAttended),
		})
	}

	for i := range data.Sessions {
		sum := service.SummarizeSession(&data.Sessions[i], rows, idx, now)
		resp.Sessions = append(resp.Sessions, sum)
	}

	resp.Warnings = service.CollectAbsenceWarnings(
		classID, data.Students, data.Enrollments, rowsByStudent,
		data.SessionsByID, idx, configs.WarningThreshold(), now)

	return helper.JsonOK(c, "rekap kehadiran", resp)
}

/* =========================================
   GET /api/u/classes/:class_id/students/:student_id/attendance
   Laporan kehadiran satu student. Angkanya DIJAMIN sama dengan matrix
   karena diambil dari baris matrix yang sama, bukan dihitung terpisah.
========================================= */

func (ctrl *AttendanceController) GetStudentReport(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "class_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	now := requestNow(c)

	data, err := service.LoadClassAttendanceData(ctrl.DB.WithContext(c.UserContext()), classID)
	if err != nil {
		return jsonEngineError(c, err)
	}

	matrix := service.BuildMatrix(service.MatrixInput{
		ClassID:      classID,
		Students:     data.Students,
		Enrollments:  data.Enrollments,
		Sessions:     data.Sessions,
		SessionsByID: data.SessionsByID,
		Rows:         data.Rows,
		MakeupRows:   data.MakeupRows,
	}, now)

	for i := range matrix.Rows {
		row := &matrix.Rows[i]
		if row.StudentID == studentID {
			return helper.JsonOK(c, "laporan kehadiran", attendanceDTO.StudentAttendanceReportResponse{
				ClassID:        classID,
				StudentID:      studentID,
				StudentName:    row.StudentName,
				StudentCode:    row.StudentCode,
				AttendanceRate: row.AttendanceRate,
				Cells:          row.Cells,
			})
		}
	}
	return helper.JsonError(c, fiber.StatusNotFound, "student tidak terdaftar di kelas ini")
}
