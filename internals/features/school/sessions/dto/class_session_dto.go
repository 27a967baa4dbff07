package dto

import (
	"time"

	"github.com/google/uuid"

	sessionModel "kehadiranku_backend/internals/features/school/sessions/model"
)

/* =========================================
   Request
========================================= */

// Laporan guru: menutup sesi (status → done) + isi materi/PR.
type SubmitSessionReportRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Homework *string `json:"homework,omitempty" validate:"omitempty,max=2000"`
	Note     *string `json:"note,omitempty" validate:"omitempty,max=2000"`
}

type CancelSessionRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

/* =========================================
   Response
========================================= */

type ClassSessionResponse struct {
	ClassSessionID uuid.UUID                       `json:"class_session_id"`
	ClassID        uuid.UUID                       `json:"class_id"`
	Date           time.Time                       `json:"date"`
	StartsAt       *time.Time                      `json:"starts_at,omitempty"`
	EndsAt         *time.Time                      `json:"ends_at,omitempty"`
	Status         sessionModel.ClassSessionStatus `json:"status"`
	Title          *string                         `json:"title,omitempty"`
	Homework       *string                         `json:"homework,omitempty"`
	Note           *string                         `json:"note,omitempty"`
}

func FromModel(m *sessionModel.ClassSessionModel) ClassSessionResponse {
	return ClassSessionResponse{
		ClassSessionID: m.ClassSessionID,
		ClassID:        m.ClassSessionClassID,
		Date:           m.ClassSessionDate,
		StartsAt:       m.ClassSessionStartsAt,
		EndsAt:         m.ClassSessionEndsAt,
		Status:         m.ClassSessionStatus,
		Title:          m.ClassSessionTitle,
		Homework:       m.ClassSessionHomework,
		Note:           m.ClassSessionNote,
	}
}

type EditWindowResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	State     string    `json:"state"`
	Editable  bool      `json:"editable"`
	Deadline  time.Time `json:"deadline"`
}
