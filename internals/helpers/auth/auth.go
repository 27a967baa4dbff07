// file: internals/helpers/auth/auth.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kehadiranku_backend/internals/constants"
)

// Locals yang diisi middleware AuthJWT
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
	LocSchoolID = "school_id"
)

var ErrNoUserInToken = errors.New("user_id tidak ditemukan di token")

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, ErrNoUserInToken
	}
	switch t := v.(type) {
	case uuid.UUID:
		return t, nil
	case string:
		id, err := uuid.Parse(t)
		if err != nil {
			return uuid.Nil, ErrNoUserInToken
		}
		return id, nil
	}
	return uuid.Nil, ErrNoUserInToken
}

func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocSchoolID)
	if s, ok := v.(string); ok {
		if id, err := uuid.Parse(s); err == nil {
			return id, nil
		}
	}
	if id, ok := v.(uuid.UUID); ok {
		return id, nil
	}
	return uuid.Nil, errors.New("school_id tidak ditemukan di token")
}

func roleOf(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocUserRole).(string); ok {
		return s
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool   { return roleOf(c) == constants.RoleAdmin }
func IsTeacher(c *fiber.Ctx) bool { return roleOf(c) == constants.RoleTeacher }
func IsOwner(c *fiber.Ctx) bool   { return roleOf(c) == constants.RoleOwner }

// IsStaff: boleh mengelola kehadiran (teacher/admin/owner).
func IsStaff(c *fiber.Ctx) bool {
	switch roleOf(c) {
	case constants.RoleTeacher, constants.RoleAdmin, constants.RoleOwner:
		return true
	}
	return false
}
