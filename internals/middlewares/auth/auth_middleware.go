// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"kehadiranku_backend/internals/configs"
	helperAuth "kehadiranku_backend/internals/helpers/auth"
	"kehadiranku_backend/internals/helpers/dbtime"
)

var (
	errNoToken      = errors.New("Authorization header kosong")
	errInvalidToken = errors.New("token tidak valid")
)

// AuthJWT memverifikasi bearer token dan mengisi locals
// (user_id, user_role, school_id, school_timezone) untuk handler berikutnya.
func AuthJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errInvalidToken
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// exp manual check (jaga-jaga kalau parser dilonggarkan)
		if exp, ok := claims["exp"].(float64); ok {
			if time.Now().After(time.Unix(int64(exp), 0)) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
			}
		}

		if v, ok := claims["sub"].(string); ok {
			c.Locals(helperAuth.LocUserID, v)
		}
		if v, ok := claims["role"].(string); ok {
			c.Locals(helperAuth.LocUserRole, v)
		}
		if v, ok := claims["school_id"].(string); ok {
			c.Locals(helperAuth.LocSchoolID, v)
		}
		if v, ok := claims["school_timezone"].(string); ok {
			c.Locals(dbtime.LocSchoolTimezone, v)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		// fallback cookie (web client)
		if t := c.Cookies("access_token"); t != "" {
			return t, nil
		}
		return "", errNoToken
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errInvalidToken
	}
	return strings.TrimSpace(parts[1]), nil
}
