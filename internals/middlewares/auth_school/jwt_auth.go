// file: internals/middlewares/auth_school/jwt_auth.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // use the access_token cookie when no Bearer header
}

// AuthJWT verifies the ambient HS256 token and hydrates the locals the
// tenant resolver expects (user_id, active_school_id, school_roles).
// Issuing tokens is someone else's job; this backend only consumes them.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		if v, ok := claims["user_id"].(string); ok && v != "" {
			c.Locals(helperAuth.LocUserID, v)
		}
		if v, ok := claims["active_school_id"].(string); ok && v != "" {
			c.Locals(helperAuth.LocActiveSchoolID, v)
		}
		c.Locals(helperAuth.LocSchoolRoles, parseSchoolRoles(claims["school_roles"]))

		return c.Next()
	}
}

// parseSchoolRoles tolerates the loose []any/map[string]any shape MapClaims
// gives back for nested JSON.
func parseSchoolRoles(v any) []helperAuth.SchoolRolesEntry {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]helperAuth.SchoolRolesEntry, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		idStr, _ := m["school_id"].(string)
		id, err := uuid.Parse(idStr)
		if err != nil {
			continue
		}
		var roles []string
		if rs, ok := m["roles"].([]any); ok {
			for _, r := range rs {
				if s, ok := r.(string); ok {
					roles = append(roles, s)
				}
			}
		}
		out = append(out, helperAuth.SchoolRolesEntry{SchoolID: id, Roles: roles})
	}
	return out
}
