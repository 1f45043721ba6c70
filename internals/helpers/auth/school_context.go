// file: internals/helpers/auth/school_context.go
package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals keys (auth middleware sets these)
   ============================================ */

const (
	LocUserID         = "user_id"          // string UUID
	LocActiveSchoolID = "active_school_id" // string UUID
	LocSchoolRoles    = "school_roles"     // []SchoolRolesEntry
)

type SchoolRolesEntry struct {
	SchoolID uuid.UUID `json:"school_id"`
	Roles    []string  `json:"roles"`
}

// roles allowed to mutate finance data
var staffRoles = map[string]bool{
	"admin":     true,
	"owner":     true,
	"treasurer": true,
}

// ResolveSchoolIDFromContext returns the tenant the request operates on.
// Tenant scoping is token-derived only; query params are never trusted for
// it, so a handler cannot accidentally run unscoped.
func ResolveSchoolIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocActiveSchoolID).(string)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "active school not resolved from token")
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid active school in token")
	}
	return id, nil
}

// ResolveUserIDFromContext returns the authenticated user, when present.
func ResolveUserIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user not resolved from token")
	}
	return id, nil
}

// EnsureStaffSchool guards admin mutations: the caller must hold a staff
// role in the given school.
func EnsureStaffSchool(c *fiber.Ctx, schoolID uuid.UUID) error {
	entries, _ := c.Locals(LocSchoolRoles).([]SchoolRolesEntry)
	for _, e := range entries {
		if e.SchoolID != schoolID {
			continue
		}
		for _, r := range e.Roles {
			if staffRoles[r] {
				return nil
			}
		}
	}
	return fiber.NewError(fiber.StatusForbidden, "staff role required for this school")
}
