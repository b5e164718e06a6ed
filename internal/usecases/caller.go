package usecases

import (
	"github.com/google/uuid"
	"ouibooking.backend/internal/domain/entities"
)

// Caller identifies the authenticated user a usecase acts on behalf of.
// Handlers build one from the token claims.
type Caller struct {
	UserID uuid.UUID
	Role   string
}

// IsAdmin reports whether the caller carries the admin role
func (c Caller) IsAdmin() bool {
	return c.Role == string(entities.UserRoleAdmin)
}

// CanAccess reports whether the caller may touch a resource owned by ownerID
func (c Caller) CanAccess(ownerID uuid.UUID) bool {
	return c.IsAdmin() || c.UserID == ownerID
}
