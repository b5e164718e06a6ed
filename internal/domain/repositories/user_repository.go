package repositories

import (
	"context"

	"github.com/google/uuid"
	"ouibooking.backend/internal/domain/entities"
)

// UserRepository defines user store operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	// GetByEmail matches the email case-insensitively.
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns users in insertion order, optionally filtered by a
	// case-insensitive search over name, email and role.
	List(ctx context.Context, search string) ([]*entities.User, error)
	Count(ctx context.Context) (int, error)
}
