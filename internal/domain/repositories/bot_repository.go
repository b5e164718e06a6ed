package repositories

import (
	"context"

	"github.com/google/uuid"
	"ouibooking.backend/internal/domain/entities"
	"ouibooking.backend/internal/domain/taxonomy"
)

// BotRepository defines bot store operations
type BotRepository interface {
	Create(ctx context.Context, bot *entities.Bot) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Bot, error)
	Update(ctx context.Context, bot *entities.Bot) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all bots in insertion order.
	List(ctx context.Context) ([]*entities.Bot, error)
	// ListByUser returns the bots owned by userID in insertion order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Bot, error)
	// IndustryCount counts bots per industry across the whole collection.
	IndustryCount(ctx context.Context) (map[taxonomy.Industry]int, error)
}
