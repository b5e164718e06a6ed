package repositories

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"ouibooking.backend/internal/domain/entities"
	domainerrors "ouibooking.backend/internal/domain/errors"
	"ouibooking.backend/internal/domain/taxonomy"
	"ouibooking.backend/internal/infrastructure/storage"
)

const botSnapshotVersion = 1

type botRecord struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"userId"`
	Name      string              `json:"name"`
	Industry  string              `json:"industry"`
	Goal      string              `json:"goal"`
	Languages []string            `json:"languages"`
	Active    bool                `json:"active"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
	Metrics   entities.BotMetrics `json:"metrics"`
}

type botSnapshot struct {
	Version int         `json:"version"`
	Bots    []botRecord `json:"bots"`
}

// BotRepository implements bot store operations over an in-memory ordered
// collection, snapshotting the whole collection on every mutation.
type BotRepository struct {
	mu    sync.RWMutex
	store storage.SnapshotStore
	bots  []*entities.Bot
}

// NewBotRepository creates a bot repository, rehydrating from the
// bot-storage snapshot when one exists.
func NewBotRepository(ctx context.Context, store storage.SnapshotStore) (*BotRepository, error) {
	r := &BotRepository{store: store}

	data, err := store.Load(ctx, storage.BotBlob)
	if err != nil {
		if err == storage.ErrNoSnapshot {
			return r, nil
		}
		return nil, err
	}

	var snap botSnapshot
	if err := json.Unmarshal(data, &snap); err != nil || snap.Version != botSnapshotVersion {
		return r, nil
	}
	for _, rec := range snap.Bots {
		r.bots = append(r.bots, recordToBot(rec))
	}
	return r, nil
}

// Create creates a new bot with zeroed metrics and fresh timestamps
func (r *BotRepository) Create(ctx context.Context, bot *entities.Bot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if bot.ID == uuid.Nil {
		bot.ID = uuid.New()
	}
	bot.CreatedAt = now
	bot.UpdatedAt = now
	bot.Metrics = entities.BotMetrics{}

	r.bots = append(r.bots, cloneBot(bot))
	return r.persistLocked(ctx)
}

// GetByID gets a bot by ID
func (r *BotRepository) GetByID(_ context.Context, id uuid.UUID) (*entities.Bot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bots {
		if b.ID == id {
			return cloneBot(b), nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

// Update replaces the stored bot with the same ID and refreshes UpdatedAt
func (r *BotRepository) Update(ctx context.Context, bot *entities.Bot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bots {
		if b.ID == bot.ID {
			cp := cloneBot(bot)
			cp.CreatedAt = b.CreatedAt
			cp.UpdatedAt = time.Now()
			r.bots[i] = cp
			bot.UpdatedAt = cp.UpdatedAt
			return r.persistLocked(ctx)
		}
	}
	return domainerrors.ErrNotFound
}

// Delete removes the bot with the given ID
func (r *BotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bots {
		if b.ID == id {
			r.bots = append(r.bots[:i], r.bots[i+1:]...)
			return r.persistLocked(ctx)
		}
	}
	return domainerrors.ErrNotFound
}

// List returns all bots in insertion order
func (r *BotRepository) List(_ context.Context) ([]*entities.Bot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Bot, 0, len(r.bots))
	for _, b := range r.bots {
		out = append(out, cloneBot(b))
	}
	return out, nil
}

// ListByUser returns the bots owned by userID in insertion order
func (r *BotRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.Bot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entities.Bot
	for _, b := range r.bots {
		if b.UserID == userID {
			out = append(out, cloneBot(b))
		}
	}
	return out, nil
}

// IndustryCount counts bots per industry across the whole collection
func (r *BotRepository) IndustryCount(_ context.Context) (map[taxonomy.Industry]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[taxonomy.Industry]int{}
	for _, b := range r.bots {
		counts[b.Industry]++
	}
	return counts, nil
}

func (r *BotRepository) persistLocked(ctx context.Context) error {
	snap := botSnapshot{Version: botSnapshotVersion}
	for _, b := range r.bots {
		langs := make([]string, len(b.Languages))
		copy(langs, b.Languages)
		snap.Bots = append(snap.Bots, botRecord{
			ID:        b.ID,
			UserID:    b.UserID,
			Name:      b.Name,
			Industry:  string(b.Industry),
			Goal:      b.Goal,
			Languages: langs,
			Active:    b.Active,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
			Metrics:   b.Metrics,
		})
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, storage.BotBlob, data)
}

func cloneBot(b *entities.Bot) *entities.Bot {
	cp := *b
	cp.Languages = make([]string, len(b.Languages))
	copy(cp.Languages, b.Languages)
	return &cp
}

func recordToBot(rec botRecord) *entities.Bot {
	return &entities.Bot{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Name:      rec.Name,
		Industry:  taxonomy.Industry(rec.Industry),
		Goal:      rec.Goal,
		Languages: rec.Languages,
		Active:    rec.Active,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		Metrics:   rec.Metrics,
	}
}
