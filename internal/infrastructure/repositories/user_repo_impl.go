package repositories

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"ouibooking.backend/internal/domain/entities"
	domainerrors "ouibooking.backend/internal/domain/errors"
	"ouibooking.backend/internal/infrastructure/storage"
)

// authSnapshotVersion is bumped on schema changes; a mismatched snapshot is
// discarded and the store starts empty (to be reseeded).
const authSnapshotVersion = 1

type userRecord struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

type authSnapshot struct {
	Version int          `json:"version"`
	Users   []userRecord `json:"users"`
}

// UserRepository implements user store operations over an in-memory ordered
// collection, snapshotting the whole collection on every mutation.
type UserRepository struct {
	mu    sync.RWMutex
	store storage.SnapshotStore
	users []*entities.User
}

// NewUserRepository creates a user repository, rehydrating from the
// auth-storage snapshot when one exists.
func NewUserRepository(ctx context.Context, store storage.SnapshotStore) (*UserRepository, error) {
	r := &UserRepository{store: store}

	data, err := store.Load(ctx, storage.AuthBlob)
	if err != nil {
		if err == storage.ErrNoSnapshot {
			return r, nil
		}
		return nil, err
	}

	var snap authSnapshot
	if err := json.Unmarshal(data, &snap); err != nil || snap.Version != authSnapshotVersion {
		// Unreadable or older-schema snapshot: start empty.
		return r, nil
	}
	for _, rec := range snap.Users {
		r.users = append(r.users, &entities.User{
			ID:           rec.ID,
			Email:        rec.Email,
			Name:         rec.Name,
			PasswordHash: rec.PasswordHash,
			Role:         entities.UserRole(rec.Role),
			CreatedAt:    rec.CreatedAt,
		})
	}
	return r, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if user.Role == "" {
		user.Role = entities.UserRoleUser
	}

	cp := *user
	r.users = append(r.users, &cp)
	return r.persistLocked(ctx)
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

// GetByEmail gets a user by email, matched case-insensitively
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

// Update replaces the stored user with the same ID
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == user.ID {
			cp := *user
			cp.CreatedAt = u.CreatedAt
			r.users[i] = &cp
			return r.persistLocked(ctx)
		}
	}
	return domainerrors.ErrNotFound
}

// Delete removes the user with the given ID
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return r.persistLocked(ctx)
		}
	}
	return domainerrors.ErrNotFound
}

// List returns users in insertion order, optionally filtered by a
// case-insensitive search over name, email and role
func (r *UserRepository) List(_ context.Context, search string) ([]*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(search))
	var out []*entities.User
	for _, u := range r.users {
		if term != "" &&
			!strings.Contains(strings.ToLower(u.Name), term) &&
			!strings.Contains(strings.ToLower(u.Email), term) &&
			!strings.Contains(strings.ToLower(string(u.Role)), term) {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

// Count returns the number of stored users
func (r *UserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *UserRepository) persistLocked(ctx context.Context) error {
	snap := authSnapshot{Version: authSnapshotVersion}
	for _, u := range r.users {
		snap.Users = append(snap.Users, userRecord{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			PasswordHash: u.PasswordHash,
			Role:         string(u.Role),
			CreatedAt:    u.CreatedAt,
		})
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, storage.AuthBlob, data)
}
