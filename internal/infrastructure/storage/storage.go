// Package storage provides the snapshot port the entity stores persist
// through: whole-blob JSON snapshots addressed by name, rewritten on every
// mutation. Backends exist for the filesystem, a GORM database table and
// plain memory, so a real backend can be substituted without touching store
// logic.
package storage

import (
	"context"
	"errors"
)

// Blob names used by the stores
const (
	AuthBlob = "auth-storage"
	BotBlob  = "bot-storage"
)

// ErrNoSnapshot is returned by Load when no snapshot exists under the name
var ErrNoSnapshot = errors.New("no snapshot")

// SnapshotStore persists named snapshot blobs
type SnapshotStore interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}
