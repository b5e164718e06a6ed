package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotModel is the database row a snapshot blob is stored in
type SnapshotModel struct {
	Name      string `gorm:"primaryKey;size:64"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides the GORM table name
func (SnapshotModel) TableName() string { return "snapshots" }

// GormStore persists snapshots in a database table, one row per blob
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a database-backed snapshot store and migrates the
// snapshots table
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&SnapshotModel{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

// Load reads the snapshot blob for name
func (s *GormStore) Load(ctx context.Context, name string) ([]byte, error) {
	var m SnapshotModel
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return m.Data, nil
}

// Save rewrites the snapshot blob for name
func (s *GormStore) Save(ctx context.Context, name string, data []byte) error {
	m := SnapshotModel{Name: name, Data: data, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&m).Error
}

// OpenSQLite opens a SQLite database for the snapshot store
func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// OpenPostgres opens a PostgreSQL database for the snapshot store
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
	})
}
