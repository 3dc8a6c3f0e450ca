// Package dbstore is the SQLite-backed persistence adapter. The whole
// history is kept as one serialized record row keyed by a fixed name,
// mirroring the key-value store the history format was designed for.
package dbstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/rwalden/clipwatch/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// recordKey is the fixed key the history record is stored under.
const recordKey = "history"

// RecordModel is a key-value row holding one serialized record.
type RecordModel struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     []byte    `gorm:"type:blob;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for RecordModel
func (RecordModel) TableName() string {
	return "records"
}

// SQLiteStore is a SQLite-backed implementation of store.Store
type SQLiteStore struct {
	db     *gorm.DB
	dbPath string
}

// NewSQLiteStore opens (or creates) the database at the specified path
// and migrates the schema.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&RecordModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Save replaces the stored record with the serialized entries.
func (s *SQLiteStore) Save(entries []*store.Entry) error {
	data, err := store.EncodeRecord(entries)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	row := &RecordModel{Key: recordKey, Value: data}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// Load reads the stored record. A missing or malformed record yields an
// empty list.
func (s *SQLiteStore) Load() ([]*store.Entry, error) {
	var row RecordModel
	err := s.db.First(&row, "key = ?", recordKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []*store.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}

	return store.DecodeRecord(row.Value), nil
}

// Clear deletes the stored record.
func (s *SQLiteStore) Clear() error {
	err := s.db.Delete(&RecordModel{}, "key = ?", recordKey).Error
	if err != nil {
		return fmt.Errorf("failed to clear record: %w", err)
	}
	return nil
}

// Stats reports the stored entry count and serialized size.
func (s *SQLiteStore) Stats() (store.Stats, error) {
	var row RecordModel
	err := s.db.First(&row, "key = ?", recordKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.Stats{}, nil
	}
	if err != nil {
		return store.Stats{}, fmt.Errorf("failed to read record: %w", err)
	}

	return store.Stats{
		Entries: len(store.DecodeRecord(row.Value)),
		Bytes:   int64(len(row.Value)),
	}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
