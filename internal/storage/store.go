// Package storage implements the durable key-scoped store for the
// collections. Each collection is persisted as a single JSON document
// under its key, mirroring how the data is held in memory.
package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// collection is a persisted collection document.
type collection struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

// Store is a durable mapping from a collection key to its serialized value.
type Store struct {
	db *gorm.DB
}

// Connect opens the sqlite database at dsn and migrates the schema.
func Connect(dsn string) (*Store, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(collection{})
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Load reads the value stored under key. If the key has never been saved,
// the read fails, or the stored payload cannot be decoded, the seed value
// is returned. Load never fails from the caller's perspective: the seed is
// the recovery path.
func Load[T any](s *Store, key string, seed T) T {
	var record collection

	err := s.db.First(&record, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Str("key", key).Err(err).Msg("reading collection failed, using seed data")
		}
		return seed
	}

	var value T
	err = json.Unmarshal(record.Value, &value)
	if err != nil {
		log.Warn().Str("key", key).Err(err).Msg("decoding collection failed, using seed data")
		return seed
	}

	return value
}

// Save serializes value and writes it durably under key, overwriting any
// prior value.
func Save[T any](s *Store, key string, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&collection{Key: key, Value: payload}).Error
}
