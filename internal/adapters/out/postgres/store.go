// Package postgres provides a GORM-backed key-value store. Production uses
// PostgreSQL; any GORM dialect with upsert support works.
//
// Usage:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	store, err := postgres.NewStore(db)
//	if err != nil {
//	    return err
//	}
//	uowFactory := catalog.NewUnitOfWorkFactory(store)
package postgres

import (
	"context"
	"errors"
	"fmt"

	"deliverydesk/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store implements ports.KeyValueStore on the kv_entries table.
type Store struct {
	db *gorm.DB
}

var _ ports.KeyValueStore = (*Store)(nil)

// NewStore migrates the kv_entries table and returns a store over db.
func NewStore(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("gorm db is required")
	}
	if err := db.AutoMigrate(&EntryDTO{}); err != nil {
		return nil, fmt.Errorf("migrate kv_entries: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var dto EntryDTO
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return dto.Value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

// SetMany upserts every entry inside one database transaction.
func (s *Store) SetMany(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for key, value := range entries {
		dtos = append(dtos, EntryDTO{Key: key, Value: value})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&dtos).Error
	})
}
