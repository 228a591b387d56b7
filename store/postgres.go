package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoredValue is one persisted (context, key) entry.
type StoredValue struct {
	ContextID string `gorm:"primaryKey;size:64"`
	Key       string `gorm:"primaryKey;size:32"`
	Value     []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

// PostgresStore keeps context state in Postgres via GORM, for
// deployments that already run a relational database.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.AutoMigrate(&StoredValue{}); err != nil {
		return nil, fmt.Errorf("migrate stored_values: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Get(ctx context.Context, contextID, key string) ([]byte, error) {
	var row StoredValue
	err := p.db.WithContext(ctx).
		Where("context_id = ? AND key = ?", contextID, key).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres get failed: %w", err)
	}
	return row.Value, nil
}

func (p *PostgresStore) Set(ctx context.Context, contextID, key string, value []byte) error {
	row := StoredValue{ContextID: contextID, Key: key, Value: value, UpdatedAt: time.Now()}
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "context_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("postgres set failed: %w", err)
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, contextID, key string) error {
	err := p.db.WithContext(ctx).
		Where("context_id = ? AND key = ?", contextID, key).
		Delete(&StoredValue{}).Error
	if err != nil {
		return fmt.Errorf("postgres delete failed: %w", err)
	}
	return nil
}
