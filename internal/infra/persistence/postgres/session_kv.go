package postgres

import (
	"context"

	"nexprev/internal/errors"
	"nexprev/internal/infra/persistence/model"
	"nexprev/internal/session"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionKV persists session entries in the session_entries table so
// sessions survive process restarts.
type sessionKV struct {
	db *gorm.DB
}

// NewSessionKV is the constructor for sessionKV.
func NewSessionKV(db *gorm.DB) session.KV {
	return &sessionKV{db: db}
}

func (kv *sessionKV) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.SessionEntryModel
	err := kv.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, session.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load session entry")
	}

	return entry.Value, nil
}

func (kv *sessionKV) Set(ctx context.Context, key string, value []byte) error {
	entry := model.SessionEntryModel{
		Key:   key,
		Value: value,
	}

	err := kv.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return errors.Wrap(err, "failed to store session entry")
	}

	return nil
}

func (kv *sessionKV) Delete(ctx context.Context, key string) error {
	err := kv.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.SessionEntryModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete session entry")
	}

	return nil
}
