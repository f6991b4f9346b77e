package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hdkey-core/internal/model"
)

// KeyLedger 持久化句柄生命周期，只写入公开信息
type KeyLedger interface {
	RecordCreated(ctx context.Context, rec *model.KeyRecord) error
	RecordReleased(ctx context.Context, handle string, at time.Time) error
}

// SQLKeyLedger 基于 gorm 的 KeyLedger 实现
type SQLKeyLedger struct {
	db *gorm.DB
}

func NewSQLKeyLedger(db *gorm.DB) *SQLKeyLedger {
	return &SQLKeyLedger{db: db}
}

func (l *SQLKeyLedger) RecordCreated(ctx context.Context, rec *model.KeyRecord) error {
	return l.db.WithContext(ctx).Create(rec).Error
}

func (l *SQLKeyLedger) RecordReleased(ctx context.Context, handle string, at time.Time) error {
	return l.db.WithContext(ctx).
		Model(&model.KeyRecord{}).
		Where("handle = ? AND released_at IS NULL", handle).
		Update("released_at", at).Error
}
