package storage

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRecord is the row backing one snapshot key.
type SnapshotRecord struct {
	Key       string         `gorm:"primaryKey" json:"key"`
	Data      datatypes.JSON `gorm:"type:jsonb" json:"data"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SnapshotRecord) TableName() string {
	return "snapshots"
}

// GormStore persists snapshots to a single table, one row per key.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return nil, err
	}
	return &GormStore{DB: db}, nil
}

func (s *GormStore) Load(key string) ([]byte, error) {
	var rec SnapshotRecord
	err := s.DB.Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(rec.Data), nil
}

func (s *GormStore) Save(key string, data []byte) error {
	rec := SnapshotRecord{Key: key, Data: datatypes.JSON(data)}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
}
