// Package gormstore implements the storage contracts on MySQL. It is the
// recommended backend: view counts increment atomically in SQL and
// approval transitions run inside row-locked transactions, so correctness
// does not depend on in-process serialization.
package gormstore

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

type Store struct {
	db *gorm.DB
}

// New opens the database, tunes the pool and runs auto-migration.
func New(dsn string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&HostelRecord{}, &MarketplaceRecord{}, &SettingRecord{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Hostels() store.HostelStore          { return &hostelRepo{db: s.db} }
func (s *Store) Marketplace() store.MarketplaceStore { return &marketRepo{db: s.db} }
func (s *Store) Settings() store.SettingsStore       { return &settingsRepo{db: s.db} }
