// Package cache is a sqlite-backed read-through cache for fetched
// transaction periods. A closed month's records never change, so caching
// them avoids re-hitting the rate-limited government API on every ranking
// request for the same region.
package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"aptrank/server/internal/ingestion"
	"aptrank/server/internal/models"
)

type cachedPeriod struct {
	ID         uint   `gorm:"primaryKey"`
	RegionCode string `gorm:"uniqueIndex:idx_period"`
	YearMonth  string `gorm:"uniqueIndex:idx_period"`
	Kind       string `gorm:"uniqueIndex:idx_period"`
	Payload    string
	FetchedAt  time.Time
}

func (cachedPeriod) TableName() string {
	return "cached_periods"
}

// Store implements ingestion.RecordCache on a local sqlite file.
type Store struct {
	db     *gorm.DB
	ttl    time.Duration
	logger *logrus.Logger
}

// Open opens (or creates) the cache database at path.
func Open(path string, ttl time.Duration, logger *logrus.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	if err := db.AutoMigrate(&cachedPeriod{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cache schema: %w", err)
	}
	return &Store{db: db, ttl: ttl, logger: logger}, nil
}

// Get returns the cached records for one period, or false when the period
// is absent or older than the TTL.
func (s *Store) Get(regionCode, yearMonth string, kind ingestion.FetchKind) ([]models.RawTransactionRecord, bool) {
	var entry cachedPeriod
	err := s.db.
		Where("region_code = ? AND year_month = ? AND kind = ?", regionCode, yearMonth, string(kind)).
		First(&entry).Error
	if err != nil {
		return nil, false
	}
	if s.ttl > 0 && time.Since(entry.FetchedAt) > s.ttl {
		return nil, false
	}

	var records []models.RawTransactionRecord
	if err := json.Unmarshal([]byte(entry.Payload), &records); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"region_code": regionCode,
			"year_month":  yearMonth,
		}).Warn("Discarding unreadable cache entry")
		return nil, false
	}
	return records, true
}

// Put stores the records for one period, replacing any previous entry.
func (s *Store) Put(regionCode, yearMonth string, kind ingestion.FetchKind, records []models.RawTransactionRecord) {
	payload, err := json.Marshal(records)
	if err != nil {
		s.logger.WithError(err).Error("Failed to marshal cache payload")
		return
	}

	entry := cachedPeriod{
		RegionCode: regionCode,
		YearMonth:  yearMonth,
		Kind:       string(kind),
		Payload:    string(payload),
		FetchedAt:  time.Now(),
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "region_code"}, {Name: "year_month"}, {Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "fetched_at"}),
	}).Create(&entry).Error
	if err != nil {
		s.logger.WithError(err).Error("Failed to write cache entry")
	}
}
