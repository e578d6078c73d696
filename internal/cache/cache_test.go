package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aptrank/server/internal/ingestion"
	"aptrank/server/internal/models"
)

func testStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.ErrorLevel)

	store, err := Open(filepath.Join(t.TempDir(), "cache.db"), ttl, logger)
	require.NoError(t, err)
	return store
}

func sampleRecords() []models.RawTransactionRecord {
	return []models.RawTransactionRecord{
		{ComplexName: "힐스테이트", District: "역삼동", Kind: models.KindTrade, Price: 85000, AreaSqm: 84.95, Year: 2026, Month: 7},
	}
}

func TestPutAndGet(t *testing.T) {
	store := testStore(t, time.Hour)

	store.Put("11680", "202607", ingestion.FetchTrade, sampleRecords())

	records, ok := store.Get("11680", "202607", ingestion.FetchTrade)
	require.True(t, ok)
	assert.Equal(t, sampleRecords(), records)
}

func TestGetMissesOnDifferentKey(t *testing.T) {
	store := testStore(t, time.Hour)
	store.Put("11680", "202607", ingestion.FetchTrade, sampleRecords())

	_, ok := store.Get("11680", "202606", ingestion.FetchTrade)
	assert.False(t, ok)
	_, ok = store.Get("11680", "202607", ingestion.FetchRent)
	assert.False(t, ok)
	_, ok = store.Get("11650", "202607", ingestion.FetchTrade)
	assert.False(t, ok)
}

func TestGetExpiresAfterTTL(t *testing.T) {
	store := testStore(t, time.Nanosecond)
	store.Put("11680", "202607", ingestion.FetchTrade, sampleRecords())

	time.Sleep(time.Millisecond)
	_, ok := store.Get("11680", "202607", ingestion.FetchTrade)
	assert.False(t, ok)
}

func TestPutReplacesExistingEntry(t *testing.T) {
	store := testStore(t, time.Hour)
	store.Put("11680", "202607", ingestion.FetchTrade, sampleRecords())

	updated := sampleRecords()
	updated[0].Price = 90000
	store.Put("11680", "202607", ingestion.FetchTrade, updated)

	records, ok := store.Get("11680", "202607", ingestion.FetchTrade)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, 90000, records[0].Price)
}

func TestEmptyRecordsCached(t *testing.T) {
	store := testStore(t, time.Hour)
	store.Put("11680", "202607", ingestion.FetchTrade, []models.RawTransactionRecord{})

	records, ok := store.Get("11680", "202607", ingestion.FetchTrade)
	assert.True(t, ok)
	assert.Empty(t, records)
}
