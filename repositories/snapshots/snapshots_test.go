package snapshots

import (
	"testing"
	"time"

	"crypto-tracker/models/entities"
	"crypto-tracker/utils/databases"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testConnection struct {
	db *gorm.DB
}

func (c *testConnection) GetDB() *gorm.DB   { return c.db }
func (c *testConnection) IsConnected() bool { return true }
func (c *testConnection) Run() error        { return nil }
func (c *testConnection) Shutdown()         {}

func newTestDB(t *testing.T) databases.SqlConnection {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.MarketSnapshot{}))
	return &testConnection{db: db}
}

func snapshotRow(symbol string, loadDate string, lastUpdated time.Time) entities.MarketSnapshot {
	return entities.MarketSnapshot{
		Symbol:      symbol,
		Name:        symbol,
		LastUpdated: lastUpdated,
		LoadDate:    loadDate,
	}
}

func TestSaveBatch(t *testing.T) {
	repo := New(newTestDB(t))

	now := time.Now().UTC()
	count, err := repo.SaveBatch([]entities.MarketSnapshot{
		snapshotRow("btc", "2025-03-01", now),
		snapshotRow("eth", "2025-03-01", now),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, int64(2), repo.Count())
}

func TestSaveBatchEmptyIsNoOp(t *testing.T) {
	repo := New(newTestDB(t))

	count, err := repo.SaveBatch(nil)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, repo.Count())
}

func TestSymbolsForLoadDate(t *testing.T) {
	repo := New(newTestDB(t))
	now := time.Now().UTC()

	_, err := repo.SaveBatch([]entities.MarketSnapshot{
		snapshotRow("btc", "2025-03-01", now),
		snapshotRow("eth", "2025-03-01", now),
		snapshotRow("btc", "2025-02-28", now.AddDate(0, 0, -1)),
		snapshotRow("sol", "2025-02-28", now.AddDate(0, 0, -1)),
	})
	require.NoError(t, err)

	symbols, err := repo.SymbolsForLoadDate("2025-03-01")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"btc", "eth"}, symbols)

	symbols, err = repo.SymbolsForLoadDate("2025-03-02")
	require.NoError(t, err)
	assert.Empty(t, symbols)
}

func TestListOrdered(t *testing.T) {
	repo := New(newTestDB(t))
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := repo.SaveBatch([]entities.MarketSnapshot{
		snapshotRow("btc", "2025-03-01", base),
		snapshotRow("eth", "2025-03-01", base.Add(2*time.Hour)),
		snapshotRow("sol", "2025-03-01", base.Add(1*time.Hour)),
	})
	require.NoError(t, err)

	rows, err := repo.ListOrdered()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "eth", rows[0].Symbol)
	assert.Equal(t, "sol", rows[1].Symbol)
	assert.Equal(t, "btc", rows[2].Symbol)
}

func TestSaveBatchAllowsSameDayDuplicates(t *testing.T) {
	// The snapshot table carries no uniqueness constraint; same-day dedup is
	// the pipeline's job.
	repo := New(newTestDB(t))
	now := time.Now().UTC()

	_, err := repo.SaveBatch([]entities.MarketSnapshot{snapshotRow("btc", "2025-03-01", now)})
	require.NoError(t, err)
	_, err = repo.SaveBatch([]entities.MarketSnapshot{snapshotRow("btc", "2025-03-01", now)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), repo.Count())
}
