package history

import (
	"testing"

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
	require.NoError(t, db.AutoMigrate(&entities.HistoricalPrice{}))
	return &testConnection{db: db}
}

func TestSaveBatch(t *testing.T) {
	repo := New(newTestDB(t))

	count, err := repo.SaveBatch([]entities.HistoricalPrice{
		{Symbol: "bitcoin", Date: "2025-03-01", Name: "Bitcoin", Price: 65000},
		{Symbol: "bitcoin", Date: "2025-03-02", Name: "Bitcoin", Price: 66000},
		{Symbol: "ethereum", Date: "2025-03-01", Name: "Ethereum", Price: 3400},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, int64(3), repo.Count())
}

func TestSaveBatchEmptyIsNoOp(t *testing.T) {
	repo := New(newTestDB(t))

	count, err := repo.SaveBatch(nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSaveBatchRejectsDuplicateSymbolDate(t *testing.T) {
	// Within-run dedup does not consult the table; repeats across runs are
	// rejected by the composite primary key.
	repo := New(newTestDB(t))

	_, err := repo.SaveBatch([]entities.HistoricalPrice{
		{Symbol: "bitcoin", Date: "2025-03-01", Price: 65000},
	})
	require.NoError(t, err)

	_, err = repo.SaveBatch([]entities.HistoricalPrice{
		{Symbol: "bitcoin", Date: "2025-03-01", Price: 64000},
	})
	require.Error(t, err)
	assert.Equal(t, int64(1), repo.Count())
}

func TestFetchForSymbol(t *testing.T) {
	repo := New(newTestDB(t))

	_, err := repo.SaveBatch([]entities.HistoricalPrice{
		{Symbol: "bitcoin", Date: "2025-03-02", Price: 66000},
		{Symbol: "bitcoin", Date: "2025-03-01", Price: 65000},
		{Symbol: "ethereum", Date: "2025-03-01", Price: 3400},
	})
	require.NoError(t, err)

	rows, err := repo.FetchForSymbol("bitcoin")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-03-01", rows[0].Date)
	assert.Equal(t, "2025-03-02", rows[1].Date)

	rows, err = repo.FetchForSymbol("polygon")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
