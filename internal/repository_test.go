package internal

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) SearchHistoryRepository {
	tmpFile, err := os.CreateTemp("", "car_rentals_test-*.db")
	require.NoError(t, err)
	dbPath := tmpFile.Name()
	_ = tmpFile.Close()

	t.Cleanup(func() {
		_ = os.Remove(dbPath)
	})

	db, err := Connect(dbPath)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	err = Migrate("../migrations", dbPath)
	require.NoError(t, err)
	return NewSearchHistoryRepository(db)
}

func testRecord(createdAt time.Time) SearchRecord {
	return SearchRecord{
		Origin:           "New York, New York",
		Destination:      "Boston, Massachusetts",
		PickupDate:       "2026-09-01",
		ReturnDate:       "2026-09-04",
		RoundTrip:        false,
		CarSize:          "Any",
		Source:           "synthetic",
		NumOptions:       5,
		LowestDailyPrice: 42,
		QueryURL:         "https://www.kayak.com/cars/new-york-new-york-to-boston-massachusetts/2026-09-01/2026-09-04?sort=price_a",
		CreatedAt:        createdAt,
	}
}

func TestSearchHistoryIntegration(t *testing.T) {
	repo := setupTestDB(t)

	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, repo.Insert(testRecord(now.Add(-48*time.Hour))))
	require.NoError(t, repo.Insert(testRecord(now.Add(-1*time.Hour))))
	require.NoError(t, repo.Insert(testRecord(now)))

	t.Run("Recent returns newest first", func(t *testing.T) {
		records, err := repo.Recent(10)
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.True(t, records[0].CreatedAt.Equal(now))
		assert.True(t, records[1].CreatedAt.Equal(now.Add(-1*time.Hour)))
		assert.True(t, records[2].CreatedAt.Equal(now.Add(-48*time.Hour)))

		assert.Equal(t, "New York, New York", records[0].Origin)
		assert.Equal(t, 42, records[0].LowestDailyPrice)
		assert.Equal(t, "synthetic", records[0].Source)
	})

	t.Run("Recent honours the limit", func(t *testing.T) {
		records, err := repo.Recent(2)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("Prune removes only old rows", func(t *testing.T) {
		pruned, err := repo.PruneOlderThan(now.Add(-24 * time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(1), pruned)

		records, err := repo.Recent(10)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("Prune with nothing to remove", func(t *testing.T) {
		pruned, err := repo.PruneOlderThan(now.Add(-24 * time.Hour))
		require.NoError(t, err)
		assert.Zero(t, pruned)
	})
}
