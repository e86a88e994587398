package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

func seedHistory(t *testing.T, store *HistoryStore, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		err := store.RecordSubmission(context.Background(), domain.SubmissionRecord{
			ID:     fmt.Sprintf("rec-%d", i),
			NodeID: "node-1",
			Day:    domain.Monday,
			Source: "workday",
		})
		require.NoError(t, err)
	}
}

func TestHistoryStore_RecentNewestFirst(t *testing.T) {
	store := NewHistoryStore()
	seedHistory(t, store, 3)

	records, err := store.RecentSubmissions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "rec-2", records[0].ID)
	assert.Equal(t, "rec-1", records[1].ID)
	assert.Equal(t, "rec-0", records[2].ID)
}

func TestHistoryStore_RecentLimit(t *testing.T) {
	store := NewHistoryStore()
	seedHistory(t, store, 5)

	records, err := store.RecentSubmissions(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rec-4", records[0].ID)
	assert.Equal(t, "rec-3", records[1].ID)
}

func TestHistoryStore_Prune(t *testing.T) {
	store := NewHistoryStore()
	seedHistory(t, store, 5)

	err := store.PruneSubmissions(context.Background(), 2)
	require.NoError(t, err)

	records, err := store.RecentSubmissions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rec-4", records[0].ID)
	assert.Equal(t, "rec-3", records[1].ID)
}

func TestHistoryStore_PruneBelowCountKeepsAll(t *testing.T) {
	store := NewHistoryStore()
	seedHistory(t, store, 2)

	err := store.PruneSubmissions(context.Background(), 10)
	require.NoError(t, err)

	records, err := store.RecentSubmissions(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
