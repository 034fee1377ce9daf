package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SessionsAndStats(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "aaaa", UserAgent: "curl", Path: "/", Timestamp: now}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "aaaa", Path: "/", Timestamp: now.Add(-3 * 24 * time.Hour)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "bbbb", Path: "/", Timestamp: now.Add(-30 * 24 * time.Hour)}))

	require.NoError(t, s.StartSession(ctx, "s1", "aaaa", now.Add(-time.Minute)))
	require.NoError(t, s.StartSession(ctx, "s2", "bbbb", now))
	require.NoError(t, s.FinishSession(ctx, "s1", "done", true, 13, now))

	stats, err := s.Stats(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalVisits)
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.EqualValues(t, 1, stats.VisitsToday)
	assert.EqualValues(t, 2, stats.VisitsThisWeek)
	assert.EqualValues(t, 2, stats.TotalSessions)
	assert.EqualValues(t, 1, stats.CompletedSessions)
	assert.EqualValues(t, 0, stats.CanceledSessions)
	assert.EqualValues(t, 1, stats.FallbackSessions)

	require.Len(t, stats.RecentSessions, 2)
	assert.Equal(t, "s2", stats.RecentSessions[0].ID)
	assert.Nil(t, stats.RecentSessions[0].FinishedAt)
	assert.Equal(t, "idle", stats.RecentSessions[0].Phase)
	first := stats.RecentSessions[1]
	require.NotNil(t, first.FinishedAt)
	assert.True(t, first.FinishedAt.Equal(now))
	assert.Equal(t, 13, first.Lines)
	assert.True(t, first.Fallback)

	require.Len(t, stats.RecentVisits, 3)
	assert.Equal(t, "curl", stats.RecentVisits[0].UserAgent)
}

func TestStore_FinishUnknownSession(t *testing.T) {
	s := openTestStore(t)
	err := s.FinishSession(context.Background(), "missing", "done", false, 0, time.Now())
	assert.Error(t, err)
}

func TestStore_Cleanup(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Now().UTC()

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "old", Timestamp: now.Add(-2 * Retention)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "new", Timestamp: now}))
	require.NoError(t, s.StartSession(ctx, "old", "old", now.Add(-2*Retention)))

	n, err := s.Cleanup(ctx, now.Add(-Retention))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	visits, err := s.RecentVisits(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "new", visits[0].HashedIP)
}
