package datasource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticSourceShape(t *testing.T) {
	src := NewSyntheticSource(42)

	day, err := src.CollectDay(context.Background(), "20250104", "서울")
	require.NoError(t, err)
	require.False(t, day.Empty())

	groups := GroupEntriesByRace(day.Entries)
	assert.Len(t, groups, 10)

	for raceNo, group := range groups {
		assert.GreaterOrEqual(t, len(group), 8, "race %d", raceNo)
		assert.LessOrEqual(t, len(group), 12, "race %d", raceNo)
	}

	// every entry carries a full five-race history the adapter can read
	entry := BuildEntry(day.Entries[0], day.Training)
	assert.Len(t, entry.History, 5)
	assert.Greater(t, entry.CurrentWeight, 0.0)

	// finish orders per race form a permutation of 1..N
	results := ResultsByRace(day.Results)
	for raceNo, rows := range results {
		seen := make(map[int]bool)
		for _, row := range rows {
			assert.False(t, seen[row.Ord], "race %d duplicate ord %d", raceNo, row.Ord)
			seen[row.Ord] = true
			assert.GreaterOrEqual(t, row.Ord, 1)
			assert.LessOrEqual(t, row.Ord, len(rows))
		}
	}
}

func TestSyntheticSourceDeterministic(t *testing.T) {
	a, err := NewSyntheticSource(7).CollectDay(context.Background(), "20250104", "부산")
	require.NoError(t, err)
	b, err := NewSyntheticSource(7).CollectDay(context.Background(), "20250104", "부산")
	require.NoError(t, err)

	assert.Equal(t, a.Entries, b.Entries)
	assert.Equal(t, a.Results, b.Results)
}

func TestSyntheticSourceRejectsUnknownTrack(t *testing.T) {
	_, err := NewSyntheticSource(1).CollectDay(context.Background(), "20250104", "nowhere")
	require.Error(t, err)
}
