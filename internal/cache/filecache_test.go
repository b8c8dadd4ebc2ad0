package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/paddock-edge/internal/models"
)

func sampleDay() *models.RaceDay {
	return &models.RaceDay{
		Date:  "20250104",
		Track: "서울",
		Entries: models.Table{
			{"rcNo": "1", "hrNo": "3", "hrName": "번개", "wgHr": "480(+4)", "s1f_1": "13.2"},
			{"rcNo": "1", "hrNo": "5", "hrName": "질주", "s1f_1": "13.5", "g1f_1": "12.9"},
		},
		Results: models.Table{
			{"rcNo": "1", "hrName": "번개", "ord": "1", "qui_div": "12.3"},
		},
		Training: models.Table{
			{"hrName": "번개", "trGbn": "강"},
		},
	}
}

func TestDayCacheRoundTrip(t *testing.T) {
	c := New(t.TempDir())
	day := sampleDay()

	require.False(t, c.Has(day.Date, day.Track))
	require.NoError(t, c.Store(day))
	require.True(t, c.Has(day.Date, day.Track))

	loaded, err := c.Load(day.Date, day.Track)
	require.NoError(t, err)

	assert.ElementsMatch(t, day.Entries, loaded.Entries)
	assert.ElementsMatch(t, day.Results, loaded.Results)
	assert.ElementsMatch(t, day.Training, loaded.Training)
	// weights sheet was empty and must stay empty, not error
	assert.Empty(t, loaded.Weights)
}

func TestDayCacheRaggedRowsSurvive(t *testing.T) {
	// Rows with different column sets share one sheet; absent cells must not
	// come back as empty-string columns.
	c := New(t.TempDir())
	require.NoError(t, c.Store(sampleDay()))

	loaded, err := c.Load("20250104", "서울")
	require.NoError(t, err)
	require.Len(t, loaded.Entries, 2)

	_, hasG1F := loaded.Entries[0]["g1f_1"]
	assert.False(t, hasG1F)
	assert.Equal(t, "12.9", loaded.Entries[1]["g1f_1"])
}

func TestDayCacheMissIsNoData(t *testing.T) {
	c := New(t.TempDir())

	_, err := c.Load("20250104", "서울")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNoData))
}

func TestDayCacheRefusesEmptyDay(t *testing.T) {
	c := New(t.TempDir())

	err := c.Store(&models.RaceDay{Date: "20250104", Track: "서울"})
	require.Error(t, err)
	assert.False(t, c.Has("20250104", "서울"))
}
