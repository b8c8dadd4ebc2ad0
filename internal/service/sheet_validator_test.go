package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/paddock-edge/internal/models"
)

func TestValidateDayCleanSheets(t *testing.T) {
	v := NewSheetValidator()

	warnings := v.ValidateDay(&models.RaceDay{
		Date:  "20250104",
		Track: "서울",
		Entries: models.Table{
			{"rcNo": "1", "hrName": "번개"},
			{"rc_no": "2", "hr_name": "질주"},
		},
		Results: models.Table{
			{"rcNo": "1", "hrName": "번개", "ranking": "1"},
		},
	})

	assert.Empty(t, warnings)
}

func TestValidateDayReportsProblems(t *testing.T) {
	tests := []struct {
		name string
		day  *models.RaceDay
		want string
	}{
		{
			name: "bad date format",
			day:  &models.RaceDay{Date: "2025-01-04"},
			want: `date "2025-01-04" is not YYYYMMDD`,
		},
		{
			name: "missing date",
			day:  &models.RaceDay{},
			want: "race day has no date",
		},
		{
			name: "entry without horse name",
			day: &models.RaceDay{
				Date:    "20250104",
				Entries: models.Table{{"rcNo": "1", "hrName": ""}},
			},
			want: "1 entry rows have no horse name",
		},
		{
			name: "entry without race number",
			day: &models.RaceDay{
				Date:    "20250104",
				Entries: models.Table{{"hrName": "번개"}},
			},
			want: "1 entry rows have no race number",
		},
		{
			name: "result without finishing order",
			day: &models.RaceDay{
				Date:    "20250104",
				Results: models.Table{{"hrName": "번개"}},
			},
			want: "1 result rows have no finishing order",
		},
	}

	v := NewSheetValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, v.ValidateDay(tt.day), tt.want)
		})
	}
}
