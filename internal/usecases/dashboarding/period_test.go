package dashboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriod(t *testing.T) {
	// Data de referência: 15 de agosto de 2025 às 14h30
	now := time.Date(2025, 8, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		rangeName     string
		now           time.Time
		expectedStart time.Time
		expectedEnd   time.Time
		expectedRange string
	}{
		{
			name:          "this-month cobre o mês civil corrente",
			rangeName:     RangeThisMonth,
			now:           now,
			expectedStart: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			expectedRange: RangeThisMonth,
		},
		{
			name:          "last-7d termina no início do dia seguinte",
			rangeName:     RangeLast7d,
			now:           now,
			expectedStart: time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC),
			expectedRange: RangeLast7d,
		},
		{
			name:          "last-30d inclui o dia corrente inteiro",
			rangeName:     RangeLast30d,
			now:           now,
			expectedStart: time.Date(2025, 7, 17, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC),
			expectedRange: RangeLast30d,
		},
		{
			name:          "this-quarter começa no primeiro mês do trimestre",
			rangeName:     RangeThisQuarter,
			now:           now,
			expectedStart: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			expectedRange: RangeThisQuarter,
		},
		{
			name:          "this-year cobre o ano civil corrente",
			rangeName:     RangeThisYear,
			now:           now,
			expectedStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedRange: RangeThisYear,
		},
		{
			name:          "range vazio cai em this-month",
			rangeName:     "",
			now:           now,
			expectedStart: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			expectedRange: RangeThisMonth,
		},
		{
			name:          "range desconhecido cai em this-month",
			rangeName:     "ultimo-milenio",
			now:           now,
			expectedStart: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			expectedRange: RangeThisMonth,
		},
		{
			name:          "last-30d atravessa a virada de mês sem estourar datas",
			rangeName:     RangeLast30d,
			now:           time.Date(2025, 8, 31, 23, 59, 0, 0, time.UTC),
			expectedStart: time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			expectedRange: RangeLast30d,
		},
		{
			name:          "this-quarter no primeiro mês do ano",
			rangeName:     RangeThisQuarter,
			now:           time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			expectedRange: RangeThisQuarter,
		},
		{
			name:          "this-month em dezembro termina em janeiro do ano seguinte",
			rangeName:     RangeThisMonth,
			now:           time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedRange: RangeThisMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := ResolvePeriod(tt.rangeName, tt.now)

			assert.Equal(t, tt.expectedStart, period.Start)
			assert.Equal(t, tt.expectedEnd, period.End)
			assert.Equal(t, tt.expectedRange, period.Range)
			assert.True(t, period.End.After(period.Start), "o fim do período deve ser posterior ao início")
		})
	}
}
