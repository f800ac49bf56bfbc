package dashboarding

import (
	"time"

	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/pkg/utils"
)

// Ranges nomeados aceitos pelo dashboard
const (
	RangeThisMonth   = "this-month"
	RangeLast7d      = "last-7d"
	RangeLast30d     = "last-30d"
	RangeThisQuarter = "this-quarter"
	RangeThisYear    = "this-year"
)

// ResolvePeriod traduz um range nomeado em um intervalo concreto [start, end),
// ancorado em now. Ranges desconhecidos ou vazios caem em this-month; nunca
// retorna um intervalo inválido.
func ResolvePeriod(rangeName string, now time.Time) domain.Period {
	switch rangeName {
	case RangeLast7d:
		end := startOfNextDay(now)
		return domain.Period{Start: end.AddDate(0, 0, -7), End: end, Range: rangeName}

	case RangeLast30d:
		end := startOfNextDay(now)
		return domain.Period{Start: end.AddDate(0, 0, -30), End: end, Range: rangeName}

	case RangeThisQuarter:
		quarter := (int(now.Month()) - 1) / 3
		start := time.Date(now.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, now.Location())
		return domain.Period{Start: start, End: start.AddDate(0, 3, 0), Range: rangeName}

	case RangeThisYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return domain.Period{Start: start, End: start.AddDate(1, 0, 0), Range: rangeName}

	case RangeThisMonth:
		return thisMonth(now)

	default:
		return thisMonth(now)
	}
}

func thisMonth(now time.Time) domain.Period {
	start := utils.StartOfMonth(now)
	return domain.Period{Start: start, End: start.AddDate(0, 1, 0), Range: RangeThisMonth}
}

// startOfNextDay retorna a meia-noite do dia seguinte a t
func startOfNextDay(t time.Time) time.Time {
	return utils.StartOfDay(t).AddDate(0, 0, 1)
}
