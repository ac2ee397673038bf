package analyzing

import (
	"strconv"

	"github.com/vfg2006/movement-insights-api/internal/domain"
	"github.com/vfg2006/movement-insights-api/pkg/utils"
)

var monthLabelsPtBR = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// MonthlyAverage é a média simples dos totais mensais, zero quando não há meses
func MonthlyAverage(monthly []domain.PeriodTotal) float64 {
	if len(monthly) == 0 {
		return 0
	}
	var sum float64
	for _, m := range monthly {
		sum += m.TotalAbs
	}
	return sum / float64(len(monthly))
}

func seasonalIndex(value, average float64) *float64 {
	if average <= 0 {
		return nil
	}
	idx := utils.RoundTo(value/average, 3)
	return &idx
}

// ComputeSeasonality devolve a série mês a mês e o perfil Jan..Dez a partir das vendas mensais
func ComputeSeasonality(monthlySales []domain.PeriodTotal) ([]domain.SeasonalityPoint, []domain.SeasonalityProfileEntry) {
	average := MonthlyAverage(monthlySales)

	series := make([]domain.SeasonalityPoint, 0, len(monthlySales))
	var sums [12]float64
	var counts [12]int

	for _, m := range monthlySales {
		series = append(series, domain.SeasonalityPoint{
			Period: m.Period,
			Sales:  m.TotalAbs,
			Index:  seasonalIndex(m.TotalAbs, average),
		})

		if len(m.Period) < 7 {
			continue
		}
		mm, err := strconv.Atoi(m.Period[5:7])
		if err != nil || mm < 1 || mm > 12 {
			continue
		}
		sums[mm-1] += m.TotalAbs
		counts[mm-1]++
	}

	profile := make([]domain.SeasonalityProfileEntry, 0, 12)
	for i := range monthLabelsPtBR {
		var avgMonth float64
		if counts[i] > 0 {
			avgMonth = sums[i] / float64(counts[i])
		}
		profile = append(profile, domain.SeasonalityProfileEntry{
			MonthNumber:    i + 1,
			Month:          monthLabelsPtBR[i],
			Index:          seasonalIndex(avgMonth, average),
			AverageMonthly: utils.RoundTo(avgMonth, 2),
		})
	}

	return series, profile
}
