package analyzing

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/movement-insights-api/internal/domain"
)

// PeriodLabel transforma uma data em rótulo de período ordenável como texto
type PeriodLabel func(t time.Time) string

func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

func QuarterLabel(t time.Time) string {
	return fmt.Sprintf("%04d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
}

func SemesterLabel(t time.Time) string {
	if t.Month() <= time.June {
		return fmt.Sprintf("%04d-H1", t.Year())
	}
	return fmt.Sprintf("%04d-H2", t.Year())
}

func YearLabel(t time.Time) string {
	return fmt.Sprintf("%04d", t.Year())
}

// AggregatePeriods soma |qty| por período; registros sem data ficam de fora
func AggregatePeriods(records []domain.Movement, label PeriodLabel) []domain.PeriodTotal {
	totals := map[string]float64{}
	for _, r := range records {
		if r.Date == nil {
			continue
		}
		totals[label(r.Date.UTC())] += r.AbsQuantity()
	}

	out := make([]domain.PeriodTotal, 0, len(totals))
	for period, total := range totals {
		out = append(out, domain.PeriodTotal{Period: period, TotalAbs: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })

	return out
}

// BuildMonthlyPivot monta uma linha por mês com as seis colunas canônicas e o total absoluto delas.
// Um mês só com tipos fora das colunas canônicas aparece zerado.
func BuildMonthlyPivot(records []domain.Movement) []domain.MonthlyPivotRow {
	rows := map[string]*domain.MonthlyPivotRow{}
	for _, r := range records {
		if r.Date == nil {
			continue
		}
		month := MonthLabel(r.Date.UTC())
		row, ok := rows[month]
		if !ok {
			row = &domain.MonthlyPivotRow{Month: month}
			rows[month] = row
		}

		qty := r.AbsQuantity()
		switch r.Type {
		case domain.MovementSale:
			row.Sale += qty
		case domain.MovementPurchase:
			row.Purchase += qty
		case domain.MovementAdjustmentIn:
			row.AdjustmentIn += qty
		case domain.MovementAdjustmentOut:
			row.AdjustmentOut += qty
		case domain.MovementReturnToCompany:
			row.ReturnToCompany += qty
		case domain.MovementReturnToSupplier:
			row.ReturnToSupplier += qty
		default:
			continue
		}
		row.TotalAbs += qty
	}

	out := make([]domain.MonthlyPivotRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })

	return out
}

// SummarizeByType devolve os seis tipos canônicos (mesmo zerados) seguidos dos demais
// na ordem em que aparecem
func SummarizeByType(records []domain.Movement) []domain.TypeSummary {
	summaries := make([]domain.TypeSummary, 0, len(domain.CanonicalMovementTypes))
	position := map[string]int{}

	for _, t := range domain.CanonicalMovementTypes {
		position[t] = len(summaries)
		summaries = append(summaries, domain.TypeSummary{Type: t})
	}

	for _, r := range records {
		idx, ok := position[r.Type]
		if !ok {
			idx = len(summaries)
			position[r.Type] = idx
			summaries = append(summaries, domain.TypeSummary{Type: r.Type})
		}
		summaries[idx].TotalAbs += r.AbsQuantity()
		summaries[idx].Rows++
	}

	return summaries
}
