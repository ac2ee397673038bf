package analyzing

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/movement-insights-api/internal/config"
	"github.com/vfg2006/movement-insights-api/internal/domain"
)

const financialNote = "Lucro principal usa custo por VENDA (costPrice × qtySold). Também expomos visão por COMPRA."

// SensitivityMultipliers são os fatores aplicados ao custo total na tabela de sensibilidade
var SensitivityMultipliers = []float64{0.9, 1.0, 1.1}

// ParseCostPrice aceita vírgula ou ponto decimal; vazio ou inválido vale zero
func ParseCostPrice(raw string) float64 {
	s := strings.TrimSpace(strings.Replace(raw, ",", ".", 1))
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

func margin(profit, revenue float64) float64 {
	if revenue > 0 {
		return profit / revenue
	}
	return 0
}

// BuildFinancial calcula receita, custo por venda e custo por compra sobre os registros do corte
func BuildFinancial(records []domain.Movement, unitCost float64, salesSumMode string) domain.Financial {
	months := map[string]*domain.FinancialMonth{}
	bucket := func(r domain.Movement) *domain.FinancialMonth {
		key := MonthLabel(r.Date.UTC())
		m, ok := months[key]
		if !ok {
			m = &domain.FinancialMonth{Month: key}
			months[key] = m
		}
		return m
	}

	var totals domain.FinancialTotals
	var sumUnit float64

	for _, r := range records {
		if r.Date == nil {
			continue
		}

		switch {
		case r.IsSale():
			qty := r.AbsQuantity()
			unit := 0.0
			if r.UnitValue != nil {
				unit = *r.UnitValue
			}
			if salesSumMode == config.SalesSumModeAbs && unit < 0 {
				unit = -unit
			}
			revenue := unit * qty

			m := bucket(r)
			m.QtySold += qty
			m.Revenue += revenue

			totals.QtySold += qty
			totals.Revenue += revenue
			sumUnit += unit
		case r.IsPurchase():
			qty := r.AbsQuantity()
			cost := unitCost * qty

			m := bucket(r)
			m.QtyBought += qty
			m.CostPurchaseBased += cost

			totals.QtyBought += qty
			totals.CostPurchaseBased += cost
		}
	}

	monthly := make([]domain.FinancialMonth, 0, len(months))
	for _, m := range months {
		m.Qty = m.QtySold
		m.CostSalesBased = unitCost * m.QtySold
		m.Profit = m.Revenue - m.CostSalesBased
		m.ProfitByPurchase = m.Revenue - m.CostPurchaseBased
		monthly = append(monthly, *m)
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })

	totals.CostSalesBased = unitCost * totals.QtySold
	totals.Profit = totals.Revenue - totals.CostSalesBased
	totals.ProfitByPurchase = totals.Revenue - totals.CostPurchaseBased
	totals.MarginPct = margin(totals.Profit, totals.Revenue)
	totals.MarginPctByPurchase = margin(totals.ProfitByPurchase, totals.Revenue)

	series := domain.FinancialSeries{
		Revenue:          make([]domain.SeriesPoint, 0, len(monthly)),
		Profit:           make([]domain.SeriesPoint, 0, len(monthly)),
		ProfitByPurchase: make([]domain.SeriesPoint, 0, len(monthly)),
	}
	for _, m := range monthly {
		series.Revenue = append(series.Revenue, domain.SeriesPoint{X: m.Month, Y: m.Revenue})
		series.Profit = append(series.Profit, domain.SeriesPoint{X: m.Month, Y: m.Profit})
		series.ProfitByPurchase = append(series.ProfitByPurchase, domain.SeriesPoint{X: m.Month, Y: m.ProfitByPurchase})
	}

	var avgUnit *float64
	if totals.QtySold > 0 {
		v := totals.Revenue / totals.QtySold
		avgUnit = &v
	}

	return domain.Financial{
		Totals:      totals,
		Monthly:     monthly,
		Sensitivity: BuildSensitivity(totals),
		Series:      series,
		Debug: domain.FinancialDebug{
			SalesSumModeUsed:     salesSumMode,
			Note:                 financialNote,
			AvgUnitPriceObserved: avgUnit,
			SumUnitPriceRaw:      sumUnit,
		},
	}
}

// BuildSensitivity recalcula lucro e margem com o custo total escalado, nas duas bases
func BuildSensitivity(totals domain.FinancialTotals) []domain.SensitivityRow {
	rows := make([]domain.SensitivityRow, 0, len(SensitivityMultipliers))
	for _, mult := range SensitivityMultipliers {
		costSales := totals.CostSalesBased * mult
		costPurchase := totals.CostPurchaseBased * mult

		rows = append(rows, domain.SensitivityRow{
			CostMultiplier: mult,
			SalesBased: domain.CostOutcome{
				TotalCost:   costSales,
				TotalProfit: totals.Revenue - costSales,
				MarginPct:   margin(totals.Revenue-costSales, totals.Revenue),
			},
			PurchaseBased: domain.CostOutcome{
				TotalCost:   costPurchase,
				TotalProfit: totals.Revenue - costPurchase,
				MarginPct:   margin(totals.Revenue-costPurchase, totals.Revenue),
			},
		})
	}
	return rows
}
