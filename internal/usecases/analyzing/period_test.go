package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/movement-insights-api/internal/domain"
)

func movement(movementType string, date string, qty float64) domain.Movement {
	m := domain.Movement{Type: movementType, Quantity: &qty}
	if date != "" {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			panic(err)
		}
		m.Date = &t
	}
	return m
}

func TestPeriodLabels(t *testing.T) {
	tests := []struct {
		date                           string
		month, quarter, semester, year string
	}{
		{"2022-01-10", "2022-01", "2022-Q1", "2022-H1", "2022"},
		{"2022-06-30", "2022-06", "2022-Q2", "2022-H1", "2022"},
		{"2022-07-01", "2022-07", "2022-Q3", "2022-H2", "2022"},
		{"2023-12-31", "2023-12", "2023-Q4", "2023-H2", "2023"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := time.Parse("2006-01-02", tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.month, MonthLabel(d))
			assert.Equal(t, tt.quarter, QuarterLabel(d))
			assert.Equal(t, tt.semester, SemesterLabel(d))
			assert.Equal(t, tt.year, YearLabel(d))
		})
	}
}

func TestAggregatePeriods(t *testing.T) {
	records := []domain.Movement{
		movement(domain.MovementSale, "2022-02-05", 1),
		movement(domain.MovementSale, "2022-01-10", 3),
		movement(domain.MovementSale, "2022-01-20", -2),
		movement(domain.MovementSale, "", 100),
		{Type: domain.MovementSale, Date: movement("", "2022-03-01", 0).Date},
	}

	got := AggregatePeriods(records, MonthLabel)
	assert.Equal(t, []domain.PeriodTotal{
		{Period: "2022-01", TotalAbs: 5},
		{Period: "2022-02", TotalAbs: 1},
		{Period: "2022-03", TotalAbs: 0},
	}, got)
}

func TestAggregatePeriods_RebucketingIsLossless(t *testing.T) {
	records := []domain.Movement{
		movement(domain.MovementSale, "2022-01-10", 3),
		movement(domain.MovementSale, "2022-04-10", -7),
		movement(domain.MovementSale, "2022-08-10", 2.5),
		movement(domain.MovementSale, "2023-11-10", 4),
	}

	sum := func(totals []domain.PeriodTotal) float64 {
		var s float64
		for _, p := range totals {
			s += p.TotalAbs
		}
		return s
	}

	monthly := sum(AggregatePeriods(records, MonthLabel))
	assert.Equal(t, 16.5, monthly)
	assert.Equal(t, monthly, sum(AggregatePeriods(records, QuarterLabel)))
	assert.Equal(t, monthly, sum(AggregatePeriods(records, SemesterLabel)))
	assert.Equal(t, monthly, sum(AggregatePeriods(records, YearLabel)))
}

func TestBuildMonthlyPivot(t *testing.T) {
	records := []domain.Movement{
		movement(domain.MovementSale, "2022-01-10", 3),
		movement(domain.MovementPurchase, "2022-01-11", 10),
		movement(domain.MovementAdjustmentOut, "2022-01-12", -1),
		movement(domain.MovementReturnToSupplier, "2022-02-01", 2),
		movement("OP_9", "2022-02-02", 50),
		movement("OP_9", "2022-03-02", 5),
	}

	got := BuildMonthlyPivot(records)
	require.Len(t, got, 3)

	assert.Equal(t, domain.MonthlyPivotRow{Month: "2022-01", Sale: 3, Purchase: 10, AdjustmentOut: 1, TotalAbs: 14}, got[0])
	assert.Equal(t, domain.MonthlyPivotRow{Month: "2022-02", ReturnToSupplier: 2, TotalAbs: 2}, got[1])
	assert.Equal(t, domain.MonthlyPivotRow{Month: "2022-03"}, got[2])
}

func TestSummarizeByType(t *testing.T) {
	records := []domain.Movement{
		movement("OP_9", "2022-01-01", 1),
		movement(domain.MovementSale, "2022-01-10", 3),
		movement(domain.MovementSale, "2022-01-11", -2),
		movement(domain.MovementUnknown, "2022-01-12", 4),
		movement("OP_9", "2022-01-13", 1),
	}

	got := SummarizeByType(records)
	require.Len(t, got, 8)

	for i, tag := range domain.CanonicalMovementTypes {
		assert.Equal(t, tag, got[i].Type)
	}
	assert.Equal(t, domain.TypeSummary{Type: domain.MovementSale, TotalAbs: 5, Rows: 2}, got[0])
	assert.Equal(t, domain.TypeSummary{Type: domain.MovementPurchase}, got[1])
	assert.Equal(t, domain.TypeSummary{Type: "OP_9", TotalAbs: 2, Rows: 2}, got[6])
	assert.Equal(t, domain.TypeSummary{Type: domain.MovementUnknown, TotalAbs: 4, Rows: 1}, got[7])
}

func TestPivotTotalsMatchTypeSummary(t *testing.T) {
	records := []domain.Movement{
		movement(domain.MovementSale, "2022-01-10", 3),
		movement(domain.MovementPurchase, "2022-02-11", -10),
		movement(domain.MovementAdjustmentIn, "2022-02-12", 1),
		movement(domain.MovementReturnToCompany, "2022-03-01", 2),
		movement(domain.MovementSale, "2022-03-20", 6),
	}

	pivot := BuildMonthlyPivot(records)
	summary := SummarizeByType(records)

	var pivotSales, pivotPurchases, pivotTotal float64
	for _, row := range pivot {
		pivotSales += row.Sale
		pivotPurchases += row.Purchase
		pivotTotal += row.TotalAbs
	}

	var summaryTotal float64
	for _, s := range summary {
		summaryTotal += s.TotalAbs
	}

	assert.Equal(t, summary[0].TotalAbs, pivotSales)
	assert.Equal(t, summary[1].TotalAbs, pivotPurchases)
	assert.Equal(t, summaryTotal, pivotTotal)
}
