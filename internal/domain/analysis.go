package domain

// PeriodTotal é o total absoluto de quantidade em um período
type PeriodTotal struct {
	Period   string  `json:"periodo"`
	TotalAbs float64 `json:"total_abs"`
}

// TypeSummary resume um tipo de movimentação na janela de corte
type TypeSummary struct {
	Type     string  `json:"tipo_mov"`
	TotalAbs float64 `json:"quantidade_total_abs"`
	Rows     int     `json:"linhas"`
}

// MonthlyPivotRow é uma linha do pivô mensal por tipo de movimentação
type MonthlyPivotRow struct {
	Month            string  `json:"mes"`
	Sale             float64 `json:"VENDA"`
	Purchase         float64 `json:"COMPRA"`
	AdjustmentIn     float64 `json:"AJUSTE+"`
	AdjustmentOut    float64 `json:"AJUSTE-"`
	ReturnToCompany  float64 `json:"DEVOLUCAO_PARA_EMPRESA"`
	ReturnToSupplier float64 `json:"DEVOLUCAO_PARA_FORNECEDOR"`
	TotalAbs         float64 `json:"TOTAL_ABS"`
}

// SeasonalityPoint é o índice de sazonalidade de um mês observado
type SeasonalityPoint struct {
	Period string   `json:"periodo"`
	Sales  float64  `json:"vendas"`
	Index  *float64 `json:"indice"`
}

// SeasonalityProfileEntry agrega um mês do calendário sobre todos os anos observados
type SeasonalityProfileEntry struct {
	MonthNumber    int      `json:"mesNum"`
	Month          string   `json:"mes"`
	Index          *float64 `json:"indice"`
	AverageMonthly float64  `json:"mediaVendasMes"`
}

type Alerts struct {
	SalesWithoutDate  int `json:"vendasSemData"`
	SalesZeroQuantity int `json:"vendasQtyZero"`
}

type CutoffInfo struct {
	MinDate   string  `json:"minDate"`
	FirstDate *string `json:"firstDate"`
	LastDate  *string `json:"lastDate"`
}

type FinancialTotals struct {
	QtySold             float64 `json:"qtySold"`
	QtyBought           float64 `json:"qtyBought"`
	Revenue             float64 `json:"revenue"`
	CostSalesBased      float64 `json:"costSalesBased"`
	CostPurchaseBased   float64 `json:"costPurchaseBased"`
	Profit              float64 `json:"profit"`
	ProfitByPurchase    float64 `json:"profitByPurchase"`
	MarginPct           float64 `json:"marginPct"`
	MarginPctByPurchase float64 `json:"marginPctByPurchase"`
}

// FinancialMonth é a visão financeira de um mês com venda ou compra
type FinancialMonth struct {
	Month             string  `json:"month"`
	Qty               float64 `json:"qty"`
	QtySold           float64 `json:"qtySold"`
	QtyBought         float64 `json:"qtyBought"`
	Revenue           float64 `json:"revenue"`
	CostSalesBased    float64 `json:"costSalesBased"`
	CostPurchaseBased float64 `json:"costPurchaseBased"`
	Profit            float64 `json:"profit"`
	ProfitByPurchase  float64 `json:"profitByPurchase"`
}

type CostOutcome struct {
	TotalCost   float64 `json:"totalCost"`
	TotalProfit float64 `json:"totalProfit"`
	MarginPct   float64 `json:"marginPct"`
}

type SensitivityRow struct {
	CostMultiplier float64     `json:"costMultiplier"`
	SalesBased     CostOutcome `json:"salesBased"`
	PurchaseBased  CostOutcome `json:"purchaseBased"`
}

type SeriesPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

type FinancialSeries struct {
	Revenue          []SeriesPoint `json:"ganhoXtempo"`
	Profit           []SeriesPoint `json:"lucroXtempo"`
	ProfitByPurchase []SeriesPoint `json:"lucroCompraXtempo"`
}

type FinancialDebug struct {
	SalesSumModeUsed     string   `json:"salesSumModeUsed"`
	Note                 string   `json:"note"`
	AvgUnitPriceObserved *float64 `json:"avgUnitPriceObserved"`
	SumUnitPriceRaw      float64  `json:"sumUnitPriceRaw"`
}

type Financial struct {
	Totals      FinancialTotals  `json:"totals"`
	Monthly     []FinancialMonth `json:"monthly"`
	Sensitivity []SensitivityRow `json:"sensitivity"`
	Series      FinancialSeries  `json:"series"`
	Debug       FinancialDebug   `json:"debug"`
}

// AnalysisResult é o documento de resposta de uma análise
type AnalysisResult struct {
	ProductName        string                    `json:"productName"`
	CostPrice          float64                   `json:"costPrice"`
	Columns            map[string]string         `json:"columns"`
	SummaryByType      []TypeSummary             `json:"resumoPorTipo"`
	MonthlyPivot       []MonthlyPivotRow         `json:"monthlyPivot"`
	MonthlySales       []PeriodTotal             `json:"vendasMensais"`
	QuarterlySales     []PeriodTotal             `json:"vendasTrimestrais"`
	SemiannualSales    []PeriodTotal             `json:"vendasSemestrais"`
	AnnualSales        []PeriodTotal             `json:"vendasAnuais"`
	Seasonality        []SeasonalityPoint        `json:"seasonality"`
	SeasonalityProfile []SeasonalityProfileEntry `json:"seasonalityProfile"`
	Alerts             Alerts                    `json:"alerts"`
	CutoffInfo         CutoffInfo                `json:"cutoffInfo"`
	Sample             []Movement                `json:"sample"`
	Financial          *Financial                `json:"financial,omitempty"`
}
