package analyzing

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/movement-insights-api/internal/config"
	"github.com/vfg2006/movement-insights-api/internal/domain"
	"github.com/vfg2006/movement-insights-api/pkg/log"
	"github.com/vfg2006/movement-insights-api/pkg/utils"
)

const (
	// MinDate é a data de corte: só entram nas agregações registros a partir dela
	MinDate    = "2022-01-01"
	SampleSize = 50

	SourceWorkbook = "xlsx"
	SourceRows     = "json"
	SourceText     = "text"
)

var cutoff = mustParseDate(MinDate)

func mustParseDate(s string) time.Time {
	t, err := utils.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return *t
}

// Options são os parâmetros de uma análise
type Options struct {
	ProductName string
	// CostPrice ausente desliga o bloco financeiro
	CostPrice *string
}

// CostOption devolve um ponteiro para o custo informado
func CostOption(raw string) *string {
	return &raw
}

var _ Analyzer = (*Service)(nil)

// Service implementa Analyzer
type Service struct {
	cfg      *config.AnalysisConfig
	workbook WorkbookReader
	text     TextReader
	recorder Recorder
}

// NewService cria uma nova instância do serviço de análise
func NewService(cfg *config.AnalysisConfig, workbook WorkbookReader, text TextReader) *Service {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}
	return &Service{
		cfg:      cfg,
		workbook: workbook,
		text:     text,
	}
}

// WithRecorder habilita o registro de métricas das análises
func (s *Service) WithRecorder(recorder Recorder) *Service {
	s.recorder = recorder
	return s
}

func (s *Service) AnalyzeWorkbook(ctx context.Context, r io.Reader, opts Options) (*domain.AnalysisResult, error) {
	start := time.Now()

	table, err := s.workbook.ReadFirstSheet(ctx, r)
	if err != nil {
		err = workbookError(err)
		s.observe(ctx, SourceWorkbook, 0, start, err)
		return nil, err
	}

	result, err := s.analyze(ctx, table, opts)
	s.observe(ctx, SourceWorkbook, len(table.Rows), start, err)
	return result, err
}

func (s *Service) AnalyzeRows(ctx context.Context, rows []map[string]any, opts Options) (*domain.AnalysisResult, error) {
	start := time.Now()

	if len(rows) == 0 {
		s.observe(ctx, SourceRows, 0, start, ErrNoRows)
		return nil, ErrNoRows
	}

	table := rowsToTable(rows)
	result, err := s.analyze(ctx, table, opts)
	s.observe(ctx, SourceRows, len(table.Rows), start, err)
	return result, err
}

func (s *Service) AnalyzeText(ctx context.Context, r io.Reader, opts Options) (*domain.AnalysisResult, error) {
	start := time.Now()

	table, err := s.text.ReadText(ctx, r)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyText) {
			err = ErrNoRows
		} else {
			err = errors.Wrap(ErrInvalidText, err.Error())
		}
		s.observe(ctx, SourceText, 0, start, err)
		return nil, err
	}

	if len(table.Rows) == 0 {
		s.observe(ctx, SourceText, 0, start, ErrNoRows)
		return nil, ErrNoRows
	}

	result, err := s.analyze(ctx, table, opts)
	s.observe(ctx, SourceText, len(table.Rows), start, err)
	return result, err
}

func workbookError(err error) error {
	if errors.Is(err, domain.ErrNoSheet) {
		return ErrEmptySheet
	}
	return errors.Wrap(ErrInvalidWorkbook, err.Error())
}

// rowsToTable usa as chaves do primeiro objeto como cabeçalho; chaves que só aparecem depois são ignoradas
func rowsToTable(rows []map[string]any) *domain.Table {
	header := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		header = append(header, k)
	}
	sort.Strings(header)

	table := &domain.Table{Header: header, Rows: make([][]domain.Cell, 0, len(rows))}
	for _, row := range rows {
		cells := make([]domain.Cell, len(header))
		for i, key := range header {
			cells[i] = domain.CellFromAny(row[key])
		}
		table.Rows = append(table.Rows, cells)
	}

	return table
}

func (s *Service) analyze(ctx context.Context, table *domain.Table, opts Options) (*domain.AnalysisResult, error) {
	logger := log.ForContext(ctx)

	classifier, err := NewClassifier(table.Header, s.cfg)
	if err != nil {
		logger.WithError(err).Warn("Cabeçalho sem as colunas obrigatórias")
		return nil, err
	}

	records := classifier.ClassifyAll(table.Rows)
	cut := applyCutoff(records)

	logger.Debugf("Análise: %d linhas classificadas, %d no corte a partir de %s", len(records), len(cut), MinDate)

	sales := filterByType(cut, domain.MovementSale)
	monthlySales := AggregatePeriods(sales, MonthLabel)
	seasonality, profile := ComputeSeasonality(monthlySales)

	result := &domain.AnalysisResult{
		ProductName:        opts.ProductName,
		Columns:            s.cfg.ColumnMap.AsMap(),
		SummaryByType:      SummarizeByType(cut),
		MonthlyPivot:       BuildMonthlyPivot(cut),
		MonthlySales:       monthlySales,
		QuarterlySales:     AggregatePeriods(sales, QuarterLabel),
		SemiannualSales:    AggregatePeriods(sales, SemesterLabel),
		AnnualSales:        AggregatePeriods(sales, YearLabel),
		Seasonality:        seasonality,
		SeasonalityProfile: profile,
		Alerts:             buildAlerts(records, cut),
		CutoffInfo:         buildCutoffInfo(cut),
		Sample:             sampleOf(cut),
	}

	if opts.CostPrice != nil {
		unitCost := ParseCostPrice(*opts.CostPrice)
		financial := BuildFinancial(cut, unitCost, s.cfg.NormalizedSalesSumMode())
		result.CostPrice = unitCost
		result.Financial = &financial
	}

	return result, nil
}

// sampleOf devolve os primeiros registros do corte, nunca nulo
func sampleOf(cut []domain.Movement) []domain.Movement {
	n := len(cut)
	if n > SampleSize {
		n = SampleSize
	}
	return append(make([]domain.Movement, 0, n), cut[:n]...)
}

func applyCutoff(records []domain.Movement) []domain.Movement {
	cut := make([]domain.Movement, 0, len(records))
	for _, r := range records {
		if r.Date != nil && !r.Date.Before(cutoff) {
			cut = append(cut, r)
		}
	}
	return cut
}

func filterByType(records []domain.Movement, movementType string) []domain.Movement {
	out := make([]domain.Movement, 0, len(records))
	for _, r := range records {
		if r.Type == movementType {
			out = append(out, r)
		}
	}
	return out
}

// buildAlerts conta vendas sem data sobre todos os registros (no corte elas nunca aparecem)
// e vendas com quantidade nula ou zero sobre o corte
func buildAlerts(records, cut []domain.Movement) domain.Alerts {
	var alerts domain.Alerts
	for _, r := range records {
		if r.IsSale() && r.Date == nil {
			alerts.SalesWithoutDate++
		}
	}
	for _, r := range cut {
		if r.IsSale() && (r.Quantity == nil || *r.Quantity == 0) {
			alerts.SalesZeroQuantity++
		}
	}
	return alerts
}

func buildCutoffInfo(cut []domain.Movement) domain.CutoffInfo {
	info := domain.CutoffInfo{MinDate: MinDate}
	if len(cut) == 0 {
		return info
	}

	first, last := *cut[0].Date, *cut[0].Date
	for _, r := range cut[1:] {
		if r.Date.Before(first) {
			first = *r.Date
		}
		if r.Date.After(last) {
			last = *r.Date
		}
	}

	firstDate, lastDate := utils.FormatDate(first), utils.FormatDate(last)
	info.FirstDate = &firstDate
	info.LastDate = &lastDate

	return info
}

func (s *Service) observe(ctx context.Context, source string, rows int, start time.Time, err error) {
	elapsed := time.Since(start)

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"source":      source,
		"rows":        rows,
		"duration_ms": elapsed.Milliseconds(),
	})
	if err != nil {
		logger.WithError(err).Warn("Análise não concluída")
	} else {
		logger.Infof("Análise concluída (%s, %d linhas)", source, rows)
	}

	if s.recorder != nil {
		s.recorder.ObserveAnalysis(source, rows, elapsed, err)
	}
}
