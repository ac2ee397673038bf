package analyzing

import (
	"context"
	"io"
	"time"

	"github.com/vfg2006/movement-insights-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/analyzing.go -package=mocks

// Analyzer define a interface de análise de movimentações
type Analyzer interface {
	// AnalyzeWorkbook analisa a primeira aba de um arquivo xlsx
	AnalyzeWorkbook(ctx context.Context, r io.Reader, opts Options) (*domain.AnalysisResult, error)

	// AnalyzeRows analisa linhas já decodificadas (objetos chave/valor)
	AnalyzeRows(ctx context.Context, rows []map[string]any, opts Options) (*domain.AnalysisResult, error)

	// AnalyzeText analisa texto tabular colado (CSV/TSV)
	AnalyzeText(ctx context.Context, r io.Reader, opts Options) (*domain.AnalysisResult, error)
}

// WorkbookReader lê a primeira aba de uma planilha como tabela
type WorkbookReader interface {
	ReadFirstSheet(ctx context.Context, r io.Reader) (*domain.Table, error)
}

// TextReader lê texto tabular colado como tabela
type TextReader interface {
	ReadText(ctx context.Context, r io.Reader) (*domain.Table, error)
}

// Recorder recebe as medições de cada análise
type Recorder interface {
	ObserveAnalysis(source string, rows int, elapsed time.Duration, err error)
}
