package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/movement-insights-api/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "analysis.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAnalysisConfig(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) string
		wantErr  error
		validate func(t *testing.T, cfg *AnalysisConfig)
	}{
		{
			name:  "caminho vazio usa o padrão",
			setup: func(t *testing.T) string { return "" },
			validate: func(t *testing.T, cfg *AnalysisConfig) {
				assert.Equal(t, DefaultAnalysisConfig(), cfg)
			},
		},
		{
			name:  "arquivo do repositório",
			setup: func(t *testing.T) string { return filepath.Join("..", "..", "configs", "analysis.json") },
			validate: func(t *testing.T, cfg *AnalysisConfig) {
				def := DefaultAnalysisConfig()
				assert.Equal(t, def.ColumnMap, cfg.ColumnMap)
				assert.Equal(t, def.OpCodeTable(), cfg.OpCodeTable())
				assert.True(t, cfg.DayFirst)
				assert.Equal(t, SalesSumModeAbs, cfg.SalesSumMode)
			},
		},
		{
			name: "aplica padrões de dayfirst e sales_sum_mode",
			setup: func(t *testing.T) string {
				return writeConfig(t, `{
					"column_map": {"cod": "Cod", "date": "Data", "op": "Op", "nf": "NF", "serie": "Serie",
						"qty": "Qtd", "value": "Valor", "party": "Cliente", "history": "Hist"},
					"op_codes": {"VENDA": 51, "TRANSFERENCIA": 9}
				}`)
			},
			validate: func(t *testing.T, cfg *AnalysisConfig) {
				assert.True(t, cfg.DayFirst)
				assert.Equal(t, SalesSumModeAbs, cfg.NormalizedSalesSumMode())
				assert.Equal(t, "Data", cfg.ColumnMap.Date)
				assert.Equal(t, []OpCode{
					{Tag: domain.MovementSale, Code: 51},
					{Tag: "TRANSFERENCIA", Code: 9},
				}, cfg.OpCodeTable())
			},
		},
		{
			name: "coluna obrigatória ausente",
			setup: func(t *testing.T) string {
				return writeConfig(t, `{"column_map": {"cod": "Cod"}, "op_codes": {"VENDA": 1}}`)
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "sem op_codes",
			setup: func(t *testing.T) string {
				return writeConfig(t, `{
					"column_map": {"cod": "Cod", "date": "Data", "op": "Op", "nf": "NF", "serie": "Serie",
						"qty": "Qtd", "value": "Valor", "party": "Cliente", "history": "Hist"},
					"op_codes": {}
				}`)
			},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAnalysisConfig(tt.setup(t))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadAnalysisConfig_FileNotFound(t *testing.T) {
	_, err := LoadAnalysisConfig(filepath.Join(t.TempDir(), "nao-existe.json"))

	assert.Error(t, err)
}

func TestOpCodeTable(t *testing.T) {
	cfg := AnalysisConfig{
		OpCodes: map[string]float64{
			"transferencia":        9,
			"DEVOLUCAO_FORNECEDOR": 6,
			"ajuste_mais":          3,
			"VENDA":                1,
			"BONIFICACAO":          8,
		},
	}

	assert.Equal(t, []OpCode{
		{Tag: domain.MovementSale, Code: 1},
		{Tag: domain.MovementAdjustmentIn, Code: 3},
		{Tag: domain.MovementReturnToSupplier, Code: 6},
		{Tag: "BONIFICACAO", Code: 8},
		{Tag: "TRANSFERENCIA", Code: 9},
	}, cfg.OpCodeTable())
}

func TestNormalizedSalesSumMode(t *testing.T) {
	assert.Equal(t, SalesSumModeAbs, AnalysisConfig{}.NormalizedSalesSumMode())
	assert.Equal(t, SalesSumModeAbs, AnalysisConfig{SalesSumMode: " ABS "}.NormalizedSalesSumMode())
	assert.Equal(t, "signed", AnalysisConfig{SalesSumMode: "Signed"}.NormalizedSalesSumMode())
}
