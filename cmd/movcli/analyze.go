package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/movement-insights-api/infrastructure/spreadsheet"
	"github.com/vfg2006/movement-insights-api/internal/config"
	"github.com/vfg2006/movement-insights-api/internal/domain"
	"github.com/vfg2006/movement-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/movement-insights-api/pkg/utils"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	analyzeProduct string
	analyzeCost    string
	analyzeFormat  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <arquivo>",
	Short: "Analisa um arquivo .xlsx, .json ou .csv/.txt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := config.LoadAnalysisConfig(cfgFile)
		if err != nil {
			return err
		}

		service := analyzing.NewService(rules, spreadsheet.NewWorkbookReader(), spreadsheet.NewTextReader())

		opts := analyzing.Options{ProductName: analyzeProduct}
		if cmd.Flags().Changed("cost") {
			opts.CostPrice = analyzing.CostOption(analyzeCost)
		}

		result, err := analyzeFile(cmd.Context(), service, args[0], opts)
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), result, analyzeFormat)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeProduct, "product", "", "nome do produto ecoado no resultado")
	analyzeCmd.Flags().StringVar(&analyzeCost, "cost", "", "custo unitário (aceita vírgula decimal); habilita o bloco financeiro")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "json", "formato de saída: json|yaml")
	rootCmd.AddCommand(analyzeCmd)
}

func analyzeFile(ctx context.Context, service analyzing.Analyzer, path string, opts analyzing.Options) (*domain.AnalysisResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return service.AnalyzeWorkbook(ctx, f, opts)
	case ".json":
		rows, err := decodeRows(f)
		if err != nil {
			return nil, err
		}
		return service.AnalyzeRows(ctx, rows, opts)
	case ".csv", ".tsv", ".txt":
		return service.AnalyzeText(ctx, f, opts)
	default:
		return nil, fmt.Errorf("extensão não suportada: %s (use .xlsx, .json, .csv ou .txt)", filepath.Ext(path))
	}
}

// decodeRows aceita um array de objetos ou {"rows": [...]}
func decodeRows(r io.Reader) ([]map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler JSON")
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err == nil {
		return rows, nil
	}

	var wrapped struct {
		Rows []map[string]any `json:"rows"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, errors.Wrap(err, "JSON inválido: esperado array de linhas ou {rows: [...]}")
	}
	return wrapped.Rows, nil
}

func writeOutput(w io.Writer, result *domain.AnalysisResult, format string) error {
	switch strings.ToLower(format) {
	case "", "json":
		_, err := fmt.Fprintln(w, utils.PrettyJson(result))
		return err
	case "yaml", "yml":
		// passa pelo JSON para manter os nomes de campo do documento
		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return err
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("formato inválido: %s (use json ou yaml)", format)
	}
}
