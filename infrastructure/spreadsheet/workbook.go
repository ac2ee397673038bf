package spreadsheet

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/movement-insights-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// WorkbookReader lê arquivos xlsx com excelize
type WorkbookReader struct{}

func NewWorkbookReader() *WorkbookReader {
	return &WorkbookReader{}
}

// ReadFirstSheet devolve a primeira aba: a linha 1 é o cabeçalho, linhas totalmente vazias são ignoradas
func (w *WorkbookReader) ReadFirstSheet(ctx context.Context, r io.Reader) (*domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(domain.ErrUnreadableXLS, err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrNoSheet
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(domain.ErrUnreadableXLS, "erro ao ler a aba %s: %s", sheet, err.Error())
	}

	table := &domain.Table{}
	if len(rows) == 0 {
		return table, nil
	}

	for col, raw := range rows[0] {
		table.Header = append(table.Header, readCell(f, sheet, col, 0, raw).Resolve().String())
	}

	for i := 1; i < len(rows); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isBlankRow(rows[i]) {
			continue
		}

		cells := make([]domain.Cell, len(rows[i]))
		for col, raw := range rows[i] {
			cells[col] = readCell(f, sheet, col, i, raw)
		}
		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// readCell converte o valor bruto conforme o tipo gravado na célula
func readCell(f *excelize.File, sheet string, col, row int, raw string) domain.Cell {
	if raw == "" {
		return domain.EmptyCell()
	}

	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return domain.TextCell(raw)
	}

	cellType, err := f.GetCellType(sheet, name)
	if err != nil {
		return domain.TextCell(raw)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		runs, err := f.GetCellRichText(sheet, name)
		if err == nil && len(runs) > 1 {
			texts := make([]string, 0, len(runs))
			for _, run := range runs {
				texts = append(texts, run.Text)
			}
			return domain.RichTextCell(texts...)
		}
		return domain.TextCell(raw)
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return domain.DateCell(t.UTC())
		}
		if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
			return domain.DateCell(t)
		}
		return domain.TextCell(raw)
	case excelize.CellTypeBool:
		if raw == "1" {
			return domain.TextCell("TRUE")
		}
		return domain.TextCell("FALSE")
	case excelize.CellTypeFormula, excelize.CellTypeError:
		return domain.TextCell(raw)
	default:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return domain.NumberCell(n)
		}
		return domain.TextCell(raw)
	}
}
