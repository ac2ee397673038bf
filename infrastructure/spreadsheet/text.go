package spreadsheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/vfg2006/movement-insights-api/internal/domain"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// separadores aceitos, em ordem de preferência no empate
var separators = []rune{';', '\t', ','}

// TextReader lê texto tabular colado de planilhas ou exportado como CSV
type TextReader struct{}

func NewTextReader() *TextReader {
	return &TextReader{}
}

// ReadText detecta o separador pela primeira linha não vazia; texto que não é UTF-8 é lido como Latin-1
func (t *TextReader) ReadText(ctx context.Context, r io.Reader) (*domain.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o texto")
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar texto Latin-1")
		}
		data = decoded
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	firstLine := ""
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			firstLine = line
			break
		}
	}
	if firstLine == "" {
		return nil, domain.ErrEmptyText
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffSeparator(firstLine)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar o texto")
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptyText
	}

	table := &domain.Table{}
	for _, h := range records[0] {
		table.Header = append(table.Header, strings.TrimSpace(h))
	}

	for _, record := range records[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isBlankRow(record) {
			continue
		}

		cells := make([]domain.Cell, len(record))
		for i, v := range record {
			v = strings.TrimSpace(v)
			if v == "" {
				cells[i] = domain.EmptyCell()
				continue
			}
			cells[i] = domain.TextCell(v)
		}
		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}

func sniffSeparator(line string) rune {
	best, bestCount := separators[0], 0
	for _, sep := range separators {
		if n := strings.Count(line, string(sep)); n > bestCount {
			best, bestCount = sep, n
		}
	}
	return best
}
