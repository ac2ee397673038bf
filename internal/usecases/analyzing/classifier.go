package analyzing

import (
	"sort"
	"strconv"

	"github.com/schollz/closestmatch"
	"github.com/vfg2006/movement-insights-api/internal/config"
	"github.com/vfg2006/movement-insights-api/internal/domain"
)

// Campos lógicos obrigatórios, na ordem em que são verificados
const (
	FieldCod     = "cod"
	FieldDate    = "date"
	FieldOp      = "op"
	FieldNF      = "nf"
	FieldSerie   = "serie"
	FieldQty     = "qty"
	FieldValue   = "value"
	FieldParty   = "party"
	FieldHistory = "history"
)

var RequiredFields = []string{
	FieldCod, FieldDate, FieldOp, FieldNF, FieldSerie, FieldQty, FieldValue, FieldParty, FieldHistory,
}

// columnIndex liga cada campo lógico ao índice da coluna na entrada
type columnIndex map[string]int

// resolveColumns monta o índice de colunas comparando rótulos normalizados.
// Quando dois cabeçalhos normalizam para o mesmo rótulo, vale o mais à direita.
func resolveColumns(header []string, columns config.ColumnMap) (columnIndex, error) {
	byLabel := make(map[string]int, len(header))
	for i, h := range header {
		key := NormalizeText(h)
		if key == "" {
			continue
		}
		byLabel[key] = i
	}

	expected := columns.AsMap()
	index := make(columnIndex, len(RequiredFields))
	var missing []MissingColumn

	for _, field := range RequiredFields {
		label := NormalizeText(expected[field])
		if idx, ok := byLabel[label]; ok && label != "" {
			index[field] = idx
			continue
		}
		missing = append(missing, MissingColumn{
			Field:      field,
			Expected:   label,
			Suggestion: suggestHeader(byLabel, label),
		})
	}

	if len(missing) > 0 {
		return nil, &ColumnError{Missing: missing}
	}

	return index, nil
}

func suggestHeader(byLabel map[string]int, label string) string {
	if len(byLabel) == 0 || label == "" {
		return ""
	}
	keys := make([]string, 0, len(byLabel))
	for k := range byLabel {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return closestmatch.New(keys, []int{2, 3}).Closest(label)
}

// Classifier converte linhas brutas em movimentações classificadas
type Classifier struct {
	columns  columnIndex
	opCodes  []config.OpCode
	dayFirst bool
}

// NewClassifier resolve o cabeçalho uma única vez; falha para o lote inteiro se faltar coluna
func NewClassifier(header []string, cfg *config.AnalysisConfig) (*Classifier, error) {
	columns, err := resolveColumns(header, cfg.ColumnMap)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		columns:  columns,
		opCodes:  cfg.OpCodeTable(),
		dayFirst: cfg.DayFirst,
	}, nil
}

// Columns devolve o índice resolvido de cada campo lógico
func (c *Classifier) Columns() map[string]int {
	out := make(map[string]int, len(c.columns))
	for k, v := range c.columns {
		out[k] = v
	}
	return out
}

func (c *Classifier) Classify(row []domain.Cell) domain.Movement {
	read := func(field string) domain.Scalar {
		idx := c.columns[field]
		if idx < 0 || idx >= len(row) {
			return domain.Scalar{}
		}
		return row[idx].Resolve()
	}

	op := ParseNumber(read(FieldOp))

	return domain.Movement{
		Cod:           read(FieldCod),
		Date:          ParseDate(read(FieldDate), c.dayFirst),
		OpCode:        op,
		Type:          c.MovementType(op),
		InvoiceNumber: read(FieldNF),
		Series:        read(FieldSerie),
		Quantity:      ParseNumber(read(FieldQty)),
		UnitValue:     ParseNumber(read(FieldValue)),
		Counterparty:  read(FieldParty),
		History:       read(FieldHistory),
	}
}

func (c *Classifier) ClassifyAll(rows [][]domain.Cell) []domain.Movement {
	out := make([]domain.Movement, 0, len(rows))
	for _, row := range rows {
		out = append(out, c.Classify(row))
	}
	return out
}

// MovementType devolve a tag do código de operação; código sem tag vira OP_<código>
func (c *Classifier) MovementType(op *float64) string {
	if op == nil {
		return domain.MovementUnknown
	}
	for _, entry := range c.opCodes {
		if entry.Code == *op {
			return entry.Tag
		}
	}
	return "OP_" + strconv.FormatFloat(*op, 'f', -1, 64)
}
