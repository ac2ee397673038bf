package domain

import (
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// CellKind identifica o tipo de conteúdo bruto de uma célula
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
	CellRichText
)

// Cell é o conteúdo bruto de uma célula, vindo de planilha ou de dados colados
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Time   time.Time
	Runs   []string
}

func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

func NumberCell(n float64) Cell { return Cell{Kind: CellNumber, Number: n} }

func DateCell(t time.Time) Cell { return Cell{Kind: CellDate, Time: t} }

// RichTextCell guarda os trechos de um texto formatado; o valor é a concatenação deles
func RichTextCell(runs ...string) Cell { return Cell{Kind: CellRichText, Runs: runs} }

// CellFromAny converte um valor decodificado de JSON em célula
func CellFromAny(v any) Cell {
	switch val := v.(type) {
	case nil:
		return EmptyCell()
	case string:
		if val == "" {
			return EmptyCell()
		}
		return TextCell(val)
	case float64:
		return NumberCell(val)
	case float32:
		return NumberCell(float64(val))
	case int:
		return NumberCell(float64(val))
	case int64:
		return NumberCell(float64(val))
	case bool:
		return TextCell(strconv.FormatBool(val))
	case time.Time:
		return DateCell(val)
	default:
		s, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(val)
		if err != nil {
			return EmptyCell()
		}
		return TextCell(s)
	}
}

// Resolve reduz a célula a um escalar canônico, uma única vez, antes de qualquer parse
func (c Cell) Resolve() Scalar {
	switch c.Kind {
	case CellText:
		return Scalar{Kind: ScalarText, Text: c.Text}
	case CellNumber:
		return Scalar{Kind: ScalarNumber, Number: c.Number}
	case CellDate:
		return Scalar{Kind: ScalarDate, Time: c.Time}
	case CellRichText:
		text := strings.Join(c.Runs, "")
		if text == "" {
			return Scalar{}
		}
		return Scalar{Kind: ScalarText, Text: text}
	default:
		return Scalar{}
	}
}

// ScalarKind identifica o tipo de um escalar resolvido
type ScalarKind int

const (
	ScalarNull ScalarKind = iota
	ScalarText
	ScalarNumber
	ScalarDate
)

// Scalar é o valor canônico de uma célula
type Scalar struct {
	Kind   ScalarKind
	Text   string
	Number float64
	Time   time.Time
}

func (s Scalar) IsNull() bool { return s.Kind == ScalarNull }

// String devolve a representação textual usada para normalização de cabeçalho
func (s Scalar) String() string {
	switch s.Kind {
	case ScalarText:
		return s.Text
	case ScalarNumber:
		return strconv.FormatFloat(s.Number, 'f', -1, 64)
	case ScalarDate:
		return s.Time.Format(time.RFC3339)
	default:
		return ""
	}
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case ScalarText:
		return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(s.Text)
	case ScalarNumber:
		return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(s.Number)
	case ScalarDate:
		return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(s.Time.UTC().Format(time.RFC3339))
	default:
		return []byte("null"), nil
	}
}

// Table é uma entrada tabular: cabeçalho e linhas de células alinhadas a ele
type Table struct {
	Header []string
	Rows   [][]Cell
}
