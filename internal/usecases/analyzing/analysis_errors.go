package analyzing

import (
	"errors"
	"fmt"
	"strings"
)

// Erros específicos para o contexto de análise
var (
	// Erros de entrada
	ErrEmptySheet      = errors.New("planilha vazia")
	ErrNoRows          = errors.New("nenhuma linha recebida para análise")
	ErrMissingColumns  = errors.New("colunas ausentes no cabeçalho")
	ErrInvalidWorkbook = errors.New("arquivo xlsx inválido")
	ErrInvalidText     = errors.New("texto colado inválido")
)

// MissingColumn descreve um campo lógico que não foi encontrado no cabeçalho
type MissingColumn struct {
	Field      string `json:"field"`
	Expected   string `json:"expected"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ColumnError lista todos os campos obrigatórios sem coluna correspondente
type ColumnError struct {
	Missing []MissingColumn
}

func (e *ColumnError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		parts = append(parts, fmt.Sprintf("%s (%s)", m.Field, m.Expected))
	}
	return fmt.Sprintf("%s (normalizadas): %s", ErrMissingColumns.Error(), strings.Join(parts, ", "))
}

func (e *ColumnError) Unwrap() error {
	return ErrMissingColumns
}

// Fields devolve os nomes lógicos dos campos ausentes
func (e *ColumnError) Fields() []string {
	fields := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		fields = append(fields, m.Field)
	}
	return fields
}
