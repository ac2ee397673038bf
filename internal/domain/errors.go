package domain

import "errors"

// Erros devolvidos pelos leitores de entrada
var (
	ErrNoSheet       = errors.New("arquivo sem planilhas")
	ErrUnreadableXLS = errors.New("não foi possível ler o arquivo xlsx")
	ErrEmptyText     = errors.New("texto sem cabeçalho")
)
