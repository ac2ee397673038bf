package domain

import "time"

// Tags de movimentação conhecidas
const (
	MovementSale             = "VENDA"
	MovementPurchase         = "COMPRA"
	MovementAdjustmentIn     = "AJUSTE+"
	MovementAdjustmentOut    = "AJUSTE-"
	MovementReturnToCompany  = "DEVOLUCAO_PARA_EMPRESA"
	MovementReturnToSupplier = "DEVOLUCAO_PARA_FORNECEDOR"
	MovementUnknown          = "DESCONHECIDO"
)

// CanonicalMovementTypes são as colunas fixas do pivô mensal e do resumo por tipo
var CanonicalMovementTypes = []string{
	MovementSale,
	MovementPurchase,
	MovementAdjustmentIn,
	MovementAdjustmentOut,
	MovementReturnToCompany,
	MovementReturnToSupplier,
}

// Movement é uma linha de entrada já classificada
type Movement struct {
	Cod           Scalar     `json:"cod"`
	Date          *time.Time `json:"data"`
	OpCode        *float64   `json:"op"`
	Type          string     `json:"tipo_mov"`
	InvoiceNumber Scalar     `json:"nf"`
	Series        Scalar     `json:"serie"`
	Quantity      *float64   `json:"qty"`
	UnitValue     *float64   `json:"valor"`
	Counterparty  Scalar     `json:"party"`
	History       Scalar     `json:"historico"`
}

// AbsQuantity é a quantidade sem sinal, com nulo valendo zero
func (m Movement) AbsQuantity() float64 {
	if m.Quantity == nil {
		return 0
	}
	if *m.Quantity < 0 {
		return -*m.Quantity
	}
	return *m.Quantity
}

func (m Movement) IsSale() bool { return m.Type == MovementSale }

func (m Movement) IsPurchase() bool { return m.Type == MovementPurchase }
