package config

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/vfg2006/movement-insights-api/internal/domain"
)

const SalesSumModeAbs = "abs"

var ErrInvalidConfig = errors.New("configuração de análise inválida")

// ColumnMap liga cada campo lógico ao rótulo de cabeçalho esperado na planilha
type ColumnMap struct {
	Cod     string `mapstructure:"cod" json:"cod" yaml:"cod" validate:"required"`
	Date    string `mapstructure:"date" json:"date" yaml:"date" validate:"required"`
	Op      string `mapstructure:"op" json:"op" yaml:"op" validate:"required"`
	NF      string `mapstructure:"nf" json:"nf" yaml:"nf" validate:"required"`
	Serie   string `mapstructure:"serie" json:"serie" yaml:"serie" validate:"required"`
	Qty     string `mapstructure:"qty" json:"qty" yaml:"qty" validate:"required"`
	Value   string `mapstructure:"value" json:"value" yaml:"value" validate:"required"`
	Party   string `mapstructure:"party" json:"party" yaml:"party" validate:"required"`
	History string `mapstructure:"history" json:"history" yaml:"history" validate:"required"`
}

// AsMap devolve o mapeamento no formato ecoado no documento de resposta
func (c ColumnMap) AsMap() map[string]string {
	return map[string]string{
		"cod":     c.Cod,
		"date":    c.Date,
		"op":      c.Op,
		"nf":      c.NF,
		"serie":   c.Serie,
		"qty":     c.Qty,
		"value":   c.Value,
		"party":   c.Party,
		"history": c.History,
	}
}

// AnalysisConfig é a configuração de uma análise de movimentações
type AnalysisConfig struct {
	ColumnMap    ColumnMap          `mapstructure:"column_map" json:"column_map"`
	OpCodes      map[string]float64 `mapstructure:"op_codes" json:"op_codes" validate:"required,min=1"`
	DayFirst     bool               `mapstructure:"dayfirst" json:"dayfirst"`
	SalesSumMode string             `mapstructure:"sales_sum_mode" json:"sales_sum_mode"`
}

// Chaves de op_codes que recebem uma tag diferente do próprio nome
var opCodeKeyTags = map[string]string{
	"AJUSTE_MAIS":          domain.MovementAdjustmentIn,
	"AJUSTE_MENOS":         domain.MovementAdjustmentOut,
	"DEVOLUCAO_EMPRESA":    domain.MovementReturnToCompany,
	"DEVOLUCAO_FORNECEDOR": domain.MovementReturnToSupplier,
}

// OpCode associa um código numérico de operação a uma tag de movimentação
type OpCode struct {
	Tag  string
	Code float64
}

// OpCodeTable devolve a tabela de códigos ordenada: tags canônicas primeiro, extras em ordem alfabética.
// Quando dois tags compartilham o código, vence o primeiro da tabela.
func (c AnalysisConfig) OpCodeTable() []OpCode {
	byTag := make(map[string]float64, len(c.OpCodes))
	for key, code := range c.OpCodes {
		k := strings.ToUpper(strings.TrimSpace(key))
		tag, ok := opCodeKeyTags[k]
		if !ok {
			tag = k
		}
		byTag[tag] = code
	}

	table := make([]OpCode, 0, len(byTag))
	for _, tag := range domain.CanonicalMovementTypes {
		if code, ok := byTag[tag]; ok {
			table = append(table, OpCode{Tag: tag, Code: code})
			delete(byTag, tag)
		}
	}

	extras := make([]string, 0, len(byTag))
	for tag := range byTag {
		extras = append(extras, tag)
	}
	sort.Strings(extras)
	for _, tag := range extras {
		table = append(table, OpCode{Tag: tag, Code: byTag[tag]})
	}

	return table
}

// NormalizedSalesSumMode devolve o modo de soma em minúsculas, "abs" por padrão
func (c AnalysisConfig) NormalizedSalesSumMode() string {
	mode := strings.ToLower(strings.TrimSpace(c.SalesSumMode))
	if mode == "" {
		return SalesSumModeAbs
	}
	return mode
}

func (c AnalysisConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// DefaultAnalysisConfig é a configuração usada quando nenhum arquivo é informado
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		ColumnMap: ColumnMap{
			Cod:     "Código",
			Date:    "Data Atual.",
			Op:      "Operação",
			NF:      "N.F.",
			Serie:   "Série",
			Qty:     "Qtde.",
			Value:   "Valor",
			Party:   "Cliente/Fornecedor",
			History: "Histórico",
		},
		OpCodes: map[string]float64{
			"VENDA":                1,
			"COMPRA":               2,
			"AJUSTE_MAIS":          3,
			"AJUSTE_MENOS":         4,
			"DEVOLUCAO_EMPRESA":    5,
			"DEVOLUCAO_FORNECEDOR": 6,
		},
		DayFirst:     true,
		SalesSumMode: SalesSumModeAbs,
	}
}

// LoadAnalysisConfig lê o JSON de configuração de análise; caminho vazio devolve a configuração padrão
func LoadAnalysisConfig(path string) (*AnalysisConfig, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultAnalysisConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("dayfirst", true)
	v.SetDefault("sales_sum_mode", SalesSumModeAbs)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "erro ao ler configuração de análise %s", path)
	}

	cfg := &AnalysisConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração de análise")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
