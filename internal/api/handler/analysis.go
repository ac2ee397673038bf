package handler

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/movement-insights-api/internal/domain"
	"github.com/vfg2006/movement-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/movement-insights-api/pkg/apiErrors"
	"github.com/vfg2006/movement-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	uploadField     = "file"
	defaultCost     = "0"
	allowedFileExt  = ".xlsx"
	multipartMemory = 8 << 20
)

type analyzeRowsRequest struct {
	Rows        []map[string]any `json:"rows"`
	ProductName string           `json:"productName"`
	CostPrice   any              `json:"costPrice"`
}

// AnalyzeUpload recebe um .xlsx em multipart (campo "file") e devolve a análise
func AnalyzeUpload(service analyzing.Analyzer, maxUploadBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			if isTooLarge(err) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo acima do limite de upload", map[string]int64{"maxBytes": maxUploadBytes})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Envie o arquivo como multipart/form-data", nil)
			return
		}

		file, header, err := r.FormFile(uploadField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, `Envie um arquivo .xlsx no campo "file"`, nil)
			return
		}
		defer file.Close()

		if strings.ToLower(filepath.Ext(header.Filename)) != allowedFileExt {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Apenas arquivos .xlsx são aceitos", map[string]string{"filename": header.Filename})
			return
		}

		if header.Size > maxUploadBytes {
			apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo acima do limite de upload", map[string]int64{"maxBytes": maxUploadBytes})
			return
		}

		opts := analyzing.Options{
			ProductName: strings.TrimSpace(r.FormValue("productName")),
			CostPrice:   analyzing.CostOption(costOrDefault(r.FormValue("costPrice"))),
		}

		logger.WithFields(log.Fields{
			"analysis_file": header.Filename,
			"analysis_size": header.Size,
		}).Info("analyze: planilha recebida")

		result, err := service.AnalyzeWorkbook(r.Context(), file, opts)
		if err != nil {
			writeAnalysisError(w, logger, err)
			return
		}

		writeResult(w, logger, result)
	})
}

// AnalyzeRows recebe {rows, productName, costPrice} em JSON
func AnalyzeRows(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		data, err := io.ReadAll(r.Body)
		if err != nil {
			if isTooLarge(err) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Corpo acima do limite", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o corpo", nil)
			return
		}

		var req analyzeRowsRequest
		if err := json.Unmarshal(data, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "JSON inválido: esperado {rows: [...]}", nil)
			return
		}

		if len(req.Rows) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "rows vazio", nil)
			return
		}

		opts := analyzing.Options{
			ProductName: strings.TrimSpace(req.ProductName),
			CostPrice:   analyzing.CostOption(costFromJSON(req.CostPrice)),
		}

		result, err := service.AnalyzeRows(r.Context(), req.Rows, opts)
		if err != nil {
			writeAnalysisError(w, logger, err)
			return
		}

		writeResult(w, logger, result)
	})
}

// AnalyzeText recebe texto tabular colado no corpo; productName e costPrice vêm da query
func AnalyzeText(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		data, err := io.ReadAll(r.Body)
		if err != nil {
			if isTooLarge(err) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Corpo acima do limite", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o corpo", nil)
			return
		}

		if len(bytes.TrimSpace(data)) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Texto vazio", nil)
			return
		}

		query := r.URL.Query()
		opts := analyzing.Options{
			ProductName: strings.TrimSpace(query.Get("productName")),
			CostPrice:   analyzing.CostOption(costOrDefault(query.Get("costPrice"))),
		}

		result, err := service.AnalyzeText(r.Context(), bytes.NewReader(data), opts)
		if err != nil {
			writeAnalysisError(w, logger, err)
			return
		}

		writeResult(w, logger, result)
	})
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func costOrDefault(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return defaultCost
	}
	return raw
}

// costFromJSON aceita costPrice como número ou texto
func costFromJSON(v any) string {
	switch c := v.(type) {
	case nil:
		return defaultCost
	case string:
		return costOrDefault(c)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		s, err := json.MarshalToString(c)
		if err != nil {
			return defaultCost
		}
		return s
	}
}

func writeAnalysisError(w http.ResponseWriter, logger log.Logger, err error) {
	var columnErr *analyzing.ColumnError

	switch {
	case errors.As(err, &columnErr):
		apiErrors.WriteError(w, apiErrors.ErrMissingColumns, columnErr.Error(), map[string]any{"missing": columnErr.Missing})
	case errors.Is(err, analyzing.ErrNoRows):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, analyzing.ErrEmptySheet),
		errors.Is(err, analyzing.ErrInvalidWorkbook),
		errors.Is(err, analyzing.ErrInvalidText):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		logger.WithError(err).Error("analyze: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao analisar", nil)
	}
}

func writeResult(w http.ResponseWriter, logger log.Logger, result *domain.AnalysisResult) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.WithError(err).Error("analyze: erro ao codificar resposta")
	}
}
