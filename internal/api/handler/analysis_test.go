package handler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/movement-insights-api/internal/api/handler"
	"github.com/vfg2006/movement-insights-api/internal/api/handler/router"
	"github.com/vfg2006/movement-insights-api/internal/domain"
	"github.com/vfg2006/movement-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/movement-insights-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/movement-insights-api/pkg/apiErrors"
	"github.com/vfg2006/movement-insights-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	maxUpload = 1024
	maxBody   = 2048
)

func newRouter(service analyzing.Analyzer) router.Router {
	return router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Analysis(service, maxUpload, maxBody)...),
	)
}

func multipartRequest(t *testing.T, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestAnalyzeUpload(t *testing.T) {
	tests := []struct {
		name     string
		request  func(t *testing.T) *http.Request
		setup    func(service *mocks.MockAnalyzer)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "planilha válida",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "movimentos.XLSX", []byte("conteudo"), map[string]string{"productName": "  Produto X  "})
			},
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					AnalyzeWorkbook(gomock.Any(), gomock.Any(), analyzing.Options{ProductName: "Produto X", CostPrice: analyzing.CostOption("0")}).
					DoAndReturn(func(ctx context.Context, r io.Reader, opts analyzing.Options) (*domain.AnalysisResult, error) {
						data, err := io.ReadAll(r)
						if err != nil {
							return nil, err
						}
						return &domain.AnalysisResult{ProductName: string(data)}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.Len(t, rec.Header().Get(middleware.AnalysisIDHeader), 10)

				var result domain.AnalysisResult
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
				assert.Equal(t, "conteudo", result.ProductName)
			},
		},
		{
			name: "custo informado",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "m.xlsx", []byte("x"), map[string]string{"costPrice": "12,5"})
			},
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					AnalyzeWorkbook(gomock.Any(), gomock.Any(), analyzing.Options{CostPrice: analyzing.CostOption("12,5")}).
					Return(&domain.AnalysisResult{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name: "extensão não aceita",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "movimentos.csv", []byte("a;b"), nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
		{
			name: "sem arquivo",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "", nil, map[string]string{"productName": "X"})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
			},
		},
		{
			name: "arquivo acima do limite",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "grande.xlsx", bytes.Repeat([]byte("a"), maxUpload+1), nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
				assert.Equal(t, apiErrors.ErrPayloadTooLarge, decodeError(t, rec).Code)
			},
		},
		{
			name: "corpo não multipart",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader("{}"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
			},
		},
		{
			name: "colunas ausentes",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "m.xlsx", []byte("x"), nil)
			},
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					AnalyzeWorkbook(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &analyzing.ColumnError{Missing: []analyzing.MissingColumn{
						{Field: "date", Expected: "data atual", Suggestion: "data"},
					}})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

				var body struct {
					Code    string `json:"code"`
					Details struct {
						Missing []analyzing.MissingColumn `json:"missing"`
					} `json:"details"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, apiErrors.ErrMissingColumns, body.Code)
				assert.Equal(t, []analyzing.MissingColumn{{Field: "date", Expected: "data atual", Suggestion: "data"}}, body.Details.Missing)
			},
		},
		{
			name: "xlsx inválido",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "m.xlsx", []byte("x"), nil)
			},
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					AnalyzeWorkbook(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, analyzing.ErrInvalidWorkbook)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
		{
			name: "erro inesperado",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "m.xlsx", []byte("x"), nil)
			},
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					AnalyzeWorkbook(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("falha"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockAnalyzer(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			rec := httptest.NewRecorder()
			newRouter(service).ServeHTTP(rec, tt.request(t))

			tt.validate(t, rec)
		})
	}
}

func TestAnalyzeRows(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(service *mocks.MockAnalyzer)
		wantStatus int
		wantCode   string
	}{
		{
			name: "custo numérico",
			body: `{"rows": [{"Código": "P1"}], "productName": " X\t", "costPrice": 12.5}`,
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					AnalyzeRows(gomock.Any(), []map[string]any{{"Código": "P1"}}, analyzing.Options{ProductName: "X", CostPrice: analyzing.CostOption("12.5")}).
					Return(&domain.AnalysisResult{ProductName: "X"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "custo ausente vale zero",
			body: `{"rows": [{"a": 1}]}`,
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					AnalyzeRows(gomock.Any(), gomock.Any(), analyzing.Options{CostPrice: analyzing.CostOption("0")}).
					Return(&domain.AnalysisResult{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "rows vazio",
			body:       `{"rows": []}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "json inválido",
			body:       `{"rows": `,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name: "corpo acima do limite de upload mas dentro do limite de JSON",
			body: `{"rows": [{"a": "` + strings.Repeat("x", maxUpload) + `"}]}`,
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					AnalyzeRows(gomock.Any(), []map[string]any{{"a": strings.Repeat("x", maxUpload)}}, gomock.Any()).
					Return(&domain.AnalysisResult{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "corpo acima do limite",
			body:       `{"rows": [{"a": "` + strings.Repeat("x", maxBody) + `"}]}`,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   apiErrors.ErrPayloadTooLarge,
		},
		{
			name: "sem linhas válidas",
			body: `{"rows": [{"a": 1}]}`,
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().AnalyzeRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, analyzing.ErrNoRows)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockAnalyzer(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/analyze/json", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			newRouter(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(middleware.AnalysisIDHeader))
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestAnalyzeText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAnalyzer(ctrl)
	service.EXPECT().
		AnalyzeText(gomock.Any(), gomock.Any(), analyzing.Options{ProductName: "Produto X", CostPrice: analyzing.CostOption("3,5")}).
		DoAndReturn(func(ctx context.Context, r io.Reader, opts analyzing.Options) (*domain.AnalysisResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "Código;Qtde.\nP1;3\n", string(data))
			return &domain.AnalysisResult{ProductName: opts.ProductName}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze/text?productName=+Produto+X+&costPrice=3,5", strings.NewReader("Código;Qtde.\nP1;3\n"))
	rec := httptest.NewRecorder()
	newRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalyzeText_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze/text", strings.NewReader(" \n\t"))
	rec := httptest.NewRecorder()
	newRouter(mocks.NewMockAnalyzer(ctrl)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
}

func TestAnalyzeText_BodyLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze/text", strings.NewReader(strings.Repeat("a;b\n", maxBody)))
	rec := httptest.NewRecorder()
	newRouter(mocks.NewMockAnalyzer(ctrl)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, apiErrors.ErrPayloadTooLarge, decodeError(t, rec).Code)
}

func TestRouter_Fallbacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := newRouter(mocks.NewMockAnalyzer(ctrl))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analyze", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, apiErrors.ErrMethodNotAllowed, decodeError(t, rec).Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
