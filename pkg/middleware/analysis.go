package middleware

import (
	"net/http"

	"github.com/vfg2006/movement-insights-api/pkg/log"
	"github.com/vfg2006/movement-insights-api/pkg/utils"
)

const (
	// AnalysisIDHeader devolve ao cliente o identificador curto da análise
	AnalysisIDHeader = "X-Analysis-Id"

	// folga para o envelope multipart além do tamanho do arquivo
	multipartOverhead = 1 << 20
)

// AnalysisID gera um identificador para cada requisição de análise
func AnalysisID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := utils.GenerateID()
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Não foi possível gerar o id da análise")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(AnalysisIDHeader, id)
			next.ServeHTTP(w, r.WithContext(log.WithAnalysisID(r.Context(), id)))
		})
	}
}

// MaxBodyBytes limita o corpo da requisição; uploads multipart ganham folga para o envelope
func MaxBodyBytes(limit int64, multipart bool) func(http.Handler) http.Handler {
	if multipart {
		limit += multipartOverhead
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
