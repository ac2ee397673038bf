package handler

import (
	"net/http"

	"github.com/vfg2006/movement-insights-api/internal/api/handler/router"
	"github.com/vfg2006/movement-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/movement-insights-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analysis(service analyzing.Analyzer, maxUploadBytes, maxBodyBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzeUpload(service, maxUploadBytes),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.AnalysisID(),
				middleware.MaxBodyBytes(maxUploadBytes, true),
			},
		},
		{
			Path:    "/v1/analyze/json",
			Method:  http.MethodPost,
			Handler: AnalyzeRows(service),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.AnalysisID(),
				middleware.MaxBodyBytes(maxBodyBytes, false),
			},
		},
		{
			Path:    "/v1/analyze/text",
			Method:  http.MethodPost,
			Handler: AnalyzeText(service),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.AnalysisID(),
				middleware.MaxBodyBytes(maxBodyBytes, false),
			},
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}
