package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/movement-insights-api/infrastructure/spreadsheet"
	"github.com/vfg2006/movement-insights-api/internal/api"
	"github.com/vfg2006/movement-insights-api/internal/config"
	"github.com/vfg2006/movement-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/movement-insights-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	collector := metrics.New()

	analysisService := analyzing.NewService(
		cfg.Rules,
		spreadsheet.NewWorkbookReader(),
		spreadsheet.NewTextReader(),
	).WithRecorder(collector)

	logrus.WithFields(logrus.Fields{
		"op_codes":       len(cfg.Rules.OpCodes),
		"dayfirst":       cfg.Rules.DayFirst,
		"sales_sum_mode": cfg.Rules.NormalizedSalesSumMode(),
	}).Info("Configuração de análise carregada")

	server, err := api.New(cfg, analysisService, collector.Handler())
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
