package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App             `mapstructure:",squash"`
	Server   Server          `mapstructure:",squash"`
	Upload   Upload          `mapstructure:",squash"`
	Cors     Cors            `mapstructure:",squash"`
	Analysis AnalysisSource  `mapstructure:",squash"`
	Rules    *AnalysisConfig `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Upload struct {
	MaxBytes     int64 `mapstructure:"upload_max_bytes"`
	BodyMaxBytes int64 `mapstructure:"body_max_bytes"` // rotas de JSON e texto colado
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// AnalysisSource aponta para o arquivo JSON com column_map, op_codes, dayfirst e sales_sum_mode
type AnalysisSource struct {
	ConfigPath string `mapstructure:"analysis_config_path"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3000)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("UPLOAD_MAX_BYTES", 5*1024*1024) // 5MB
	viper.SetDefault("BODY_MAX_BYTES", 10*1024*1024)  // 10MB
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	viper.SetDefault("ANALYSIS_CONFIG_PATH", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	rules, err := LoadAnalysisConfig(config.Analysis.ConfigPath)
	if err != nil {
		return nil, err
	}
	config.Rules = rules

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
