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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Gemini          Gemini          `mapstructure:",squash"`
	Retrieval       Retrieval       `mapstructure:",squash"`
	InsightsRefresh InsightsRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Gemini struct {
	APIKey string `mapstructure:"gemini_api_key"`
	Model  string `mapstructure:"gemini_model"`
}

type Retrieval struct {
	MaxSalesRows      int `mapstructure:"retrieval_max_sales_rows"`
	MaxSalesSamples   int `mapstructure:"retrieval_max_sales_samples"`
	MaxRecentExpenses int `mapstructure:"retrieval_max_recent_expenses"`
}

type InsightsRefresh struct {
	CronSchedule string `mapstructure:"insights_refresh_cron"`
	Enabled      bool   `mapstructure:"insights_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("GEMINI_API_KEY", "") // Vazio = modo offline
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	// Limites do pré-filtro de contexto do chat
	viper.SetDefault("RETRIEVAL_MAX_SALES_ROWS", 50)
	viper.SetDefault("RETRIEVAL_MAX_SALES_SAMPLES", 5)
	viper.SetDefault("RETRIEVAL_MAX_RECENT_EXPENSES", 10)

	// Defaults para recomputação agendada do feed de insights
	viper.SetDefault("INSIGHTS_REFRESH_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("INSIGHTS_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
