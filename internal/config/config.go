package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Políticas de reancoragem da janela contábil no primeiro ciclo
const (
	WindowPolicyBimester = "bimester"
	WindowPolicyMonth    = "month"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Aliexpress Aliexpress `mapstructure:",squash"`
	OrderSync  OrderSync  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Aliexpress struct {
	BaseURL               string `mapstructure:"aliexpress_base_url"`
	AppKey                string `mapstructure:"aliexpress_app_key"`
	AppSecret             string `mapstructure:"aliexpress_app_secret"`
	PageSize              int    `mapstructure:"aliexpress_page_size"`
	RequestTimeoutSeconds int    `mapstructure:"aliexpress_request_timeout_seconds"`
	OrderStatus           string `mapstructure:"aliexpress_order_status"`
}

type OrderSync struct {
	IntervalMinutes int    `mapstructure:"order_sync_interval_minutes"`
	Enabled         bool   `mapstructure:"order_sync_enabled"`
	RunOnStartup    bool   `mapstructure:"order_sync_run_on_startup"`
	WindowPolicy    string `mapstructure:"order_sync_window_policy"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("ALIEXPRESS_BASE_URL", "https://api-sg.aliexpress.com/sync")
	viper.SetDefault("ALIEXPRESS_APP_KEY", "")
	viper.SetDefault("ALIEXPRESS_APP_SECRET", "")
	viper.SetDefault("ALIEXPRESS_PAGE_SIZE", 50)
	viper.SetDefault("ALIEXPRESS_REQUEST_TIMEOUT_SECONDS", 10)
	viper.SetDefault("ALIEXPRESS_ORDER_STATUS", "") // vazio = todos os status

	// Defaults para sincronização de pedidos
	viper.SetDefault("ORDER_SYNC_INTERVAL_MINUTES", 5)
	viper.SetDefault("ORDER_SYNC_ENABLED", true)
	viper.SetDefault("ORDER_SYNC_RUN_ON_STARTUP", true)
	viper.SetDefault("ORDER_SYNC_WINDOW_POLICY", WindowPolicyBimester)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}
}
