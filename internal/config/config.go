package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	RevenueCat         RevenueCat         `mapstructure:",squash"`
	Cipher             Cipher             `mapstructure:",squash"`
	MetricsRefreshSync MetricsRefreshSync `mapstructure:",squash"`
	RateLimit          RateLimit          `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type RevenueCat struct {
	BaseURL string `mapstructure:"revenuecat_base_url"`
	Version string `mapstructure:"revenuecat_version"`
	URL     string `mapstructure:"-"`
}

// Cipher carrega o master secret usado na cifra dos tokens de API. O valor é
// obrigatório: sem ele nenhum token pode ser gravado ou lido.
type Cipher struct {
	MasterSecret string `mapstructure:"master_secret"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type MetricsRefreshSync struct {
	CronSchedule        string `mapstructure:"metrics_refresh_cron"`
	RequestDelaySeconds int    `mapstructure:"metrics_refresh_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"metrics_refresh_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"metrics_refresh_enabled"`
	TriggerToken        string `mapstructure:"refresh_trigger_token"`
}

type RateLimit struct {
	WindowSeconds int `mapstructure:"rate_limit_window_seconds"`
	MaxRequests   int `mapstructure:"rate_limit_max_requests"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/leaderboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REVENUECAT_BASE_URL", "https://api.revenuecat.com")
	viper.SetDefault("REVENUECAT_VERSION", "v2")

	// Defaults para o job de atualização de métricas
	viper.SetDefault("METRICS_REFRESH_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("METRICS_REFRESH_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre requisições
	viper.SetDefault("METRICS_REFRESH_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("METRICS_REFRESH_ENABLED", true)

	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	viper.SetDefault("RATE_LIMIT_MAX_REQUESTS", 5)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
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

	// Campos obrigatórios: a ausência é erro de configuração na inicialização,
	// nunca uma falha tardia no meio de uma requisição ou do job
	if config.Cipher.MasterSecret == "" {
		return nil, errors.New("MASTER_SECRET é obrigatório e não foi configurado")
	}

	if config.MetricsRefreshSync.TriggerToken == "" {
		return nil, errors.New("REFRESH_TRIGGER_TOKEN é obrigatório e não foi configurado")
	}

	config.RevenueCat.URL = fmt.Sprintf("%s/%s", config.RevenueCat.BaseURL, config.RevenueCat.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
