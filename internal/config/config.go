package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Optimization Optimization `mapstructure:",squash"`
	MetricsSync  MetricsSync  `mapstructure:",squash"`
	AdPlatform   AdPlatform   `mapstructure:",squash"`
	Generator    Generator    `mapstructure:",squash"`
	Lock         Lock         `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key" validate:"required"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port" validate:"required"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver" validate:"required"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url" validate:"required"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	AdAccountID string `mapstructure:"meta_ad_account_id"`
	PageID      string `mapstructure:"meta_page_id"`
	LandingURL  string `mapstructure:"meta_landing_url"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Optimization struct {
	CronSchedule             string        `mapstructure:"optimization_cron"`
	Enabled                  bool          `mapstructure:"optimization_enabled"`
	RunTimeout               time.Duration `mapstructure:"optimization_run_timeout" validate:"gt=0"`
	MaxConcurrentExperiments int           `mapstructure:"optimization_max_concurrent_experiments" validate:"min=1"`
	LeaseTTL                 time.Duration `mapstructure:"optimization_lease_ttl" validate:"gt=0"`
}

type MetricsSync struct {
	CronSchedule        string `mapstructure:"metrics_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"metrics_sync_request_delay_seconds" validate:"gte=0"`
	MaxConcurrentJobs   int    `mapstructure:"metrics_sync_max_concurrent_jobs" validate:"min=1"`
	Enabled             bool   `mapstructure:"metrics_sync_enabled"`
}

type AdPlatform struct {
	Mode      string `mapstructure:"ad_platform_mode" validate:"oneof=mock meta"`
	Objective string `mapstructure:"ad_platform_objective"`
}

type Generator struct {
	Mode    string        `mapstructure:"generator_mode" validate:"oneof=mock openai"`
	URL     string        `mapstructure:"generator_url"`
	APIKey  string        `mapstructure:"generator_api_key"`
	Model   string        `mapstructure:"generator_model"`
	Timeout time.Duration `mapstructure:"generator_timeout"`
}

type Lock struct {
	Backend       string `mapstructure:"lock_backend" validate:"oneof=local redis"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaign_optimizer?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_AD_ACCOUNT_ID", "")
	viper.SetDefault("META_PAGE_ID", "")
	viper.SetDefault("META_LANDING_URL", "")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	// Defaults para o ciclo de otimização
	viper.SetDefault("OPTIMIZATION_CRON", "*/15 * * * *")          // A cada 15 minutos
	viper.SetDefault("OPTIMIZATION_ENABLED", false)                // Habilitar avaliação automática
	viper.SetDefault("OPTIMIZATION_RUN_TIMEOUT", "10m")            // Tempo máximo de uma rodada
	viper.SetDefault("OPTIMIZATION_MAX_CONCURRENT_EXPERIMENTS", 4) // Experimentos avaliados em paralelo
	viper.SetDefault("OPTIMIZATION_LEASE_TTL", "5m")               // Validade do lock por experimento

	// Defaults para sincronização de métricas
	viper.SetDefault("METRICS_SYNC_CRON", "0 * * * *")        // De hora em hora
	viper.SetDefault("METRICS_SYNC_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre requisições
	viper.SetDefault("METRICS_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("METRICS_SYNC_ENABLED", false)           // Habilitar sincronização de métricas

	viper.SetDefault("AD_PLATFORM_MODE", "mock")
	viper.SetDefault("AD_PLATFORM_OBJECTIVE", "OUTCOME_LEADS")

	viper.SetDefault("GENERATOR_MODE", "mock")
	viper.SetDefault("GENERATOR_URL", "https://api.openai.com/v1/chat/completions")
	viper.SetDefault("GENERATOR_API_KEY", "")
	viper.SetDefault("GENERATOR_MODEL", "gpt-4o-mini")
	viper.SetDefault("GENERATOR_TIMEOUT", "60s")

	viper.SetDefault("LOCK_BACKEND", "local")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

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
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate confere enumerações e limites da configuração carregada
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}

	if c.AdPlatform.Mode == "meta" && c.Meta.AdAccountID == "" {
		return fmt.Errorf("configuração inválida: META_AD_ACCOUNT_ID é obrigatório com AD_PLATFORM_MODE=meta")
	}

	// a lease é renovada entre chamadas externas; uma única chamada não pode durar mais que ela
	if c.Optimization.LeaseTTL <= c.Generator.Timeout {
		return fmt.Errorf("configuração inválida: OPTIMIZATION_LEASE_TTL (%s) deve ser maior que GENERATOR_TIMEOUT (%s)",
			c.Optimization.LeaseTTL, c.Generator.Timeout)
	}

	if c.Generator.Mode == "openai" && c.Generator.APIKey == "" {
		return fmt.Errorf("configuração inválida: GENERATOR_API_KEY é obrigatório com GENERATOR_MODE=openai")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
