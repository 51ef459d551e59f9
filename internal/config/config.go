package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	SEO               SEO               `mapstructure:",squash"`
	Redis             Redis             `mapstructure:",squash"`
	RateLimit         RateLimit         `mapstructure:",squash"`
	ScoreSnapshotSync ScoreSnapshotSync `mapstructure:",squash"`
	EventRetention    EventRetention    `mapstructure:",squash"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// SEO agrupa os parâmetros dos relatórios de SEO
type SEO struct {
	Timezone         string         `mapstructure:"seo_timezone"`
	TopKeywordsLimit int            `mapstructure:"seo_top_keywords_limit"`
	TopPagesLimit    int            `mapstructure:"seo_top_pages_limit"`
	Location         *time.Location `mapstructure:"-"`
}

// Redis é opcional; sem endereço o rate limit fica desligado
type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type RateLimit struct {
	Requests int           `mapstructure:"rate_limit_requests"`
	Window   time.Duration `mapstructure:"rate_limit_window"`
}

type ScoreSnapshotSync struct {
	CronSchedule   string `mapstructure:"score_snapshot_sync_cron"`
	Period         string `mapstructure:"score_snapshot_sync_period"`
	Enabled        bool   `mapstructure:"score_snapshot_sync_enabled"`
	HistoryMaxDays int    `mapstructure:"score_snapshot_history_max_days"`
}

type EventRetention struct {
	CronSchedule  string `mapstructure:"event_retention_cron"`
	RetentionDays int    `mapstructure:"event_retention_days"`
	Enabled       bool   `mapstructure:"event_retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/realestate?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("AUTO_MIGRATE", false)

	viper.SetDefault("SEO_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("SEO_TOP_KEYWORDS_LIMIT", 10)
	viper.SetDefault("SEO_TOP_PAGES_LIMIT", 10)

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 120) // requisições por janela e por IP
	viper.SetDefault("RATE_LIMIT_WINDOW", "1m")

	viper.SetDefault("SCORE_SNAPSHOT_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("SCORE_SNAPSHOT_SYNC_PERIOD", "30d")
	viper.SetDefault("SCORE_SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("SCORE_SNAPSHOT_HISTORY_MAX_DAYS", 365)

	viper.SetDefault("EVENT_RETENTION_CRON", "0 3 * * 0") // Domingo às 3h da manhã
	viper.SetDefault("EVENT_RETENTION_DAYS", 365)
	viper.SetDefault("EVENT_RETENTION_ENABLED", false)

	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	location, err := time.LoadLocation(config.SEO.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido: %s, usando UTC", config.SEO.Timezone)
		location = time.UTC
	}
	config.SEO.Location = location

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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
