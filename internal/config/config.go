package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN       string        `env:"DATABASE_URI"`
	SweepSchedule     string        `env:"SWEEP_SCHEDULE"`
	CountsCacheSize   int           `env:"COUNTS_CACHE_SIZE"`
	CountsCacheTTL    time.Duration `env:"COUNTS_CACHE_TTL"`
	RequestsPerMinute int           `env:"REQUESTS_PER_MINUTE"`
	AllowedOrigins    string        `env:"ALLOWED_ORIGINS"`
	LogJSON           bool          `env:"LOG_JSON"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL       string `env:"-"`
	FingerprintFile string `env:"FINGERPRINT_FILE"`
	Version         bool   `env:"-"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres://... или путь к SQLite)")
	flag.StringVar(&cfg.SweepSchedule, "sweep", cfg.SweepSchedule, "расписание очистки истёкших записей (cron)")
	flag.IntVar(&cfg.CountsCacheSize, "counts-cache", cfg.CountsCacheSize, "размер LRU-кэша счётчиков реакций")
	flag.DurationVar(&cfg.CountsCacheTTL, "counts-ttl", cfg.CountsCacheTTL, "время жизни записи кэша счётчиков")
	flag.IntVar(&cfg.RequestsPerMinute, "rpm", cfg.RequestsPerMinute, "лимит запросов на запись с одного IP в минуту")
	flag.StringVar(&cfg.AllowedOrigins, "origins", cfg.AllowedOrigins, "разрешённые CORS origins через запятую")
	flag.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "production JSON logging")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the SecretInk server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.FingerprintFile, "fingerprint-file", cfg.FingerprintFile, "path to the device id file (client)")
	flag.BoolVar(&cfg.Version, "version", false, "print client version and exit")

	flag.Parse()

	// Defaults
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "secretink.db"
	}
	if cfg.SweepSchedule == "" {
		cfg.SweepSchedule = "@every 1h"
	}
	if cfg.CountsCacheSize <= 0 {
		cfg.CountsCacheSize = 1024
	}
	if cfg.CountsCacheTTL <= 0 {
		cfg.CountsCacheTTL = 30 * time.Second
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 120
	}
	if cfg.AllowedOrigins == "" {
		cfg.AllowedOrigins = "*"
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill client defaults if empty
	if cfg.FingerprintFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, _ = os.UserHomeDir()
		}
		cfg.FingerprintFile = filepath.Join(dir, "SecretInk", "device_id")
	}

	return cfg
}
