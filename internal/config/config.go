package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/pkg/types"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Источники праздников
const (
	SourceHebcal   = "hebcal"
	SourceClosures = "closures"
	SourceStatic   = "static"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Store    StoreConfig    `toml:"store"`
	Calendar CalendarConfig `toml:"calendar"`
	Cutoff   CutoffConfig   `toml:"cutoff"`
	Hebcal   HebcalConfig   `toml:"hebcal"`
	Sweep    SweepConfig    `toml:"sweep"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StoreConfig параметры магазина
type StoreConfig struct {
	Timezone string `toml:"timezone"`
}

// CalendarConfig правила календаря
type CalendarConfig struct {
	RestDay           string          `toml:"rest_day"`
	RestDayEveReduced bool            `toml:"rest_day_eve_reduced"`
	LookaheadDays     int             `toml:"lookahead_days"`
	ShiftPolicy       string          `toml:"shift_policy"`
	Sources           []string        `toml:"sources"`
	Holidays          []StaticHoliday `toml:"holidays"`
}

// StaticHoliday праздник, заданный в конфигурации
type StaticHoliday struct {
	Date string `toml:"date"` // YYYY-MM-DD
	Name string `toml:"name"`
}

// CutoffConfig время приема заказов
type CutoffConfig struct {
	Regular     string `toml:"regular"`
	Reduced     string `toml:"reduced"`
	WindowStart string `toml:"window_start"`
}

// HebcalConfig настройки клиента Hebcal
type HebcalConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
	Israel  bool   `toml:"israel"`  // расписание праздников Израиля (без вторых дней диаспоры)
}

// SweepConfig периодический перенос просроченных подписок на следующий цикл
type SweepConfig struct {
	Enabled   bool   `toml:"enabled"`
	Cron      string `toml:"cron"`
	BatchSize int    `toml:"batch_size"`
	Timeout   int    `toml:"timeout"` // секунды
}

// Load читает .env (если есть), TOML файл и переменные окружения
func Load(path string) (*Config, error) {
	// .env не обязателен, существующие переменные окружения не перезаписываются
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "delivery_service",
		},
		Store: StoreConfig{
			Timezone: domain.DefaultTimezone,
		},
		Calendar: CalendarConfig{
			RestDay:           domain.DefaultRestDay,
			RestDayEveReduced: true,
			LookaheadDays:     domain.DefaultLookaheadDays,
			ShiftPolicy:       string(domain.ShiftOneCycle),
			Sources:           []string{SourceClosures, SourceHebcal},
		},
		Cutoff: CutoffConfig{
			Regular:     domain.DefaultRegularCutoff.String(),
			Reduced:     domain.DefaultReducedCutoff.String(),
			WindowStart: domain.DefaultWindowStart.String(),
		},
		Hebcal: HebcalConfig{
			URL:     "https://www.hebcal.com",
			Timeout: 5,
			Israel:  true,
		},
		Sweep: SweepConfig{
			Cron:      "10 0 * * *",
			BatchSize: 500,
			Timeout:   120,
		},
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT: %v", ErrInvalidConfig, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: store.timezone: %v", ErrInvalidConfig, err)
	}

	if _, err := c.RestWeekday(); err != nil {
		return fmt.Errorf("%w: calendar.rest_day: %v", ErrInvalidConfig, err)
	}

	if c.Calendar.LookaheadDays < domain.MinLookaheadDays || c.Calendar.LookaheadDays > domain.MaxLookaheadDays {
		return fmt.Errorf("%w: calendar.lookahead_days must be within %d..%d",
			ErrInvalidConfig, domain.MinLookaheadDays, domain.MaxLookaheadDays)
	}

	if !domain.ShiftPolicy(c.Calendar.ShiftPolicy).IsValid() {
		return fmt.Errorf("%w: calendar.shift_policy %q", ErrInvalidConfig, c.Calendar.ShiftPolicy)
	}

	if len(c.Calendar.Sources) == 0 {
		return fmt.Errorf("%w: calendar.sources must not be empty", ErrInvalidConfig)
	}
	for _, src := range c.Calendar.Sources {
		switch src {
		case SourceHebcal, SourceClosures, SourceStatic:
		default:
			return fmt.Errorf("%w: calendar.sources: unknown source %q", ErrInvalidConfig, src)
		}
	}

	for i, h := range c.Calendar.Holidays {
		if _, err := domain.ParseCalendarDate(h.Date); err != nil {
			return fmt.Errorf("%w: calendar.holidays[%d].date: %v", ErrInvalidConfig, i, err)
		}
	}

	for name, value := range map[string]string{
		"cutoff.regular":      c.Cutoff.Regular,
		"cutoff.reduced":      c.Cutoff.Reduced,
		"cutoff.window_start": c.Cutoff.WindowStart,
	} {
		if err := types.TimeString(value).Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
		}
	}

	if c.Sweep.Enabled {
		if _, err := cron.ParseStandard(c.Sweep.Cron); err != nil {
			return fmt.Errorf("%w: sweep.cron: %v", ErrInvalidConfig, err)
		}
		if c.Sweep.BatchSize <= 0 {
			return fmt.Errorf("%w: sweep.batch_size must be positive", ErrInvalidConfig)
		}
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	return nil
}

// Location часовой пояс магазина
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Store.Timezone)
}

// RestWeekday еженедельный выходной
func (c *Config) RestWeekday() (time.Weekday, error) {
	return domain.ParseWeekday(c.Calendar.RestDay)
}
