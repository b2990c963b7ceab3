package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/xabank/time-deposit/internal/domain/model"
	pgpkg "github.com/xabank/time-deposit/pkg/postgres"
)

// DefaultFile is read when CONFIG_FILE is not set.
const DefaultFile = "configs/timedeposit.yaml"

// Config holds all service configuration.
type Config struct {
	HTTPPort   int              `mapstructure:"http_port"`
	GRPCPort   int              `mapstructure:"grpc_port"`
	DB         DBConfig         `mapstructure:"db"`
	Log        LogConfig        `mapstructure:"log"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Migrations MigrationsConfig `mapstructure:"migrations"`
	Plans      []PlanConfig     `mapstructure:"plans"`
}

// DBConfig holds PostgreSQL connection parameters.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int32  `mapstructure:"max_conns"`
	MinConns int32  `mapstructure:"min_conns"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SchedulerConfig controls the month-end recalculation job.
type SchedulerConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Schedule    string `mapstructure:"schedule"`
	LastDayOnly bool   `mapstructure:"last_day_only"`
}

type MigrationsConfig struct {
	Path string `mapstructure:"path"`
}

// PlanConfig is one entry of the ordered plans list. The rate is kept as text
// so it is parsed exactly into a decimal.
type PlanConfig struct {
	PlanType              string `mapstructure:"plan_type"`
	InterestRate          string `mapstructure:"interest_rate"`
	InterestFreeDays      int    `mapstructure:"interest_free_days"`
	InterestEnds          bool   `mapstructure:"interest_ends"`
	InterestEndsAfterDays *int   `mapstructure:"interest_ends_after_days"`
}

// Load reads configuration from an optional YAML file and the environment.
// An empty path falls back to CONFIG_FILE, then DefaultFile. A missing file is not an error.
func Load(path string) (Config, error) {
	// .env is optional; values already in the environment win.
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path == "" {
		path = DefaultFile
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_port", 8080)
	v.SetDefault("grpc_port", 9090)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "timedeposit")
	v.SetDefault("db.password", "timedeposit_dev_password")
	v.SetDefault("db.name", "time_deposit")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_conns", 10)
	v.SetDefault("db.min_conns", 2)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.schedule", "0 0 28-31 * *")
	v.SetDefault("scheduler.last_day_only", true)

	v.SetDefault("migrations.path", "internal/infrastructure/persistence/postgres/migrations")
}

// Postgres maps the database section onto the shared pool configuration.
func (c Config) Postgres() pgpkg.Config {
	return pgpkg.Config{
		Host:     c.DB.Host,
		Port:     c.DB.Port,
		User:     c.DB.User,
		Password: c.DB.Password,
		Database: c.DB.Name,
		SSLMode:  c.DB.SSLMode,
		MaxConns: c.DB.MaxConns,
		MinConns: c.DB.MinConns,
	}
}

// BuildPlans converts the configured plans into domain plans, keeping their order.
func (c Config) BuildPlans() ([]model.Plan, error) {
	plans := make([]model.Plan, 0, len(c.Plans))
	for i, pc := range c.Plans {
		rate, err := decimal.NewFromString(strings.TrimSpace(pc.InterestRate))
		if err != nil {
			return nil, fmt.Errorf("config: plans[%d] (%s): invalid interest_rate %q: %w", i, pc.PlanType, pc.InterestRate, err)
		}

		plan, err := model.NewPlan(pc.PlanType, rate, pc.InterestFreeDays, pc.InterestEnds, pc.InterestEndsAfterDays)
		if err != nil {
			return nil, fmt.Errorf("config: plans[%d]: %w", i, err)
		}
		plans = append(plans, plan)
	}
	return plans, nil
}
