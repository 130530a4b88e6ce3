package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Bot       BotConfig       `yaml:"bot"`
	Database  DatabaseConfig  `yaml:"database"`
	Quiz      QuizConfig      `yaml:"quiz"`
	Interface InterfaceConfig `yaml:"interface"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
}

// BotConfig holds Telegram settings
type BotConfig struct {
	Token          string        `yaml:"token" envconfig:"BOT_TOKEN"`
	PollTimeout    time.Duration `yaml:"poll_timeout" envconfig:"BOT_POLL_TIMEOUT"`
	RequestTimeout time.Duration `yaml:"request_timeout" envconfig:"BOT_REQUEST_TIMEOUT"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host           string `yaml:"host" envconfig:"DB_HOST"`
	Port           string `yaml:"port" envconfig:"DB_PORT"`
	Name           string `yaml:"name" envconfig:"DB_NAME"`
	User           string `yaml:"user" envconfig:"DB_USER"`
	Password       string `yaml:"password" envconfig:"DB_PASSWORD"`
	SSLMode        string `yaml:"sslmode" envconfig:"DB_SSLMODE"`
	MigrationsPath string `yaml:"migrations_path" envconfig:"DB_MIGRATIONS_PATH"`
	ConnectRetries int    `yaml:"connect_retries" envconfig:"DB_CONNECT_RETRIES"`
}

// QuizConfig holds quiz settings
type QuizConfig struct {
	OptionsCount int `yaml:"options_count" envconfig:"QUIZ_OPTIONS_COUNT"`
}

// InterfaceConfig holds presentation limits
type InterfaceConfig struct {
	WordsPerPage  int `yaml:"words_per_page" envconfig:"WORDS_PER_PAGE"`
	MaxWordLength int `yaml:"max_word_length" envconfig:"MAX_WORD_LENGTH"`
}

// SessionConfig controls in-memory session expiry
type SessionConfig struct {
	IdleTTL       time.Duration `yaml:"idle_ttl" envconfig:"SESSION_IDLE_TTL"`
	SweepInterval time.Duration `yaml:"sweep_interval" envconfig:"SESSION_SWEEP_INTERVAL"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `yaml:"level" envconfig:"LOG_LEVEL"`
}

// Load reads configuration from an optional YAML file (CONFIG_FILE) and
// environment variables. Environment wins over the file.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	setDefault(&cfg.Database.Host, "localhost")
	setDefault(&cfg.Database.Port, "5432")
	setDefault(&cfg.Database.Name, "english_bot")
	setDefault(&cfg.Database.User, "postgres")
	setDefault(&cfg.Database.SSLMode, "disable")
	setDefault(&cfg.Database.MigrationsPath, "file://migrations")
	setDefault(&cfg.Log.Level, "info")

	if cfg.Database.ConnectRetries <= 0 {
		cfg.Database.ConnectRetries = 30
	}
	if cfg.Bot.PollTimeout <= 0 {
		cfg.Bot.PollTimeout = 10 * time.Second
	}
	if cfg.Bot.RequestTimeout <= 0 {
		cfg.Bot.RequestTimeout = 10 * time.Second
	}
	if cfg.Quiz.OptionsCount == 0 {
		cfg.Quiz.OptionsCount = 4
	}
	if cfg.Interface.WordsPerPage <= 0 {
		cfg.Interface.WordsPerPage = 10
	}
	if cfg.Interface.MaxWordLength <= 0 {
		cfg.Interface.MaxWordLength = 255
	}
	if cfg.Session.IdleTTL <= 0 {
		cfg.Session.IdleTTL = 24 * time.Hour
	}
	if cfg.Session.SweepInterval <= 0 {
		cfg.Session.SweepInterval = time.Hour
	}
}

// Validate checks required fields
func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Quiz.OptionsCount < 2 {
		return fmt.Errorf("QUIZ_OPTIONS_COUNT must be at least 2, got %d", c.Quiz.OptionsCount)
	}
	if c.Interface.MaxWordLength > 255 {
		return fmt.Errorf("MAX_WORD_LENGTH must not exceed 255, got %d", c.Interface.MaxWordLength)
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
