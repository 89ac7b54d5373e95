package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// FileEnv names the variable pointing at an optional config file (yaml, toml or env).
const FileEnv = "CONFIG_FILE"

type Config struct {
	App struct {
		Env       string `yaml:"env" env:"APP_ENV" env-default:"development"`
		Port      int    `yaml:"port" env:"APP_PORT" env-default:"8080"`
		SentryUrl string `yaml:"sentry_url" env:"APP_SENTRY_URL"`
	} `yaml:"app"`
	Postgres struct {
		Port    int    `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `yaml:"host" env:"POSTGRES_HOST"`
		User    string `yaml:"user" env:"POSTGRES_USER"`
		Pass    string `yaml:"pass" env:"POSTGRES_PASS"`
		Name    string `yaml:"name" env:"POSTGRES_NAME"`
		SslMode string `yaml:"ssl_mode" env:"POSTGRES_SSL_MODE" env-default:"disable"`
	} `yaml:"postgres"`
	Telegram struct {
		Token   string `yaml:"token" env:"TELEGRAM_TOKEN"`
		Channel string `yaml:"channel" env:"TELEGRAM_CHANNEL"`
	} `yaml:"telegram"`
	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"freecycle-matches"`
	} `yaml:"kafka"`
	Parser Parser `yaml:"parser"`
	HTTP   HTTP   `yaml:"http"`
}

type Parser struct {
	Boards         []string      `yaml:"boards" env:"PARSER_BOARDS" env-separator:"," env-description:"board list page URLs"`
	BoardsFile     string        `yaml:"boards_file" env:"PARSER_BOARDS_FILE" env-description:"file with one board URL per line"`
	Keywords       []string      `yaml:"keywords" env:"PARSER_KEYWORDS" env-separator:","`
	KeywordsFile   string        `yaml:"keywords_file" env:"PARSER_KEYWORDS_FILE"`
	ResultsPerPage int           `yaml:"results_per_page" env:"PARSER_RESULTS_PER_PAGE" env-default:"100"`
	CheckInterval  string        `yaml:"check_interval" env:"PARSER_CHECK_INTERVAL" env-default:"*/30 * * * *"`
	RunOnStart     bool          `yaml:"run_on_start" env:"PARSER_RUN_ON_START" env-default:"true"`
	Workers        int           `yaml:"workers" env:"PARSER_WORKERS" env-default:"4"`
	Strict         bool          `yaml:"strict" env:"PARSER_STRICT" env-default:"false" env-description:"abort the run on the first fetch or parse error"`
	SeenRetention  time.Duration `yaml:"seen_retention" env:"PARSER_SEEN_RETENTION" env-default:"720h"`
	Timezone       string        `yaml:"timezone" env:"PARSER_TIMEZONE" env-default:"Europe/London"`
}

type HTTP struct {
	Timeout       time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"30s"`
	RatePerSecond int           `yaml:"rate_per_second" env:"HTTP_RATE_PER_SECOND" env-default:"2"`
	Burst         int           `yaml:"burst" env:"HTTP_BURST" env-default:"2"`
	MaxRetries    uint64        `yaml:"max_retries" env:"HTTP_MAX_RETRIES" env-default:"3"`
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// New loads the process configuration once and returns the same value afterwards.
func New() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = Load()
	})
	return cfg, loadErr
}

// Load reads CONFIG_FILE when it is set and the environment otherwise.
func Load() (*Config, error) {
	c := &Config{}

	var err error
	if path := os.Getenv(FileEnv); path != "" {
		err = cleanenv.ReadConfig(path, c)
	} else {
		err = cleanenv.ReadEnv(c)
	}
	if err != nil {
		help, _ := cleanenv.GetDescription(c, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Parser.ResultsPerPage <= 0 {
		return fmt.Errorf("PARSER_RESULTS_PER_PAGE must be positive, got %d", c.Parser.ResultsPerPage)
	}
	if c.Parser.Workers <= 0 {
		c.Parser.Workers = 1
	}
	return nil
}

// PostgresEnabled reports whether a database was configured for seen-post storage.
func (c *Config) PostgresEnabled() bool {
	return c.Postgres.Host != ""
}

func (c *Config) TelegramEnabled() bool {
	return c.Telegram.Token != "" && c.Telegram.Channel != ""
}

func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

func (c *Config) GetDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Postgres.User, c.Postgres.Pass),
		Host:     c.Postgres.Host + ":" + strconv.Itoa(c.Postgres.Port),
		Path:     "/" + c.Postgres.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.Postgres.SslMode),
	}
	return u.String()
}
