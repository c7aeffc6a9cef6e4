package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFile   = "data/config.yaml"
	configFileEnv = "LEDGER_CONFIG"
)

// envRef matches ${VAR} only. A bare $ is left alone, bcrypt hashes use it.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

type config struct {
	App       AppConfig       `yaml:"app"`
	HTTP      HTTPConfig      `yaml:"http"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	SQLite    SQLiteConfig    `yaml:"sqlite"`
	Auth      AuthConfig      `yaml:"auth"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	AMQP      AMQPConfig      `yaml:"amqp"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
}

type Service struct {
	config config
}

// File picks the config path: the explicit one, then LEDGER_CONFIG, then the
// default.
func File(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(configFileEnv); env != "" {
		return env
	}
	return DefaultFile
}

// New reads the YAML config at path. A .env file next to the process is loaded
// first and ${VAR} references in the YAML are expanded from the environment.
func New(path string) (*Service, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading .env")
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}

	err := yaml.Unmarshal(expandEnv(rawYAML), &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	s.config.applyDefaults()

	if err = s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func expandEnv(raw []byte) []byte {
	return envRef.ReplaceAllFunc(raw, func(ref []byte) []byte {
		return []byte(os.Getenv(string(envRef.FindSubmatch(ref)[1])))
	})
}

func (c *config) applyDefaults() {
	c.App.applyDefaults()
	c.HTTP.applyDefaults()
	c.Storage.applyDefaults()
	c.Postgres.applyDefaults()
	c.SQLite.applyDefaults()
	c.Auth.applyDefaults()
	c.Kafka.applyDefaults()
	c.AMQP.applyDefaults()
	c.Memcached.applyDefaults()
	c.Jaeger.applyDefaults()
}

// Validate reports every problem in the config at once.
func (s *Service) Validate() error {
	var problems []string
	c := &s.config

	if _, err := c.App.location(); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone '%s': %v", c.App.Timezone, err))
	}

	switch c.Storage.Kind {
	case BackendMemory:
	case BackendSQLite:
		if c.SQLite.DBPath == "" {
			problems = append(problems, "sqlite path cannot be empty when using sqlite backend")
		}
	case BackendPostgres:
		if c.Postgres.Hostname == "" || c.Postgres.Db == "" {
			problems = append(problems, "postgres host and db are required when using postgres backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend '%s': must be one of %v",
			c.Storage.Kind, []string{BackendMemory, BackendSQLite, BackendPostgres}))
	}

	if c.Auth.UserEmail == "" || c.Auth.Hash == "" {
		problems = append(problems, "auth email and password-hash are required")
	}

	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"auth session-ttl", c.Auth.TTL},
		{"auth sweep-interval", c.Auth.Sweep},
		{"http read-timeout", c.HTTP.Read},
		{"http write-timeout", c.HTTP.Write},
		{"http shutdown-timeout", c.HTTP.ShutdownWait},
	} {
		if d.value <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got %s", d.name, d.value))
		}
	}

	if c.Kafka.On && len(c.Kafka.BrokerList) == 0 {
		problems = append(problems, "kafka brokers cannot be empty when kafka is enabled")
	}

	if c.AMQP.On {
		if parsed, err := url.Parse(c.AMQP.Address); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQP.Address, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
	}

	if c.Memcached.On && len(c.Memcached.NodeHosts) == 0 {
		problems = append(problems, "memcached hosts cannot be empty when memcached is enabled")
	}

	if c.Telegram.On && (c.Telegram.ApiToken == "" || c.Telegram.Chat == 0) {
		problems = append(problems, "telegram token and chat-id are required when telegram is enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) HTTP() *HTTPConfig {
	return &s.config.HTTP
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) SQLite() *SQLiteConfig {
	return &s.config.SQLite
}

func (s *Service) Auth() *AuthConfig {
	return &s.config.Auth
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) AMQP() *AMQPConfig {
	return &s.config.AMQP
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}
