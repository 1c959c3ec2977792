// Package config предоставляет структуры и функции для загрузки конфига студии.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	MigrationsPath          string `yaml:"migrations_path" env-default:"./migrations"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	Gemini                  `yaml:"gemini"`
	Chat                    `yaml:"chat"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP     string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP     time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес отключает кэш.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
	TTL          time.Duration `yaml:"ttl" env-default:"5m"`
}

// Gemini структура для настройки модели ассистента.
// Пустой ключ отключает ассистента: на каждое сообщение приходит ответ-заглушка.
type Gemini struct {
	APIKey          string        `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model           string        `yaml:"model" env-default:"gemini-2.0-flash"`
	Temperature     float32       `yaml:"temperature" env-default:"0.7"`
	MaxOutputTokens int32         `yaml:"max_output_tokens" env-default:"512"`
	Timeout         time.Duration `yaml:"timeout" env-default:"30s"`
}

// Chat структура для настройки виджета чата
type Chat struct {
	ContextExcerptLen int           `yaml:"context_excerpt_len" env-default:"100"`
	Goal              string        `yaml:"goal" env-default:"General Fitness"`
	RateLimitRPS      float64       `yaml:"rate_limit_rps" env-default:"1"`
	RateLimitBurst    int           `yaml:"rate_limit_burst" env-default:"3"`
	SessionIdleTTL    time.Duration `yaml:"session_idle_ttl" env-default:"30m"` // простой, после которого сессия закрывается
}

// Load читает конфиг из файла path и переменных окружения.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if path == "" {
		return nil, fmt.Errorf("%s: %w", op, errors.New("config path is empty"))
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс при ошибке.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// String печатает конфиг без секретов.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Storage: %s\n"+
			"MigrationsPath: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"  TTL: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Gemini:\n"+
			"  Model: %s\n"+
			"  Enabled: %t\n"+
			"  Timeout: %s\n",
		c.Env,
		storageKind(c.StorageConnectionString),
		c.MigrationsPath,
		c.AddressRedis,
		c.DB,
		c.TTL,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.Model,
		c.APIKey != "",
		c.Gemini.Timeout,
	)
}

func storageKind(conn string) string {
	if conn == "" {
		return "memory"
	}
	return "postgres"
}
