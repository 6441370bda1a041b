package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	Port        string `env:"PORT"`
	Debug       bool   `env:"DEBUG"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	// LogFile — файл для записей INFO и выше, пишется только вне debug-режима
	LogFile string `env:"LOG_FILE"`

	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	MigrationsEnabled  bool          `env:"MIGRATIONS_ENABLED" envDefault:"true"`

	Redis struct {
		URL      string        `env:"REDIS_URL"`
		FlashTTL time.Duration `env:"FLASH_TTL" envDefault:"10m"`
	}

	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"fyyur_listing_events"`
	}

	// Настройки для MinIO, загрузка изображений выключена, если endpoint пуст
	Minio struct {
		Endpoint        string `env:"MINIO_ENDPOINT"`
		AccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
		SecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
		UseSSL          bool   `env:"MINIO_USE_SSL"`
		BucketName      string `env:"MINIO_BUCKET_NAME" envDefault:"fyyur-images"`
		Region          string `env:"MINIO_REGION" envDefault:"us-east-1"`
		PublicURL       string `env:"MINIO_PUBLIC_URL"`
	}
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config from environment: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults вручную выставляет значения по умолчанию
func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = "5000"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	if c.LogFile == "" {
		c.LogFile = "error.log"
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30 * time.Second
	}
}

// UploadsEnabled сообщает, настроено ли S3/MinIO хранилище изображений
func (c *Config) UploadsEnabled() bool {
	return c.Minio.Endpoint != ""
}
