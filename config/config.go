package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	MessageStream MessageStreamConfig
	HttpClient    HttpClientConfig
	UserService   UserServiceConfig
	Storage       StorageConfig
}

type HttpServerConfig struct {
	Port string `envconfig:"http_server_port" default:"3000"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"db_host" default:"localhost"`
	Port     string `envconfig:"db_port" default:"5432"`
	User     string `envconfig:"db_user" default:"postgres"`
	Password string `envconfig:"db_password" default:"postgres"`
	Name     string `envconfig:"db_name" default:"wild_oasis"`
	SSLMode  string `envconfig:"db_ssl_mode" default:"disable"`
}

type RedisConfig struct {
	Host     string `envconfig:"redis_host" default:"localhost"`
	Port     string `envconfig:"redis_port" default:"6379"`
	Password string `envconfig:"redis_password" default:""`
	DB       int    `envconfig:"redis_db" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"amqp_host" default:"localhost"`
	Port     string `envconfig:"amqp_port" default:"5672"`
	User     string `envconfig:"amqp_user" default:"guest"`
	Password string `envconfig:"amqp_password" default:"guest"`
}

type HttpClientConfig struct {
	Type               string  `envconfig:"http_client_type" default:"consecutive"`
	Timeout            int     `envconfig:"http_client_timeout" default:"30"`
	ConsecutiveFailure int64   `envconfig:"http_client_consecutive_failure" default:"5"`
	ErrorRate          float64 `envconfig:"http_client_error_rate" default:"0.65"`
	MinimumSamples     int64   `envconfig:"http_client_minimum_samples" default:"100"`
}

type UserServiceConfig struct {
	Host string `envconfig:"user_service_host" default:"localhost"`
	Port string `envconfig:"user_service_port" default:"8081"`
}

type StorageConfig struct {
	BaseURL      string `envconfig:"storage_base_url" default:"http://localhost:8082"`
	APIKey       string `envconfig:"storage_api_key" default:""`
	CabinFolder  string `envconfig:"storage_cabin_folder" default:"wild-oasis/cabin"`
	AvatarFolder string `envconfig:"storage_avatar_folder" default:"wild-oasis/avatar"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return &cfg
}
