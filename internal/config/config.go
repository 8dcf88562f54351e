package config

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Kafka    KafkaConfig
}

var (
	configInstance *Config
	once           sync.Once
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type JWTConfig struct {
	Secret         string
	ExpirationTime time.Duration
}

// KafkaConfig configures the mutation audit trail. An empty broker list
// disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func LoadConfig() (*Config, error) {
	once.Do(func() {
		viper.SetDefault("INTERVIEW_PORT", "8080")
		viper.SetDefault("INTERVIEW_READ_TIMEOUT", 30*time.Second)
		viper.SetDefault("INTERVIEW_WRITE_TIMEOUT", 30*time.Second)
		viper.SetDefault("INTERVIEW_IDLE_TIMEOUT", 60*time.Second)
		viper.SetDefault("INTERVIEW_JWT_SECRET", "secret")
		viper.SetDefault("INTERVIEW_JWT_EXPIRE", "24h")
		viper.SetDefault("KAFKA_BROKERS", "")
		viper.SetDefault("KAFKA_AUDIT_TOPIC", "interview-audit")
		viper.SetDefault("MYSQL_USER", "root")
		viper.SetDefault("MYSQL_PASSWORD", "password")
		viper.SetDefault("MYSQL_HOST", "localhost")
		viper.SetDefault("MYSQL_PORT", "3306")
		viper.SetDefault("MYSQL_DB", "interview")
		viper.AutomaticEnv()

		var brokers []string
		if raw := viper.GetString("KAFKA_BROKERS"); raw != "" {
			for _, broker := range strings.Split(raw, ",") {
				brokers = append(brokers, strings.TrimSpace(broker))
			}
		}

		configInstance = &Config{
			Server: ServerConfig{
				Host:         viper.GetString("INTERVIEW_HOST"),
				Port:         viper.GetString("INTERVIEW_PORT"),
				ReadTimeout:  viper.GetDuration("INTERVIEW_READ_TIMEOUT"),
				WriteTimeout: viper.GetDuration("INTERVIEW_WRITE_TIMEOUT"),
				IdleTimeout:  viper.GetDuration("INTERVIEW_IDLE_TIMEOUT"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("MYSQL_HOST"),
				Port:     viper.GetString("MYSQL_PORT"),
				User:     viper.GetString("MYSQL_USER"),
				Password: viper.GetString("MYSQL_PASSWORD"),
				DBName:   viper.GetString("MYSQL_DB"),
			},
			JWT: JWTConfig{
				Secret:         viper.GetString("INTERVIEW_JWT_SECRET"),
				ExpirationTime: viper.GetDuration("INTERVIEW_JWT_EXPIRE"),
			},
			Kafka: KafkaConfig{
				Brokers: brokers,
				Topic:   viper.GetString("KAFKA_AUDIT_TOPIC"),
			},
		}
	})

	return configInstance, nil
}
