package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	CORS     CORSConfig
	Monitor  MonitorConfig
}

type DatabaseConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type MonitorConfig struct {
	PingInterval time.Duration
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGODB_DATABASE", "hospital_directory"),
			ConnectTimeout: parseDuration(getEnv("MONGODB_CONNECT_TIMEOUT", "10s"), 10*time.Second),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Monitor: MonitorConfig{
			PingInterval: parseDuration(getEnv("STORE_PING_INTERVAL", "30s"), 30*time.Second),
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		fmt.Printf("Warning: Invalid duration format '%s', using default\n", s)
		return fallback
	}
	return duration
}

func parseOrigins(s string) []string {
	if s == "" {
		return []string{}
	}

	origins := []string{}
	current := ""
	for _, char := range s {
		if char == ',' {
			if current != "" {
				origins = append(origins, current)
				current = ""
			}
		} else {
			current += string(char)
		}
	}
	if current != "" {
		origins = append(origins, current)
	}

	return origins
}
