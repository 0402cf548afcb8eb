package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	DataDir           string
	SnapshotKey       string
	PersistDebounceMS int
	LogLevel          string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		DataDir:           getEnv("DATA_DIR", "./data"),
		SnapshotKey:       getEnv("SNAPSHOT_KEY", "taskdeck.snapshot.json"),
		PersistDebounceMS: getEnvInt("PERSIST_DEBOUNCE_MS", 300),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, value, defaultVal)
		return defaultVal
	}
	return n
}
