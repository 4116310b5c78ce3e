package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	MazeRows         int    // Default number of maze rows
	MazeCols         int    // Default number of maze columns
	MazeMaxDimension int    // Largest rows or cols accepted over HTTP
	MazeSeed         string // Fixed seed for generated mazes; empty means random
	ShareSecret      string // Secret key for signing share tokens; empty disables sharing
	ShareIssuer      string // Issuer claim for share tokens
	ShareTTLHours    int    // Lifetime of share tokens in hours
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:           getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:         getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		MazeRows:         getEnvAsIntWithDefault("MAZE_ROWS", 10),
		MazeCols:         getEnvAsIntWithDefault("MAZE_COLS", 10),
		MazeMaxDimension: getEnvAsIntWithDefault("MAZE_MAX_DIMENSION", 200),
		MazeSeed:         getEnvWithDefault("MAZE_SEED", ""),
		ShareSecret:      getEnvWithDefault("SHARE_SECRET", ""),
		ShareIssuer:      getEnvWithDefault("SHARE_ISSUER", "mazegen"),
		ShareTTLHours:    getEnvAsIntWithDefault("SHARE_TTL_HOURS", 168),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// falling back to defaultValue when unset. A value that cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
