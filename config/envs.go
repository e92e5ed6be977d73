package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeWidth        int    // Default number of columns
	MazeHeight       int    // Default number of rows
	MazeStrategy     string // Default generation strategy (ordered-edge, random-walk, wilson)
	MazeSeed         uint64 // Seed for the random source; 0 picks one from the clock
	MazeDisjointSets bool   // Track reachability with union-find instead of flood fill
	MazeMaxAttempts  int    // Cap on random-walk samples; 0 is unbounded
	MazeMaxDimension int    // Largest width or height the service accepts
	MazeCellSize     int    // PNG cell side in pixels
	MazeOutput       string // PNG output path for a one-shot run
	MazeJSONOutput   string // Optional JSON output path for a one-shot run
	MazePrintASCII   bool   // Print the maze to stdout after a one-shot run
	Serve            bool   // Serve the HTTP API instead of rendering once
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	LogLevel         string // Minimum level written by loggers
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

	return load()
}

// load reads the configuration from the current environment.
func load() Config {
	return Config{
		MazeWidth:        getEnvAsIntWithDefault("MAZE_WIDTH", 50),
		MazeHeight:       getEnvAsIntWithDefault("MAZE_HEIGHT", 40),
		MazeStrategy:     getEnvWithDefault("MAZE_STRATEGY", "ordered-edge"),
		MazeSeed:         getEnvAsUint64WithDefault("MAZE_SEED", 0),
		MazeDisjointSets: getEnvAsBoolWithDefault("MAZE_DISJOINT_SETS", false),
		MazeMaxAttempts:  getEnvAsIntWithDefault("MAZE_MAX_ATTEMPTS", 0),
		MazeMaxDimension: getEnvAsIntWithDefault("MAZE_MAX_DIMENSION", 200),
		MazeCellSize:     getEnvAsIntWithDefault("MAZE_CELL_SIZE", 50),
		MazeOutput:       getEnvWithDefault("MAZE_OUTPUT", "out.png"),
		MazeJSONOutput:   getEnvWithDefault("MAZE_JSON_OUTPUT", ""),
		MazePrintASCII:   getEnvAsBoolWithDefault("MAZE_PRINT_ASCII", false),
		Serve:            getEnvAsBoolWithDefault("MAZE_SERVE", false),
		HostIP:           getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:         getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", "info"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or logs a fatal error if it cannot be parsed.
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

func getEnvAsUint64WithDefault(key string, defaultValue uint64) uint64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an unsigned integer: %v", key, err)
	}
	return value
}

func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}
