package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// lookupEnv treats unset and blank variables alike so an empty line in .env keeps the default.
func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func getStringEnv(key string, defaultValue string) string {
	if value, ok := lookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getBoolEnv(key string, defaultValue bool) bool {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getDurationEnv reads an integer count of unit. Negative values fall back to the default.
func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	n := getIntEnv(key, defaultValue)
	if n < 0 {
		n = defaultValue
	}
	return time.Duration(n) * unit
}
