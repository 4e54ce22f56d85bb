// Package config provides shared configuration utilities and tuning constants.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt parses the environment variable named by the key as an int,
// returning fallback if it is unset.
func GetEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidSetting, key, value)
	}
	return n, nil
}

// GetEnvUint64 parses the environment variable named by the key as a uint64,
// returning fallback if it is unset.
func GetEnvUint64(key string, fallback uint64) (uint64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an unsigned integer", ErrInvalidSetting, key, value)
	}
	return n, nil
}
