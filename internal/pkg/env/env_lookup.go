package env

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from the given files into the process
// environment without overriding values that are already set. Missing files
// are not an error.
func LoadDotEnv(filenames ...string) error {
	existing := make([]string, 0, len(filenames))
	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			existing = append(existing, name)
		}
	}

	if len(existing) == 0 {
		return nil
	}

	return godotenv.Load(existing...)
}

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

func TrySetIntFromEnv(envName string, val *int) error {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return nil
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(envVal))
	if err != nil {
		return &InvalidValueError{Name: envName, Value: envVal, Err: err}
	}

	*val = parsed
	return nil
}

func TrySetBoolFromEnv(envName string, val *bool) error {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return nil
	}

	parsed, err := strconv.ParseBool(strings.TrimSpace(envVal))
	if err != nil {
		return &InvalidValueError{Name: envName, Value: envVal, Err: err}
	}

	*val = parsed
	return nil
}

func TrySetDurationFromEnv(envName string, val *time.Duration) error {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return nil
	}

	parsed, err := time.ParseDuration(strings.TrimSpace(envVal))
	if err != nil {
		return &InvalidValueError{Name: envName, Value: envVal, Err: err}
	}

	*val = parsed
	return nil
}

// TrySetListFromEnv splits a comma separated value, dropping empty entries.
func TrySetListFromEnv(envName string, val *[]string) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	parts := strings.Split(envVal, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	*val = out
}

type InvalidValueError struct {
	Name  string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return "invalid value " + strconv.Quote(e.Value) + " for " + e.Name + ": " + e.Err.Error()
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}
