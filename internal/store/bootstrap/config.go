package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/Lexv0lk/stregsystem/internal/pkg/database"
	"github.com/Lexv0lk/stregsystem/internal/pkg/env"
)

type StoreConfig struct {
	DbSettings    database.PostgresSettings
	DbMaxConns    int
	RunMigrations bool

	HttpPort                 string
	RequestTimeout           time.Duration
	IdempotencyCacheCapacity int

	// KafkaBrokers may be empty, sale events are then not published.
	KafkaBrokers   []string
	KafkaSaleTopic string

	LogLevel string
}

func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		DbSettings: database.PostgresSettings{
			User:       "admin",
			Password:   "password",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "stregsystem",
			SSlEnabled: false,
		},
		DbMaxConns:               5,
		RunMigrations:            true,
		HttpPort:                 ":8080",
		RequestTimeout:           10 * time.Second,
		IdempotencyCacheCapacity: 1024,
		KafkaSaleTopic:           "stregsystem.sales",
		LogLevel:                 "info",
	}
}

// LoadStoreConfig overrides the defaults with whatever is set in the environment.
func LoadStoreConfig() (StoreConfig, error) {
	cfg := DefaultStoreConfig()

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetFromEnv(env.EnvKafkaSaleTopic, &cfg.KafkaSaleTopic)
	env.TrySetFromEnv(env.EnvLogLevel, &cfg.LogLevel)
	env.TrySetListFromEnv(env.EnvKafkaBrokers, &cfg.KafkaBrokers)

	err := errors.Join(
		env.TrySetBoolFromEnv(env.EnvDatabaseSSL, &cfg.DbSettings.SSlEnabled),
		env.TrySetIntFromEnv(env.EnvDatabaseMaxConns, &cfg.DbMaxConns),
		env.TrySetBoolFromEnv(env.EnvRunMigrations, &cfg.RunMigrations),
		env.TrySetDurationFromEnv(env.EnvRequestTimeout, &cfg.RequestTimeout),
		env.TrySetIntFromEnv(env.EnvIdempotencyCacheCapacity, &cfg.IdempotencyCacheCapacity),
	)
	if err != nil {
		return StoreConfig{}, fmt.Errorf("failed to load store config: %w", err)
	}

	if cfg.DbMaxConns <= 0 || cfg.IdempotencyCacheCapacity <= 0 || cfg.RequestTimeout <= 0 {
		return StoreConfig{}, errors.New("failed to load store config: pool size, cache capacity and request timeout must be positive")
	}

	return cfg, nil
}
