package bootstrap

import (
	"testing"
	"time"

	"github.com/Lexv0lk/stregsystem/internal/pkg/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStoreConfig(t *testing.T) {
	type testCase struct {
		name string
		env  map[string]string

		expectedFn  func(t *testing.T, cfg StoreConfig)
		expectedErr bool
	}

	tests := []testCase{
		{
			name: "defaults",
			env:  map[string]string{},
			expectedFn: func(t *testing.T, cfg StoreConfig) {
				assert.Equal(t, DefaultStoreConfig(), cfg)
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				env.EnvHttpPort:                 ":9000",
				env.EnvDatabaseHost:             "db",
				env.EnvDatabaseSSL:              "true",
				env.EnvDatabaseMaxConns:         "12",
				env.EnvRunMigrations:            "false",
				env.EnvRequestTimeout:           "3s",
				env.EnvIdempotencyCacheCapacity: "64",
				env.EnvKafkaBrokers:             "kafka-1:9092, kafka-2:9092",
				env.EnvLogLevel:                 "debug",
			},
			expectedFn: func(t *testing.T, cfg StoreConfig) {
				assert.Equal(t, ":9000", cfg.HttpPort)
				assert.Equal(t, "db", cfg.DbSettings.Host)
				assert.True(t, cfg.DbSettings.SSlEnabled)
				assert.Equal(t, 12, cfg.DbMaxConns)
				assert.False(t, cfg.RunMigrations)
				assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
				assert.Equal(t, 64, cfg.IdempotencyCacheCapacity)
				assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
		{
			name:        "malformed duration",
			env:         map[string]string{env.EnvRequestTimeout: "soon"},
			expectedErr: true,
		},
		{
			name:        "zero cache capacity",
			env:         map[string]string{env.EnvIdempotencyCacheCapacity: "0"},
			expectedErr: true,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			for name, value := range tt.env {
				t.Setenv(name, value)
			}

			cfg, err := LoadStoreConfig()

			if tt.expectedErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.expectedFn(t, cfg)
		})
	}
}
