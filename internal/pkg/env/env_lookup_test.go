package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrySetFromEnv(t *testing.T) {
	t.Setenv("STREG_TEST_STRING", "value")

	val := "default"
	TrySetFromEnv("STREG_TEST_STRING", &val)
	assert.Equal(t, "value", val)

	missing := "default"
	TrySetFromEnv("STREG_TEST_STRING_MISSING", &missing)
	assert.Equal(t, "default", missing)
}

func TestTrySetIntFromEnv(t *testing.T) {
	type testCase struct {
		name        string
		envValue    string
		expectedVal int
		expectErr   bool
	}

	tests := []testCase{
		{name: "valid", envValue: "42", expectedVal: 42},
		{name: "surrounding spaces", envValue: " 7 ", expectedVal: 7},
		{name: "invalid keeps default", envValue: "many", expectedVal: 5, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STREG_TEST_INT", tt.envValue)

			val := 5
			err := TrySetIntFromEnv("STREG_TEST_INT", &val)

			if tt.expectErr {
				var invalidErr *InvalidValueError
				assert.ErrorAs(t, err, &invalidErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedVal, val)
		})
	}
}

func TestTrySetDurationFromEnv(t *testing.T) {
	t.Setenv("STREG_TEST_DURATION", "3s")

	val := time.Second
	require.NoError(t, TrySetDurationFromEnv("STREG_TEST_DURATION", &val))
	assert.Equal(t, 3*time.Second, val)

	t.Setenv("STREG_TEST_DURATION", "soon")
	assert.Error(t, TrySetDurationFromEnv("STREG_TEST_DURATION", &val))
	assert.Equal(t, 3*time.Second, val)
}

func TestTrySetBoolFromEnv(t *testing.T) {
	t.Setenv("STREG_TEST_BOOL", "false")

	val := true
	require.NoError(t, TrySetBoolFromEnv("STREG_TEST_BOOL", &val))
	assert.False(t, val)
}

func TestTrySetListFromEnv(t *testing.T) {
	t.Setenv("STREG_TEST_LIST", "kafka-1:9092, ,kafka-2:9092,")

	var val []string
	TrySetListFromEnv("STREG_TEST_LIST", &val)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, val)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	t.Setenv("STREG_TEST_DOTENV_PRESET", "preset")
	require.NoError(t, os.WriteFile(path, []byte("STREG_TEST_DOTENV=from-file\nSTREG_TEST_DOTENV_PRESET=overridden\n"), 0o600))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	t.Cleanup(func() { _ = os.Unsetenv("STREG_TEST_DOTENV") })

	assert.Equal(t, "from-file", os.Getenv("STREG_TEST_DOTENV"))
	assert.Equal(t, "preset", os.Getenv("STREG_TEST_DOTENV_PRESET"))
}
