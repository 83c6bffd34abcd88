package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DISEASE_API_BASE", "HTTP_TIMEOUT", "REDIS_ADDRESS", "CACHE_TTL", "SESSION_TTL", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	require.NoError(t, Load())
	assert.Equal(t, "8080", AppConfig.ServerPort)
	assert.Equal(t, "https://disease.sh/v3/covid-19", AppConfig.DiseaseAPIBase)
	assert.Equal(t, 15*time.Second, AppConfig.HTTPTimeout)
	assert.Equal(t, time.Minute, AppConfig.CacheTTL)
	assert.Equal(t, 30*time.Minute, AppConfig.SessionTTL)
	assert.Empty(t, AppConfig.RedisAddress)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("CACHE_TTL", "5s")
	t.Setenv("HTTP_TIMEOUT", "0s")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	defer logrus.SetLevel(logrus.InfoLevel)

	require.NoError(t, Load())
	assert.Equal(t, "9000", AppConfig.ServerPort)
	assert.Equal(t, "localhost:6379", AppConfig.RedisAddress)
	assert.Equal(t, 5*time.Second, AppConfig.CacheTTL)
	assert.Equal(t, time.Duration(0), AppConfig.HTTPTimeout)
	assert.Equal(t, 30*time.Minute, AppConfig.SessionTTL)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestLoadBadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	assert.Error(t, Load())
}
