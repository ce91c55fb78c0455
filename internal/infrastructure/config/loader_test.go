package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 9090
database:
  host: db.internal
  database: image2code
generation:
  timeout: 45
  modes:
    basic:
      model: test/basic
      cost: 10
    ultra:
      model: test/ultra
      cost: 30
payment:
  packages:
    - id: starter
      name: Starter
      credits: 100
      amount: 49900
      currency: INR
`

func loadSample(t *testing.T, env string) *Config {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(sampleYAML)))

	cfg, err := LoadFromViper(v, env)
	require.NoError(t, err)
	return cfg
}

func TestLoadFromViper_FileValuesAndDefaults(t *testing.T) {
	cfg := loadSample(t, Development)

	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 45*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQuery)
	assert.True(t, cfg.Generation.RefundOnFailure)
	assert.Equal(t, int64(5), cfg.Generation.ImproveCost)
	assert.Equal(t, int64(0), cfg.Credits.MinimumReserve)

	require.Contains(t, cfg.Generation.Modes, "ultra")
	assert.Equal(t, ModeConfig{Model: "test/ultra", Cost: 30}, cfg.Generation.Modes["ultra"])

	require.Len(t, cfg.Payment.Packages, 1)
	assert.Equal(t, int64(49900), cfg.Payment.Packages[0].Amount)
}

func TestLoadFromViper_EnvironmentOverrides(t *testing.T) {
	t.Setenv("I2C_DB_PASSWORD", "s3cret")
	t.Setenv("I2C_RAZORPAY_KEY_SECRET", "rzp_secret")
	t.Setenv("I2C_SERVER_PORT", "7070")
	t.Setenv("I2C_GENERATION_REFUND_ON_FAILURE", "false")
	t.Setenv("I2C_CREDITS_SIGNUP_BONUS", "0")

	cfg := loadSample(t, Development)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "rzp_secret", cfg.Razorpay.KeySecret)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.False(t, cfg.Generation.RefundOnFailure)
	assert.Equal(t, int64(0), cfg.Credits.SignupBonus)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("sample config is valid", func(t *testing.T) {
		assert.NoError(t, loadSample(t, Development).Validate())
	})

	t.Run("production requires provider credentials", func(t *testing.T) {
		cfg := loadSample(t, Production)
		assert.ErrorContains(t, cfg.Validate(), "openrouter")

		cfg.OpenRouter.APIKey = "key"
		assert.ErrorContains(t, cfg.Validate(), "razorpay")

		cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret = "id", "secret"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("auth without secret is rejected", func(t *testing.T) {
		cfg := loadSample(t, Development)
		cfg.Auth.Enabled = true
		assert.Error(t, cfg.Validate())
	})

	t.Run("mode without cost is rejected", func(t *testing.T) {
		cfg := loadSample(t, Development)
		cfg.Generation.Modes["basic"] = ModeConfig{Model: "x"}
		assert.ErrorContains(t, cfg.Validate(), "basic")
	})
}
