package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{Addr: "localhost:6379"}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "0.08", cfg.Checkout.TaxRate)
	assert.Equal(t, "USD", cfg.Checkout.Currency)
	require.NotNil(t, cfg.Checkout.PaymentDelay)
	assert.Equal(t, 2*time.Second, *cfg.Checkout.PaymentDelay)
	assert.Equal(t, int64(10<<20), cfg.Storage.MaxUploadSize)
	assert.Equal(t, defaultStorageURL, cfg.Storage.BucketURL)
	assert.Equal(t, "/uploads", cfg.Storage.PublicPath)
	assert.Equal(t, 8090, cfg.Notifier.Port)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	delay := time.Millisecond
	cfg := &Config{
		Checkout: &CheckoutConfig{TaxRate: "0.1", Currency: "EUR", PaymentDelay: &delay},
		Notifier: &NotifierConfig{Port: 9001},
	}

	applyDefaults(cfg)

	assert.Equal(t, "0.1", cfg.Checkout.TaxRate)
	assert.Equal(t, "EUR", cfg.Checkout.Currency)
	assert.Equal(t, time.Millisecond, *cfg.Checkout.PaymentDelay)
	assert.Equal(t, 9001, cfg.Notifier.Port)
	assert.Nil(t, cfg.Redis)
}

func TestApplyDefaults_ZeroPaymentDelayIsKept(t *testing.T) {
	var delay time.Duration
	cfg := &Config{Checkout: &CheckoutConfig{PaymentDelay: &delay}}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Checkout.PaymentDelay)
	assert.Zero(t, *cfg.Checkout.PaymentDelay)
}

func TestCheckoutConfig_TaxRateDecimal(t *testing.T) {
	rate, err := (&CheckoutConfig{TaxRate: "0.0825"}).TaxRateDecimal()
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.0825")))

	_, err = (&CheckoutConfig{TaxRate: "eight percent"}).TaxRateDecimal()
	assert.Error(t, err)

	_, err = (&CheckoutConfig{TaxRate: "-0.01"}).TaxRateDecimal()
	assert.Error(t, err)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")
	t.Setenv("POSTGRES_REPLICAS_1_PORT", "5434")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 2)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "5434", replicas[1].Port)
}

func TestLoadWithEnv_EnvironmentOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
http:
  port: 8080
  timeouts:
    readTimeout: 15s
secretKey:
  access: ""
  refresh: ""
checkout:
  taxRate: "0.08"
  paymentDelay: 0s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))

	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SECRETKEY_ACCESS", "access-from-env")
	t.Setenv("CHECKOUT_TAXRATE", "0.1")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "access-from-env", cfg.SecretKey.Access)
	assert.Empty(t, cfg.SecretKey.Refresh)
	require.NotNil(t, cfg.Checkout)
	assert.Equal(t, "0.1", cfg.Checkout.TaxRate)

	applyDefaults(cfg)
	require.NotNil(t, cfg.Checkout.PaymentDelay)
	assert.Zero(t, *cfg.Checkout.PaymentDelay)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}
