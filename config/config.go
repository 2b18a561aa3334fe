package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "12MB"
	defaultMaxUploadSize      = 10 << 20
	defaultTaxRate            = "0.08"
	defaultPaymentDelay       = 2 * time.Second
	defaultCurrency           = "USD"
	defaultStorageURL         = "file:///var/lib/verdeluxe/uploads"
	defaultPublicPath         = "/uploads"
	defaultCatalogCacheTTL    = 5 * time.Minute
	defaultNotifierPort       = 8090
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Redis backs the catalog cache. Leave addr empty to disable caching.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Storage holds plant photo binaries.
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Firebase verifies customer ID tokens and sends push notifications.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// QRCode configuration for AR preview QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Notifier configures the push worker (cmd/notifier).
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`
}

// AuthConfig defines admin authentication settings.
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
}

// PasswordStrengthConfig defines password strength requirements for admin accounts.
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the catalog cache connection.
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// StorageConfig defines where plant photos are stored.
type StorageConfig struct {
	// BucketURL is a gocloud.dev blob URL: file:///path, gs://bucket or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicPath is the URL prefix photos are served under.
	PublicPath string `json:"publicPath" yaml:"publicPath"`

	MaxUploadSize int64 `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// FirebaseConfig defines the Firebase Admin SDK settings.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the notifier worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// NotifierConfig defines the Pub/Sub push worker settings.
type NotifierConfig struct {
	Port int `json:"port" yaml:"port"`

	// PushAudience overrides the audience expected in push OIDC tokens.
	// Empty means the request URL is used.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// PushServiceAccount, when set, must match the email claim of the push token.
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
}

// CheckoutConfig defines pricing and payment simulation settings.
type CheckoutConfig struct {
	TaxRate  string `json:"taxRate" yaml:"taxRate"`
	Currency string `json:"currency" yaml:"currency"`
	// PaymentDelay is nil when unset; zero disables the simulated wait.
	PaymentDelay *time.Duration `json:"paymentDelay" yaml:"paymentDelay"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// TaxRateDecimal parses the configured tax rate.
func (c *CheckoutConfig) TaxRateDecimal() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.TaxRate)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid checkout tax rate %q", c.TaxRate)
	}
	if rate.IsNegative() {
		return decimal.Zero, errors.Errorf("checkout tax rate must not be negative: %s", c.TaxRate)
	}

	return rate, nil
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML, e.g. POSTGRES_SSLMODE -> postgres.sslMode.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if strings.TrimSpace(cfg.Checkout.TaxRate) == "" {
		cfg.Checkout.TaxRate = defaultTaxRate
	}
	if cfg.Checkout.Currency == "" {
		cfg.Checkout.Currency = defaultCurrency
	}
	if cfg.Checkout.PaymentDelay == nil {
		delay := defaultPaymentDelay
		cfg.Checkout.PaymentDelay = &delay
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = defaultStorageURL
	}
	// Keep below http.maxRequestBodySize so oversize photos reach the upload check.
	if cfg.Storage.MaxUploadSize == 0 {
		cfg.Storage.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.Storage.PublicPath == "" {
		cfg.Storage.PublicPath = defaultPublicPath
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{}
	}
	if cfg.Notifier.Port == 0 {
		cfg.Notifier.Port = defaultNotifierPort
	}

	if cfg.Redis != nil && cfg.Redis.TTL == 0 {
		cfg.Redis.TTL = defaultCatalogCacheTTL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
