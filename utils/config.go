package utils

import (
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/koding/multiconfig"
	"github.com/pkg/errors"
)

// EnvPrefix is prepended to every environment variable read by LoadConfig
const EnvPrefix = "BISTRO"

// Config holds the process configuration
type Config struct {
	Port        string `default:"5000"`
	MongoURI    string
	DBUser      string
	DBPass      string
	DBHost      string
	DBName      string `default:"bistroDb"`
	TokenSecret string `required:"true"`
	TokenTTL    int    `default:"60"` // minutes
	StrictAuth  bool   `default:"false"`
	LogLevel    string `default:"INFO"`
}

// legacyEnv maps unprefixed variables used by existing deployments onto Config fields.
// A BISTRO_* variable for the same field takes precedence.
var legacyEnv = []struct {
	name     string
	prefixed string
	field    func(*Config) *string
}{
	{"PORT", EnvPrefix + "_PORT", func(c *Config) *string { return &c.Port }},
	{"DB_USER", EnvPrefix + "_DB_USER", func(c *Config) *string { return &c.DBUser }},
	{"DB_PASS", EnvPrefix + "_DB_PASS", func(c *Config) *string { return &c.DBPass }},
	{"ACCESS_TOKEN_SECRET", EnvPrefix + "_TOKEN_SECRET", func(c *Config) *string { return &c.TokenSecret }},
}

// LoadConfig reads .env (if present) and resolves Config from tag defaults, legacy variables and BISTRO_* variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		Log.Info("No .env file found. Proceeding with environment variables.")
	}

	cfg := &Config{}
	loader := multiconfig.MultiLoader(
		&multiconfig.TagLoader{},
		&multiconfig.EnvironmentLoader{Prefix: EnvPrefix, CamelCase: true},
	)
	if err := loader.Load(cfg); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	for _, env := range legacyEnv {
		if v := os.Getenv(env.name); v != "" && os.Getenv(env.prefixed) == "" {
			*env.field(cfg) = v
		}
	}

	if err := (&multiconfig.RequiredValidator{}).Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	if cfg.TokenTTL <= 0 {
		return nil, errors.Errorf("validate config: token ttl must be positive, got %d", cfg.TokenTTL)
	}
	return cfg, nil
}

// TokenLifetime returns TokenTTL as a duration
func (c *Config) TokenLifetime() time.Duration {
	return time.Duration(c.TokenTTL) * time.Minute
}

// DatabaseURI returns the MongoDB connection string, or "" when no database is configured
func (c *Config) DatabaseURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	if c.DBUser == "" || c.DBHost == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.DBUser, c.DBPass),
		Host:     c.DBHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}
