package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full process configuration. Values come from defaults, then
// the optional YAML file named by CONFIG_FILE, then environment variables.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	JWT       JWTConfig       `yaml:"jwt"`
	Mpesa     MpesaConfig     `yaml:"mpesa"`
	SMS       SMSConfig       `yaml:"sms"`
	Store     StoreConfig     `yaml:"store"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port        int      `yaml:"port"`
	Env         string   `yaml:"env"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type JWTConfig struct {
	Secret        string `yaml:"secret"`
	ExpiryMinutes int    `yaml:"expiry_minutes"`
}

// MpesaConfig holds the Safaricom Daraja credentials.
type MpesaConfig struct {
	BaseURL        string `yaml:"base_url"`
	ConsumerKey    string `yaml:"consumer_key"`
	ConsumerSecret string `yaml:"consumer_secret"`
	ShortCode      string `yaml:"shortcode"`
	Passkey        string `yaml:"passkey"`
	CallbackURL    string `yaml:"callback_url"`
	CallbackToken  string `yaml:"callback_token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// SMSConfig holds the Africa's Talking credentials.
type SMSConfig struct {
	BaseURL        string `yaml:"base_url"`
	Username       string `yaml:"username"`
	APIKey         string `yaml:"api_key"`
	SenderID       string `yaml:"sender_id"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type StoreConfig struct {
	Driver   string `yaml:"driver"` // "dynamodb" or "mongo"
	MongoURI string `yaml:"mongo_uri"`
	MongoDB  string `yaml:"mongo_db"`
}

type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowMinutes int `yaml:"window_minutes"`
	Burst         int `yaml:"burst"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Env:         "development",
			CORSOrigins: []string{"http://localhost:3000", "http://localhost:5000"},
		},
		JWT: JWTConfig{ExpiryMinutes: 60},
		Mpesa: MpesaConfig{
			BaseURL:        "https://sandbox.safaricom.co.ke",
			TimeoutSeconds: 5,
		},
		SMS: SMSConfig{
			BaseURL:        "https://api.sandbox.africastalking.com",
			Username:       "sandbox",
			TimeoutSeconds: 5,
		},
		Store: StoreConfig{
			Driver:  "dynamodb",
			MongoDB: "polymesh",
		},
		RateLimit: RateLimitConfig{Requests: 200, WindowMinutes: 15, Burst: 20},
	}
}

// Load reads .env (if present), the optional YAML file and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func (c *Config) overrideWithEnv() {
	setInt(&c.Server.Port, "PORT")
	setString(&c.Server.Env, "APP_ENV")
	if val := os.Getenv("CORS_ORIGINS"); val != "" {
		c.Server.CORSOrigins = splitList(val)
	}

	setString(&c.JWT.Secret, "JWT_SECRET")
	setInt(&c.JWT.ExpiryMinutes, "JWT_EXPIRY_MINUTES")

	setString(&c.Mpesa.BaseURL, "MPESA_BASE_URL")
	setString(&c.Mpesa.ConsumerKey, "MPESA_CONSUMER_KEY")
	setString(&c.Mpesa.ConsumerSecret, "MPESA_CONSUMER_SECRET")
	setString(&c.Mpesa.ShortCode, "MPESA_SHORTCODE")
	setString(&c.Mpesa.Passkey, "MPESA_PASSKEY")
	setString(&c.Mpesa.CallbackURL, "MPESA_CALLBACK_URL")
	setString(&c.Mpesa.CallbackToken, "MPESA_CALLBACK_TOKEN")
	setInt(&c.Mpesa.TimeoutSeconds, "MPESA_TIMEOUT_SECONDS")

	setString(&c.SMS.BaseURL, "AT_BASE_URL")
	setString(&c.SMS.Username, "AT_USERNAME")
	setString(&c.SMS.APIKey, "AT_API_KEY")
	setString(&c.SMS.SenderID, "AT_SENDER_ID")
	setInt(&c.SMS.TimeoutSeconds, "AT_TIMEOUT_SECONDS")

	setString(&c.Store.Driver, "STORE_DRIVER")
	setString(&c.Store.MongoURI, "MONGODB_URI")
	setString(&c.Store.MongoDB, "MONGODB_DATABASE")

	setInt(&c.RateLimit.Requests, "RATE_LIMIT_REQUESTS")
	setInt(&c.RateLimit.WindowMinutes, "RATE_LIMIT_WINDOW_MINUTES")
	setInt(&c.RateLimit.Burst, "RATE_LIMIT_BURST")
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", c.Server.Port)
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWT.ExpiryMinutes <= 0 {
		return errors.New("jwt expiry must be positive")
	}
	switch c.Store.Driver {
	case "dynamodb":
	case "mongo":
		if c.Store.MongoURI == "" {
			return errors.New("MONGODB_URI is required when STORE_DRIVER=mongo")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.WindowMinutes <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("rate limit values must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool { return c.Server.Env == "production" }

func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWT.ExpiryMinutes) * time.Minute
}

func (c *Config) MpesaTimeout() time.Duration {
	return time.Duration(c.Mpesa.TimeoutSeconds) * time.Second
}

func (c *Config) SMSTimeout() time.Duration {
	return time.Duration(c.SMS.TimeoutSeconds) * time.Second
}

// RateWindow is the period over which RateLimit.Requests are allowed.
func (c *Config) RateWindow() time.Duration {
	return time.Duration(c.RateLimit.WindowMinutes) * time.Minute
}

func setString(dst *string, key string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}

func setInt(dst *int, key string) {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*dst = n
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
