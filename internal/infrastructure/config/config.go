package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config is the runtime configuration shared by the API and towctl.
type Config struct {
	Port          int    `mapstructure:"port"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	Currency      string `mapstructure:"currency"`

	KV       KVConfig       `mapstructure:"kv"`
	Jobs     JobsConfig     `mapstructure:"jobs"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Graph    GraphConfig    `mapstructure:"graph"`
	CarJam   CarJamConfig   `mapstructure:"carjam"`
	Google   GoogleConfig   `mapstructure:"google"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Outbox   OutboxConfig   `mapstructure:"outbox"`
	Payout   PayoutConfig   `mapstructure:"payout"`
	Visitor  VisitorConfig  `mapstructure:"visitor"`
	Payments PaymentsConfig `mapstructure:"mercadopago"`
}

type KVConfig struct {
	Backend  string `mapstructure:"backend"`
	RedisURL string `mapstructure:"redis_url"`
	Table    string `mapstructure:"table"`
}

type JobsConfig struct {
	ListCap    int64 `mapstructure:"list_cap"`
	ScanWindow int64 `mapstructure:"scan_window"`
}

type AdminConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

type GraphConfig struct {
	TenantID         string `mapstructure:"tenant_id"`
	ClientID         string `mapstructure:"client_id"`
	ClientSecret     string `mapstructure:"client_secret"`
	Sender           string `mapstructure:"sender"`
	SMSGatewayDomain string `mapstructure:"sms_gateway_domain"`
}

type CarJamConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

type GoogleConfig struct {
	MapsAPIKey  string `mapstructure:"maps_api_key"`
	DistanceURL string `mapstructure:"distance_url"`
}

type PricingConfig struct {
	BaseFeeCents int64 `mapstructure:"base_fee_cents"`
	PerKmCents   int64 `mapstructure:"per_km_cents"`
	IncludedKm   int64 `mapstructure:"included_km"`
}

type OutboxConfig struct {
	Enabled       bool    `mapstructure:"enabled"`
	Schedule      string  `mapstructure:"schedule"`
	MaxAttempts   int     `mapstructure:"max_attempts"`
	RatePerSecond float64 `mapstructure:"rate_per_second"`
}

type PayoutConfig struct {
	PayerAccount string `mapstructure:"payer_account"`
	PayerName    string `mapstructure:"payer_name"`
}

type VisitorConfig struct {
	TTLHours int `mapstructure:"ttl_hours"`
}

type PaymentsConfig struct {
	AccessToken string `mapstructure:"access_token"`
}

// SetDefaults registers every key so AutomaticEnv can resolve it on Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("public_base_url", "http://localhost:8080")
	v.SetDefault("currency", "NZD")

	v.SetDefault("kv.backend", "memory")
	v.SetDefault("kv.redis_url", "redis://localhost:6379/0")
	v.SetDefault("kv.table", "towdispatch-kv")

	v.SetDefault("jobs.list_cap", 1000)
	v.SetDefault("jobs.scan_window", 500)

	v.SetDefault("admin.user", "admin")
	v.SetDefault("admin.password", "")

	v.SetDefault("graph.tenant_id", "")
	v.SetDefault("graph.client_id", "")
	v.SetDefault("graph.client_secret", "")
	v.SetDefault("graph.sender", "")
	v.SetDefault("graph.sms_gateway_domain", "sms.example.co.nz")

	v.SetDefault("carjam.api_key", "")
	v.SetDefault("carjam.base_url", "https://www.carjam.co.nz/a/vehicle:abcd")

	v.SetDefault("google.maps_api_key", "")
	v.SetDefault("google.distance_url", "https://maps.googleapis.com/maps/api/distancematrix/json")

	v.SetDefault("pricing.base_fee_cents", 9500)
	v.SetDefault("pricing.per_km_cents", 350)
	v.SetDefault("pricing.included_km", 10)

	v.SetDefault("outbox.enabled", true)
	v.SetDefault("outbox.schedule", "@every 30s")
	v.SetDefault("outbox.max_attempts", 6)
	v.SetDefault("outbox.rate_per_second", 2.0)

	v.SetDefault("payout.payer_account", "")
	v.SetDefault("payout.payer_name", "")

	v.SetDefault("visitor.ttl_hours", 720)

	v.SetDefault("mercadopago.access_token", "")
}

// Load resolves configuration from defaults, an optional file named by
// TOWDISPATCH_CONFIG and the environment (pricing.per_km_cents -> PRICING_PER_KM_CENTS).
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	bindLegacyEnv(v)

	if path := os.Getenv("TOWDISPATCH_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	return LoadWithViper(v)
}

func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if cfg.Jobs.ScanWindow <= 0 {
		cfg.Jobs.ScanWindow = 500
	}
	if cfg.Jobs.ListCap < cfg.Jobs.ScanWindow {
		cfg.Jobs.ListCap = cfg.Jobs.ScanWindow
	}
	return &cfg, nil
}

// bindLegacyEnv keeps the short env names already used by deployments.
func bindLegacyEnv(v *viper.Viper) {
	for key, env := range map[string]string{
		"kv.backend":               "KV_BACKEND",
		"kv.redis_url":             "REDIS_URL",
		"kv.table":                 "KV_TABLE",
		"jobs.list_cap":            "JOBS_LIST_CAP",
		"jobs.scan_window":         "JOBS_SCAN_WINDOW",
		"graph.sms_gateway_domain": "GRAPH_SMS_GATEWAY_DOMAIN",
		"google.maps_api_key":      "GOOGLE_MAPS_API_KEY",
		"visitor.ttl_hours":        "VISITOR_TTL_HOURS",
		"mercadopago.access_token": "MERCADOPAGO_ACCESS_TOKEN",
	} {
		_ = v.BindEnv(key, env)
	}
}
