package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Refresh Token Config
	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string
	RefreshTokenCookiePath     string
	RefreshTokenSecret         string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	// Pricing providers (geo-IP and exchange rates)
	GeoIPBaseURL      string
	RatesBaseURL      string
	RatesAPIKey       string
	RatesCacheTTL     time.Duration
	LocationCacheTTL  time.Duration
	PricingHTTPClient time.Duration // request timeout shared by the pricing lookups

	// Invoicing provider (Zoho-style REST API)
	InvoicingBaseURL      string
	InvoicingTokenURL     string
	InvoicingClientID     string
	InvoicingClientSecret string
	InvoicingRefreshToken string
	InvoicingOrgID        string

	// SMTP notifications
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SalesInbox   string

	// Analytics
	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "swiftedge-portal")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "rtid")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/v1/auth")
	viper.SetDefault("REFRESH_TOKEN_SECRET", "default_insecure_refresh_secret_please_change_this_!@#$")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("GEOIP_BASE_URL", "https://ipapi.co")
	viper.SetDefault("RATES_BASE_URL", "https://openexchangerates.org/api")
	viper.SetDefault("RATES_API_KEY", "")
	viper.SetDefault("RATES_CACHE_TTL", "15m")
	viper.SetDefault("LOCATION_CACHE_TTL", "60m")
	viper.SetDefault("PRICING_HTTP_TIMEOUT", "10s")
	viper.SetDefault("INVOICING_BASE_URL", "")
	viper.SetDefault("INVOICING_TOKEN_URL", "https://accounts.zoho.com/oauth/v2/token")
	viper.SetDefault("INVOICING_CLIENT_ID", "")
	viper.SetDefault("INVOICING_CLIENT_SECRET", "")
	viper.SetDefault("INVOICING_REFRESH_TOKEN", "")
	viper.SetDefault("INVOICING_ORG_ID", "")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "no-reply@swiftedge.example")
	viper.SetDefault("SALES_INBOX", "sales@swiftedge.example")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiry, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiry = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiry)
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiry
	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookiePath = viper.GetString("REFRESH_TOKEN_COOKIE_PATH")
	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	cfg.GeoIPBaseURL = viper.GetString("GEOIP_BASE_URL")
	cfg.RatesBaseURL = viper.GetString("RATES_BASE_URL")
	cfg.RatesAPIKey = viper.GetString("RATES_API_KEY")
	cfg.RatesCacheTTL = parseDurationOr(viper.GetString("RATES_CACHE_TTL"), 15*time.Minute, "RATES_CACHE_TTL")
	cfg.LocationCacheTTL = parseDurationOr(viper.GetString("LOCATION_CACHE_TTL"), 60*time.Minute, "LOCATION_CACHE_TTL")
	cfg.PricingHTTPClient = parseDurationOr(viper.GetString("PRICING_HTTP_TIMEOUT"), 10*time.Second, "PRICING_HTTP_TIMEOUT")

	cfg.InvoicingBaseURL = viper.GetString("INVOICING_BASE_URL")
	cfg.InvoicingTokenURL = viper.GetString("INVOICING_TOKEN_URL")
	cfg.InvoicingClientID = viper.GetString("INVOICING_CLIENT_ID")
	cfg.InvoicingClientSecret = viper.GetString("INVOICING_CLIENT_SECRET")
	cfg.InvoicingRefreshToken = viper.GetString("INVOICING_REFRESH_TOKEN")
	cfg.InvoicingOrgID = viper.GetString("INVOICING_ORG_ID")
	if cfg.InvoicingBaseURL == "" {
		log.Println("Warning: INVOICING_BASE_URL not set. Invoicing endpoints will return errors.")
	}

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUsername = viper.GetString("SMTP_USERNAME")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.SMTPFrom = viper.GetString("SMTP_FROM")
	cfg.SalesInbox = viper.GetString("SALES_INBOX")
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set. Contact notifications will be logged only.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

func parseDurationOr(raw string, fallback time.Duration, name string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", name, raw, fallback)
		return fallback
	}
	return d
}
