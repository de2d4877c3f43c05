package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "STOREFRONT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv          = "STOREFRONT_APP_ENV"
	EnvPort            = "STOREFRONT_APP_PORT"
	EnvDBDSN           = "STOREFRONT_DB_DSN"
	EnvDBDriver        = "STOREFRONT_DB_DRIVER"
	EnvDBHost          = "STOREFRONT_DB_HOST"
	EnvDBUser          = "STOREFRONT_DB_USER"
	EnvDBName          = "STOREFRONT_DB_NAME"
	EnvRedisURL        = "STOREFRONT_REDIS_URL"
	EnvSessionSecret   = "STOREFRONT_SESSION_SECRET"
	EnvSessionIdleTTL  = "STOREFRONT_SESSION_IDLE_TTL"
	EnvCheckoutClear   = "STOREFRONT_CHECKOUT_CLEAR_CART"
	EnvNewsletterLimit = "STOREFRONT_NEWSLETTER_IP_LIMIT"
	EnvCORSOrigins     = "STOREFRONT_CORS_ALLOWED_ORIGINS"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	Session    SessionConfig
	Catalog    CatalogConfig
	Checkout   CheckoutConfig
	Newsletter NewsletterConfig
	Contact    ContactConfig
	CORS       CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Session.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"STOREFRONT_AUTO_MIGRATE" default:"true"`

	ShutdownTimeout time.Duration `envconfig:"STOREFRONT_SHUTDOWN_TIMEOUT" default:"15s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STOREFRONT_DB_DSN"`
	Driver string `envconfig:"STOREFRONT_DB_DRIVER" default:"sqlite"`

	LegacyHost     string `envconfig:"STOREFRONT_DB_HOST"`
	LegacyPort     int    `envconfig:"STOREFRONT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"STOREFRONT_DB_USER"`
	LegacyPassword string `envconfig:"STOREFRONT_DB_PASSWORD"`
	LegacyName     string `envconfig:"STOREFRONT_DB_NAME"`
	LegacySSLMode  string `envconfig:"STOREFRONT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STOREFRONT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STOREFRONT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STOREFRONT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STOREFRONT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// UsesSQLite reports whether the configured driver is the embedded SQLite engine.
func (db DBConfig) UsesSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(db.Driver), DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether any Redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type SessionConfig struct {
	Secret        string        `envconfig:"STOREFRONT_SESSION_SECRET" required:"true"`
	Issuer        string        `envconfig:"STOREFRONT_SESSION_ISSUER" default:"storefront"`
	TokenTTL      time.Duration `envconfig:"STOREFRONT_SESSION_TOKEN_TTL" default:"720h"`
	IdleTTL       time.Duration `envconfig:"STOREFRONT_SESSION_IDLE_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"STOREFRONT_SESSION_SWEEP_INTERVAL" default:"5m"`
	CookieName    string        `envconfig:"STOREFRONT_SESSION_COOKIE" default:"sf_session"`
	CookieSecure  bool          `envconfig:"STOREFRONT_SESSION_COOKIE_SECURE" default:"false"`
}

func (s SessionConfig) validate() error {
	if strings.TrimSpace(s.Secret) == "" {
		return fmt.Errorf("%s is required", EnvSessionSecret)
	}
	if s.TokenTTL <= 0 {
		return fmt.Errorf("session token ttl must be positive")
	}
	if s.IdleTTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvSessionIdleTTL)
	}
	return nil
}

type CatalogConfig struct {
	CurrencySymbol   string `envconfig:"STOREFRONT_CURRENCY_SYMBOL" default:"$"`
	PlaceholderImage string `envconfig:"STOREFRONT_PLACEHOLDER_IMAGE" default:"/assets/placeholder.png"`
	BestSellerCount  int    `envconfig:"STOREFRONT_BEST_SELLER_COUNT" default:"5"`
	ShowcaseLimit    int    `envconfig:"STOREFRONT_SHOWCASE_LIMIT" default:"10"`
}

type CheckoutConfig struct {
	ClearCartOnOrder bool `envconfig:"STOREFRONT_CHECKOUT_CLEAR_CART" default:"true"`
}

type NewsletterConfig struct {
	CouponCode string        `envconfig:"STOREFRONT_NEWSLETTER_COUPON" default:"WELCOME20"`
	Window     time.Duration `envconfig:"STOREFRONT_NEWSLETTER_WINDOW" default:"10m"`
	IPLimit    int           `envconfig:"STOREFRONT_NEWSLETTER_IP_LIMIT" default:"5"`
	EmailLimit int           `envconfig:"STOREFRONT_NEWSLETTER_EMAIL_LIMIT" default:"3"`
}

type ContactConfig struct {
	Email    string `envconfig:"STOREFRONT_CONTACT_EMAIL" default:"support@storefront.local"`
	Phone    string `envconfig:"STOREFRONT_CONTACT_PHONE" default:"+1 (555) 010-0199"`
	WhatsApp string `envconfig:"STOREFRONT_CONTACT_WHATSAPP" default:"+1 (555) 010-0199"`
	Address  string `envconfig:"STOREFRONT_CONTACT_ADDRESS" default:"123 Market Street, Springfield"`
	Hours    string `envconfig:"STOREFRONT_CONTACT_HOURS" default:"Mon-Fri 9:00-18:00"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"STOREFRONT_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if db.UsesSQLite() {
		db.DSN = "file::memory:?cache=shared"
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
