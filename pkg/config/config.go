package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Cart          CartConfig
	Orders        OrdersConfig
	Relay         RelayConfig
	FeatureFlags  FeatureFlagsConfig
	CORS          CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CHRONOS_APP_ENV" required:"true"`
	Port         string `envconfig:"CHRONOS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CHRONOS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CHRONOS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CHRONOS_DB_DSN"`
	Driver string `envconfig:"CHRONOS_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"CHRONOS_DB_HOST"`
	Port     int    `envconfig:"CHRONOS_DB_PORT" default:"5432"`
	User     string `envconfig:"CHRONOS_DB_USER"`
	Password string `envconfig:"CHRONOS_DB_PASSWORD"`
	Name     string `envconfig:"CHRONOS_DB_NAME"`
	SSLMode  string `envconfig:"CHRONOS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CHRONOS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CHRONOS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CHRONOS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CHRONOS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CHRONOS_REDIS_URL" required:"true"`
	Address      string        `envconfig:"CHRONOS_REDIS_ADDR"`
	Password     string        `envconfig:"CHRONOS_REDIS_PASSWORD"`
	DB           int           `envconfig:"CHRONOS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CHRONOS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CHRONOS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CHRONOS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CHRONOS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CHRONOS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"CHRONOS_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"CHRONOS_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"CHRONOS_JWT_EXPIRATION_MINUTES" default:"30"`
	RefreshTokenTTLMinutes int    `envconfig:"CHRONOS_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"CHRONOS_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CHRONOS_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CHRONOS_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CHRONOS_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CHRONOS_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"CHRONOS_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"CHRONOS_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"CHRONOS_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"CHRONOS_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"CHRONOS_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"CHRONOS_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type CartConfig struct {
	TTL time.Duration `envconfig:"CHRONOS_CART_TTL" default:"720h"`
}

type OrdersConfig struct {
	CancelWindow time.Duration `envconfig:"CHRONOS_ORDER_CANCEL_WINDOW" default:"24h"`
}

// RelayConfig drives the best-effort inquiry email mirror.
type RelayConfig struct {
	APIKey  string `envconfig:"CHRONOS_RELAY_API_KEY"`
	From    string `envconfig:"CHRONOS_RELAY_FROM_EMAIL"`
	To      string `envconfig:"CHRONOS_RELAY_TO_EMAIL"`
	BaseURL string `envconfig:"CHRONOS_RELAY_BASE_URL" default:"https://api.resend.com"`
}

// Enabled reports whether the relay has enough configuration to send.
func (r RelayConfig) Enabled() bool {
	return r.APIKey != "" && r.From != "" && r.To != ""
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"CHRONOS_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CHRONOS_CORS_ALLOWED_ORIGINS" default:"*"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.Driver == DriverSQLite {
		return fmt.Errorf("%s is required when the sqlite driver is selected", EnvDBDSN)
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, key := range requiredDBEnvVars {
		if values[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}
	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
