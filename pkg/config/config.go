package config

import (
	"fmt"
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
	Registration  RegistrationConfig
	CORS          CORSConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"VANSTOCK_APP_ENV" required:"true"`
	Port         string `envconfig:"VANSTOCK_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"VANSTOCK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VANSTOCK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"VANSTOCK_DB_DSN"`

	Host     string `envconfig:"VANSTOCK_DB_HOST"`
	Port     int    `envconfig:"VANSTOCK_DB_PORT" default:"5432"`
	User     string `envconfig:"VANSTOCK_DB_USER"`
	Password string `envconfig:"VANSTOCK_DB_PASSWORD"`
	Name     string `envconfig:"VANSTOCK_DB_NAME"`
	SSLMode  string `envconfig:"VANSTOCK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"VANSTOCK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"VANSTOCK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"VANSTOCK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VANSTOCK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("either VANSTOCK_DB_DSN or host/user/name settings are required")
	}
	d.DSN = fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"VANSTOCK_REDIS_URL"`
	Address      string        `envconfig:"VANSTOCK_REDIS_ADDR"`
	Password     string        `envconfig:"VANSTOCK_REDIS_PASSWORD"`
	DB           int           `envconfig:"VANSTOCK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VANSTOCK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VANSTOCK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VANSTOCK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VANSTOCK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VANSTOCK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"VANSTOCK_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"VANSTOCK_JWT_ISSUER" default:"vanstock"`
	ExpirationMinutes int    `envconfig:"VANSTOCK_JWT_EXPIRATION_MINUTES" default:"60"`
	SessionTTLMinutes int    `envconfig:"VANSTOCK_SESSION_TTL_MINUTES" default:"43200"`
}

// SessionTTL returns the redis session lifetime configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"VANSTOCK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"VANSTOCK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"VANSTOCK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"VANSTOCK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"VANSTOCK_ARGON_KEY_LEN" default:"32"`
}

type RegistrationConfig struct {
	// AllowedEmailDomains restricts self-service registration to company addresses.
	AllowedEmailDomains []string `envconfig:"VANSTOCK_ALLOWED_EMAIL_DOMAINS" default:"promax.media.pl,promaxnet.pl"`
}

type CORSConfig struct {
	Origins []string `envconfig:"VANSTOCK_CORS_ORIGINS" default:"http://localhost:3000"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"VANSTOCK_LOGIN_RATE_WINDOW" default:"1m"`
	LoginIPLimit       int           `envconfig:"VANSTOCK_LOGIN_RATE_IP_LIMIT" default:"10"`
	LoginEmailLimit    int           `envconfig:"VANSTOCK_LOGIN_RATE_EMAIL_LIMIT" default:"5"`
	RegisterWindow     time.Duration `envconfig:"VANSTOCK_REGISTER_RATE_WINDOW" default:"1h"`
	RegisterIPLimit    int           `envconfig:"VANSTOCK_REGISTER_RATE_IP_LIMIT" default:"10"`
	RegisterEmailLimit int           `envconfig:"VANSTOCK_REGISTER_RATE_EMAIL_LIMIT" default:"3"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"VANSTOCK_AUTO_MIGRATE" default:"false"`
}
