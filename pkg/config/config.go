package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	CORS         CORSConfig
	GCP          GCPConfig
	GCS          GCSConfig
	Upload       UploadConfig
	Stripe       StripeConfig
	Sendgrid     SendgridConfig
	Catalog      CatalogConfig
	FeatureFlags FeatureFlagsConfig
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
	Env          string `envconfig:"XXKIT_APP_ENV" required:"true"`
	Port         string `envconfig:"XXKIT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"XXKIT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"XXKIT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"XXKIT_DB_DSN"`
	Driver string `envconfig:"XXKIT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"XXKIT_DB_HOST"`
	LegacyPort     int    `envconfig:"XXKIT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"XXKIT_DB_USER"`
	LegacyPassword string `envconfig:"XXKIT_DB_PASSWORD"`
	LegacyName     string `envconfig:"XXKIT_DB_NAME"`
	LegacySSLMode  string `envconfig:"XXKIT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"XXKIT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"XXKIT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"XXKIT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"XXKIT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"XXKIT_CORS_ALLOWED_ORIGINS" default:"https://xxkit.com,https://www.xxkit.com,http://localhost:8787"`
	DefaultOrigin  string   `envconfig:"XXKIT_DEFAULT_ORIGIN" default:"https://xxkit.com"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"XXKIT_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"XXKIT_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"XXKIT_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName    string `envconfig:"XXKIT_GCS_BUCKET_NAME" required:"true"`
	PublicBaseURL string `envconfig:"XXKIT_GCS_PUBLIC_BASE_URL" required:"true"`
}

type UploadConfig struct {
	MaxUploadMB int `envconfig:"XXKIT_MAX_UPLOAD_MB" default:"10"`
}

type StripeConfig struct {
	SecretKey string `envconfig:"XXKIT_STRIPE_SECRET_KEY"`
	Env       string `envconfig:"XXKIT_STRIPE_ENV" default:"test"`
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}

type SendgridConfig struct {
	APIKey          string `envconfig:"XXKIT_SENDGRID_API_KEY"`
	DefaultFrom     string `envconfig:"XXKIT_SENDGRID_FROM_EMAIL" default:"no-reply@xxkit.com"`
	ContactReceiver string `envconfig:"XXKIT_CONTACT_RECEIVER" default:"owner@xxkit.com"`
}

type CatalogConfig struct {
	Path string `envconfig:"XXKIT_CATALOG_PATH" default:"config.json"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"XXKIT_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
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
