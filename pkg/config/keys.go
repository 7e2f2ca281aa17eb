package config

// EnvPrefix is passed to envconfig; the struct tags already carry the full
// variable names, so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv    = "XXKIT_APP_ENV"
	EnvPort      = "XXKIT_APP_PORT"
	EnvDBDSN     = "XXKIT_DB_DSN"
	EnvDBHost    = "XXKIT_DB_HOST"
	EnvDBUser    = "XXKIT_DB_USER"
	EnvDBName    = "XXKIT_DB_NAME"
	EnvGCSBucket = "XXKIT_GCS_BUCKET_NAME"
	EnvGCSPublic = "XXKIT_GCS_PUBLIC_BASE_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
