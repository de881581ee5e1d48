package config

const (
	EnvPrefix = "CHRONOS"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvAppEnv    = "CHRONOS_APP_ENV"
	EnvPort      = "CHRONOS_APP_PORT"
	EnvDBDSN     = "CHRONOS_DB_DSN"
	EnvDBHost    = "CHRONOS_DB_HOST"
	EnvDBUser    = "CHRONOS_DB_USER"
	EnvDBName    = "CHRONOS_DB_NAME"
	EnvRedisURL  = "CHRONOS_REDIS_URL"
	EnvJWTSecret = "CHRONOS_JWT_SECRET"
	EnvJWTIssuer = "CHRONOS_JWT_ISSUER"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
