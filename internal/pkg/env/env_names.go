package env

const (
	EnvHttpPort = "HTTP_PORT"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"
	EnvDatabaseSSL      = "DB_SSL"
	EnvDatabaseMaxConns = "DB_MAX_CONNS"
	EnvRunMigrations    = "DB_RUN_MIGRATIONS"

	EnvRequestTimeout           = "REQUEST_TIMEOUT"
	EnvIdempotencyCacheCapacity = "IDEMPOTENCY_CACHE_CAPACITY"

	EnvKafkaBrokers   = "KAFKA_BROKERS"
	EnvKafkaSaleTopic = "KAFKA_SALE_TOPIC"

	EnvLogLevel = "LOG_LEVEL"
)
