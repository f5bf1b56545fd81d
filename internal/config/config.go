package config

import (
	"errors"
	"os"
	"strconv"
)

type Config struct {
	Port             string
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	JWTSecret        string
	RapidAPIKey      string
	OpenAIKey        string
	OperatorWorkers  int
}

// ErrMissingJWTSecret is returned when no session secret is configured.
// The server cannot namespace ledgers per user without it.
var ErrMissingJWTSecret = errors.New("config: LEDGER_JWT_SECRET is required")

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		OperatorWorkers:  4,
	}

	envPort := os.Getenv("PORT")
	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := strconv.Atoi(envOperatorWorkers)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = workers
	}

	env.JWTSecret = os.Getenv("LEDGER_JWT_SECRET")
	if len(env.JWTSecret) == 0 {
		return nil, ErrMissingJWTSecret
	}

	// Optional integrations. Handlers that need them report the feature as
	// unavailable instead of failing startup.
	env.RapidAPIKey = os.Getenv("RAPIDAPI_KEY")
	env.OpenAIKey = os.Getenv("OPENAI_API_KEY")

	return &env, nil
}

// ConnectionString builds the Postgres DSN used by both the server and the
// migration runner.
func (c *Config) ConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
