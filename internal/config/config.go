package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// SecretsProviderAWS reads credentials from AWS Secrets Manager.
	SecretsProviderAWS = "aws"
	// SecretsProviderFile reads credentials from an age-sealed file.
	SecretsProviderFile = "file"
	// SecretsProviderEnv reads credentials from the configuration itself.
	SecretsProviderEnv = "env"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the Bluesky destination, credential retrieval, the job queue and graceful
// shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// Project names the deployment; it is part of the default secret ID.
	Project string `env:"PROJECT" env-default:"bskybridge" yaml:"project"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits the size of request bodies accepted by the API
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"bskybridge" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Bluesky configures the destination PDS and how posts are built
	Bluesky struct {
		// PDS is the base URL of the personal data server
		PDS string `env:"BLUESKY_PDS" env-default:"https://bsky.social" yaml:"pds"`
		// Limit is the maximum post length
		Limit int `env:"BLUESKY_LIMIT" env-default:"300" yaml:"limit"`
		// Ellipsis is appended to truncated posts
		Ellipsis string `env:"BLUESKY_ELLIPSIS" env-default:"..." yaml:"ellipsis"`
		// CountGraphemes measures length in grapheme clusters instead of code points
		CountGraphemes bool `env:"BLUESKY_COUNT_GRAPHEMES" env-default:"false" yaml:"countGraphemes"`
		// IsolateURLs puts every URL on its own line before posting
		IsolateURLs bool `env:"BLUESKY_ISOLATE_URLS" env-default:"false" yaml:"isolateUrls"`
		// Timeout bounds every request to the PDS
		Timeout time.Duration `env:"BLUESKY_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// ReuseSession keeps sessions across batches until shortly before they expire
		ReuseSession bool `env:"BLUESKY_REUSE_SESSION" env-default:"false" yaml:"reuseSession"`
		// SessionMargin is how long before expiry a reused session is dropped
		SessionMargin time.Duration `env:"BLUESKY_SESSION_MARGIN" env-default:"5m" yaml:"sessionMargin"`
	} `yaml:"bluesky"`

	// Secrets configures where the account credentials come from
	Secrets struct {
		// Provider is one of aws, file or env
		Provider string `env:"SECRETS_PROVIDER" env-default:"aws" yaml:"provider"`
		// SecretID is the AWS secret name; empty means ACCESS_TOKEN-<project>-<environment>
		SecretID string `env:"SECRETS_SECRET_ID" yaml:"secretId"`
		// Region is the AWS region; empty leaves it to the AWS config chain
		Region string `env:"SECRETS_REGION" yaml:"region"`
		// File is the path of the age-sealed secret document
		File string `env:"SECRETS_FILE" env-default:"secret.age" yaml:"file"`
		// IdentityFile is the path of the age identities able to open File
		IdentityFile string `env:"SECRETS_IDENTITY_FILE" env-default:"key.txt" yaml:"identityFile"`
		// Handle is the account handle used by the env provider
		Handle string `env:"BLUESKY_HANDLE" yaml:"handle"`
		// Password is the app password used by the env provider
		Password string `env:"BLUESKY_PASSWORD" yaml:"password"`
		// Cache fetches credentials once per process instead of once per batch
		Cache bool `env:"SECRETS_CACHE" env-default:"false" yaml:"cache"`
	} `yaml:"secrets"`

	// Queue configures the River job queue
	Queue struct {
		// MaxWorkers is the number of batches processed concurrently
		MaxWorkers int `env:"QUEUE_MAX_WORKERS" env-default:"1" yaml:"maxWorkers"`
		// MaxAttempts is how many times a failed batch is retried
		MaxAttempts int `env:"QUEUE_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// UniquePeriod is the window in which an identical batch is not enqueued twice
		UniquePeriod time.Duration `env:"QUEUE_UNIQUE_PERIOD" env-default:"1h" yaml:"uniquePeriod"`
	} `yaml:"queue"`

	// JWT configures API token verification and issuance
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Bridge configures batch processing
	Bridge struct {
		// TrackDeliveries records every post and skips messages already delivered.
		// It needs Postgres, so the lambda and post commands connect to the
		// database only while it is true. Set BRIDGE_TRACK_DELIVERIES=false to
		// run the lambda without a database.
		TrackDeliveries bool `env:"BRIDGE_TRACK_DELIVERIES" env-default:"true" yaml:"trackDeliveries"`
	} `yaml:"bridge"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv fills a Config from the environment only. It is used where no
// config file is shipped, such as the Lambda runtime.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	return &cfg, nil
}
