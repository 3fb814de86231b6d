package config

import (
	"io/fs"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	BackendLocal = "local"
	BackendS3    = "s3"
	BackendMinio = "minio"

	// WriteErrorsPropagate fails the request when the storage write fails.
	WriteErrorsPropagate = "propagate"
	// WriteErrorsSuppress logs the failure and still reports success.
	WriteErrorsSuppress = "suppress"
)

type Config struct {
	ServerPort      string        `mapstructure:"SERVER_PORT"`
	ReadTimeout     time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `mapstructure:"WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	StorageBackend     string `mapstructure:"STORAGE_BACKEND"`
	StorageDir         string `mapstructure:"STORAGE_DIR"`
	StorageCreateDir   bool   `mapstructure:"STORAGE_CREATE_DIR"`
	StorageWriteErrors string `mapstructure:"STORAGE_WRITE_ERRORS"`

	MaxUploadBytes       int64 `mapstructure:"MAX_UPLOAD_BYTES"`
	MultipartMemoryBytes int64 `mapstructure:"MULTIPART_MEMORY_BYTES"`

	S3Bucket          string `mapstructure:"S3_BUCKET"`
	S3Region          string `mapstructure:"S3_REGION"`
	S3Endpoint        string `mapstructure:"S3_ENDPOINT"`
	S3AccessKeyID     string `mapstructure:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `mapstructure:"S3_SECRET_ACCESS_KEY"`
	S3Prefix          string `mapstructure:"S3_PREFIX"`
	S3UseSSL          bool   `mapstructure:"S3_USE_SSL"`

	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	MetricsEnabled     bool     `mapstructure:"METRICS_ENABLED"`
	SwaggerEnabled     bool     `mapstructure:"SWAGGER_ENABLED"`
}

var defaults = map[string]any{
	"SERVER_PORT":      "8080",
	"READ_TIMEOUT":     15 * time.Second,
	"WRITE_TIMEOUT":    15 * time.Second,
	"SHUTDOWN_TIMEOUT": 5 * time.Second,

	"LOG_LEVEL":  "info",
	"LOG_FORMAT": "json",

	"STORAGE_BACKEND":      BackendLocal,
	"STORAGE_DIR":          "./uploads",
	"STORAGE_CREATE_DIR":   true,
	"STORAGE_WRITE_ERRORS": WriteErrorsPropagate,

	"MAX_UPLOAD_BYTES":       int64(10 << 20),
	"MULTIPART_MEMORY_BYTES": int64(32 << 20),

	"S3_BUCKET":            "",
	"S3_REGION":            "us-east-1",
	"S3_ENDPOINT":          "",
	"S3_ACCESS_KEY_ID":     "",
	"S3_SECRET_ACCESS_KEY": "",
	"S3_PREFIX":            "",
	"S3_USE_SSL":           false,

	"CORS_ALLOWED_ORIGINS": []string{"*"},
	"METRICS_ENABLED":      true,
	"SWAGGER_ENABLED":      true,
}

// flagKeys maps command line flag names onto config keys.
var flagKeys = map[string]string{
	"port":            "SERVER_PORT",
	"storage-dir":     "STORAGE_DIR",
	"storage-backend": "STORAGE_BACKEND",
	"log-level":       "LOG_LEVEL",
}

// Load reads configFile (a .env file by default) and the environment. A missing
// file is not an error. Flags present in the set override both.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if strings.HasSuffix(configFile, ".env") {
			v.SetConfigType("env")
		}
	}
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	if configFile != "" {
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "read config %s", configFile)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) normalize() {
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	c.StorageWriteErrors = strings.ToLower(strings.TrimSpace(c.StorageWriteErrors))
	c.S3Prefix = strings.Trim(c.S3Prefix, "/")

	origins := c.CORSAllowedOrigins[:0]
	for _, o := range c.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSAllowedOrigins = origins
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.ServerPort == "" {
		result = multierror.Append(result, errors.New("SERVER_PORT is required"))
	}

	switch c.StorageBackend {
	case BackendLocal:
		if c.StorageDir == "" {
			result = multierror.Append(result, errors.New("STORAGE_DIR is required for local storage"))
		}
	case BackendS3, BackendMinio:
		if c.S3Bucket == "" {
			result = multierror.Append(result, errors.Errorf("S3_BUCKET is required for %s storage", c.StorageBackend))
		}
		if c.StorageBackend == BackendMinio {
			if c.S3Endpoint == "" {
				result = multierror.Append(result, errors.New("S3_ENDPOINT is required for minio storage"))
			}
			if c.S3AccessKeyID == "" || c.S3SecretAccessKey == "" {
				result = multierror.Append(result, errors.New("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are required for minio storage"))
			}
		}
	default:
		result = multierror.Append(result, errors.Errorf("unsupported STORAGE_BACKEND %q", c.StorageBackend))
	}

	switch c.StorageWriteErrors {
	case WriteErrorsPropagate, WriteErrorsSuppress:
	default:
		result = multierror.Append(result, errors.Errorf("unsupported STORAGE_WRITE_ERRORS %q", c.StorageWriteErrors))
	}

	if c.MaxUploadBytes < 0 {
		result = multierror.Append(result, errors.New("MAX_UPLOAD_BYTES must not be negative"))
	}
	if c.MultipartMemoryBytes <= 0 {
		result = multierror.Append(result, errors.New("MULTIPART_MEMORY_BYTES must be positive"))
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		result = multierror.Append(result, errors.Errorf("unsupported LOG_FORMAT %q", c.LogFormat))
	}

	return result.ErrorOrNil()
}

// SuppressWriteErrors reports whether storage failures are hidden from clients.
func (c *Config) SuppressWriteErrors() bool {
	return c.StorageWriteErrors == WriteErrorsSuppress
}
