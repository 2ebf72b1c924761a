package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

func (l LogLevel) ToSlog() slog.Level {
	switch LogLevel(strings.ToUpper(string(l))) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type LogFormat string

const (
	LogFormatPlaintext LogFormat = "plaintext"
	LogFormatJSON      LogFormat = "json"
)

type AppEnv string

const (
	AppEnvDev        AppEnv = "dev"
	AppEnvProduction AppEnv = "production"
)

const (
	DefaultLookupURL = "https://viacep.com.br/ws/"
	DefaultLang      = "pt-BR"
)

type Config struct {
	App    AppConfig
	Sentry SentryConfig
	Log    LogConfig
	Store  StoreConfig
	Lookup LookupConfig
}

type AppConfig struct {
	Debug        bool
	Name         string `default:"storefront"`
	Env          AppEnv `default:"production"`
	Version      string
	FallbackLang string `default:"pt-BR"`
}

type SentryConfig struct {
	Enabled    bool
	DSN        string
	SampleRate float64
}

type LogConfig struct {
	Format  LogFormat `default:"plaintext"`
	Level   LogLevel
	Verbose bool
}

// StoreConfig points to the store backend that owns carts and shipping quotes.
type StoreConfig struct {
	URL       string
	CSRFToken string `mapstructure:"CSRFTOKEN"`
	// Device identifies an anonymous customer, a new one is generated when empty
	DeviceID string `mapstructure:"DEVICEID"`
	Timeout  uint32 // in seconds, 0 disables the timeout
}

// LookupConfig points to the external postal code directory.
type LookupConfig struct {
	URL     string `default:"https://viacep.com.br/ws/"`
	Timeout uint32 // in seconds, 0 disables the timeout
}

func (c StoreConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func (c LookupConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func (c *Config) IsTest() bool {
	return flag.Lookup("test.v") != nil || strings.HasSuffix(os.Args[0], ".test") ||
		strings.Contains(os.Args[0], "/_test/")
}

func setDefaults(reader *viper.Viper) {
	reader.SetDefault("App_Name", "storefront")
	reader.SetDefault("App_Env", string(AppEnvProduction))
	reader.SetDefault("App_FallbackLang", DefaultLang)
	reader.SetDefault("Log_Format", string(LogFormatPlaintext))
	reader.SetDefault("Log_Level", string(LogLevelInfo))
	reader.SetDefault("Lookup_URL", DefaultLookupURL)
	// Keys need to be known to viper before AutomaticEnv picks them up in Unmarshal
	for _, key := range []string{
		"App_Debug", "App_Version",
		"Sentry_Enabled", "Sentry_DSN", "Sentry_SampleRate",
		"Log_Verbose",
		"Store_URL", "Store_CSRFToken", "Store_DeviceID", "Store_Timeout",
		"Lookup_Timeout",
	} {
		reader.SetDefault(key, nil)
	}
}

// Load the configuration file from the specified filesystem.
// The config.toml file is optional, every value can be set through the environment as well
// (e.g. STORE_CSRFTOKEN).
// You can specify additional .env files to load, by default this only checks for ".env" in the
// current working directory.
func Load(configFS fs.FS, dotenvFiles ...string) (*Config, error) {
	reader := viper.NewWithOptions(viper.KeyDelimiter("_"))
	reader.SetConfigType("toml")
	setDefaults(reader)

	file, err := configFS.Open("config.toml")
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No config.toml found, using defaults and environment")
	} else if err != nil {
		return nil, fmt.Errorf("could not open config.toml: %w", err)
	} else {
		defer file.Close()
		if err = reader.ReadConfig(file); err != nil {
			return nil, fmt.Errorf("could not load the app configuration: %w", err)
		}
	}

	// Environment override
	err = godotenv.Load(dotenvFiles...)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("No .env file found, continuing...")
	} else if err != nil {
		return nil, fmt.Errorf(".env file found, but could not load it: %w", err)
	}
	reader.AutomaticEnv()

	var config Config
	if err := reader.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("invalid config format: %w", err)
	}

	if config.App.Debug && !config.IsTest() {
		slog.Warn("APP_DEBUG is turned on, do not run this mode in production!")
	}

	return &config, nil
}
