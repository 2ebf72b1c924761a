// Package bootstrap wires the storefront components from the configuration: the logger, Sentry and
// the clients for the postal code directory and the store backend.
package bootstrap

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/getsentry/sentry-go"
	"github.com/lmittmann/tint"
	"github.com/prior-it/storefront/config"
	"github.com/prior-it/storefront/storeapi"
	"github.com/prior-it/storefront/viacep"
	"github.com/prior-it/storefront/zipform"
)

const sentryFlushTimeout = 2 * time.Second

// Storefront holds every component that was initialised through bootstrapping.
type Storefront struct {
	Config *config.Config
	Logger *slog.Logger
	Lookup *viacep.Client
	// Store is nil when no store backend is configured
	Store *storeapi.Client
	// Report forwards transport failures to Sentry, it is nil when Sentry is disabled
	Report zipform.ErrorReporter
}

// New initialises all default systems. Logs are written to logOutput.
//
// The store backend is optional since the postal code lookup does not need it, commands that talk
// to the backend should check Store before using it.
func New(cfg *config.Config, logOutput io.Writer) (*Storefront, error) {
	if cfg == nil {
		panic("You need to supply a config.Config value to bootstrap the storefront")
	}

	logger := CreateLogger(cfg, logOutput)
	sf := &Storefront{
		Config: cfg,
		Logger: logger,
		Lookup: viacep.NewFromConfig(cfg.Lookup).WithLogger(logger),
	}

	if cfg.Sentry.Enabled && initSentry(logger, cfg) {
		sf.Report = reportToSentry
	}

	if len(cfg.Store.URL) > 0 {
		store, err := storeapi.NewFromConfig(cfg.Store)
		if err != nil {
			return nil, err
		}
		sf.Store = store.WithLogger(logger)
	} else {
		logger.Debug("No store backend configured")
	}

	return sf, nil
}

// Close flushes buffered Sentry events.
func (sf *Storefront) Close() {
	if sf.Report != nil {
		sentry.Flush(sentryFlushTimeout)
	}
}

// FormController creates an address form controller that renders into doc.
func (sf *Storefront) FormController(doc zipform.Document) *zipform.Controller {
	controller := zipform.New(sf.Lookup, doc).WithLogger(sf.Logger)
	if sf.Report != nil {
		controller = controller.WithErrorReporter(sf.Report)
	}
	return controller
}

// CreateLogger creates the default logger. Plaintext logs are colored unless colors are disabled
// or the logs do not go to stdout.
func CreateLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var logger *slog.Logger
	level := cfg.Log.Level.ToSlog()
	if cfg.App.Debug {
		level = slog.LevelDebug
	}
	addSource := cfg.Log.Verbose && cfg.App.Debug

	switch cfg.Log.Format {
	case config.LogFormatJSON:
		logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: addSource,
		}))
	default:
		logger = slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			AddSource:  addSource,
			TimeFormat: time.TimeOnly,
			NoColor:    color.NoColor || w != os.Stdout,
		}))
	}
	slog.SetDefault(logger)
	return logger
}

func initSentry(logger *slog.Logger, cfg *config.Config) bool {
	logger.Debug("Trying to initialise Sentry")
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Debug:            cfg.App.Debug,
		AttachStacktrace: true,
		SampleRate:       cfg.Sentry.SampleRate,
		ServerName:       cfg.App.Name,
		Release:          cfg.App.Version,
		Environment:      string(cfg.App.Env),
	}); err != nil {
		logger.Error("Sentry initialization failed", "error", err)
		return false
	}
	logger.Debug("Sentry initialised")
	return true
}

func reportToSentry(err error) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "zipform")
		sentry.CaptureException(err)
	})
}
