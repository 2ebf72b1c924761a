package bootstrap_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/prior-it/storefront/bootstrap"
	"github.com/prior-it/storefront/config"
	"github.com/prior-it/storefront/tests"
	"github.com/prior-it/storefront/zipform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLogger(t *testing.T) {
	t.Run("ok: json logs", func(t *testing.T) {
		var out bytes.Buffer
		logger := bootstrap.CreateLogger(&config.Config{
			Log: config.LogConfig{Format: config.LogFormatJSON, Level: config.LogLevelWarn},
		}, &out)

		logger.Info("hidden")
		logger.Warn("shown", "postal_code", "01310100")

		var entry map[string]any
		require.Nil(t, json.Unmarshal(out.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "01310100", entry["postal_code"])
	})

	t.Run("ok: plaintext logs without color outside of a terminal", func(t *testing.T) {
		var out bytes.Buffer
		logger := bootstrap.CreateLogger(&config.Config{
			Log: config.LogConfig{Format: config.LogFormatPlaintext},
		}, &out)

		logger.Info("Looking up postal code", "postal_code", "01310100")

		assert.Contains(t, out.String(), "Looking up postal code postal_code=01310100")
		assert.NotContains(t, out.String(), "\x1b[")
	})

	t.Run("ok: debug mode logs everything", func(t *testing.T) {
		var out bytes.Buffer
		logger := bootstrap.CreateLogger(&config.Config{
			App: config.AppConfig{Debug: true},
			Log: config.LogConfig{Format: config.LogFormatPlaintext, Level: config.LogLevelError},
		}, &out)

		logger.Debug("details")
		assert.Contains(t, out.String(), "details")
	})
}

func TestNew(t *testing.T) {
	t.Run("ok: lookup only", func(t *testing.T) {
		var out bytes.Buffer
		sf, err := bootstrap.New(&config.Config{}, &out)
		require.Nil(t, err)
		defer sf.Close()

		assert.NotNil(t, sf.Lookup)
		assert.Nil(t, sf.Store)
		assert.Nil(t, sf.Report)
		controller := sf.FormController(zipform.NewDocument())
		assert.Equal(t, zipform.VisibilityInitial, controller.Form().Visibility)
	})

	t.Run("ok: store backend", func(t *testing.T) {
		var out bytes.Buffer
		sf, err := bootstrap.New(&config.Config{
			Store: config.StoreConfig{URL: "http://localhost:8000", CSRFToken: tests.CSRFToken()},
		}, &out)
		require.Nil(t, err)
		assert.NotNil(t, sf.Store)
	})

	t.Run("err: store backend without token", func(t *testing.T) {
		var out bytes.Buffer
		_, err := bootstrap.New(&config.Config{
			Store: config.StoreConfig{URL: "http://localhost:8000"},
		}, &out)
		assert.NotNil(t, err)
	})
}
