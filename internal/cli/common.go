package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/danieljhkim/toolplan/internal/clock"
	"github.com/danieljhkim/toolplan/internal/config"
	"github.com/danieljhkim/toolplan/internal/engine"
	"github.com/danieljhkim/toolplan/internal/hash"
	"github.com/danieljhkim/toolplan/internal/toolset"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	paths := appPaths
	if paths == nil {
		var err error
		if paths, err = config.DefaultPaths(); err != nil {
			return nil, fmt.Errorf("failed to get config paths: %w", err)
		}
	}

	catalog, err := toolset.Load(paths.Toolsets, paths.Locales)
	if err != nil {
		return nil, fmt.Errorf("failed to load toolsets: %w", err)
	}

	return engine.New(catalog, hash.NewSHA256Hasher(), clock.System{}, logger), nil
}

// newLogger builds the production logger at level, or at debug when verbose
// is set. An empty level means warn.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl := zapcore.WarnLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// resolveLang picks the --lang flag over the configured language.
func resolveLang() string {
	if langFlag != "" {
		return langFlag
	}
	return appConfig.Lang
}

// translator returns the UI translator for the resolved language.
func translator(eng *engine.Engine) *toolset.Translator {
	return eng.Catalog().Translator(resolveLang())
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
