// Package logs wires the process-wide slog logger from configuration.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"catalog/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var levelNames = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type Params struct {
	fx.In

	Config *config.Config
}

// New builds the root slog.Logger. Output is JSON for log collectors;
// env.log.pretty switches to the text handler for local development.
func New(params Params) (*slog.Logger, error) {
	logCfg := params.Config.Env.Log

	level := slog.LevelInfo
	if logCfg.Level != "" {
		parsed, ok := levelNames[strings.ToLower(logCfg.Level)]
		if !ok {
			return nil, errors.Errorf("unknown log level: %s", logCfg.Level)
		}
		level = parsed
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if logCfg.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	if name := params.Config.Env.ServiceName; name != "" {
		logger = logger.With(slog.String("service", name))
	}

	return logger, nil
}
