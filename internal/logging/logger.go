package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	level = new(slog.LevelVar)
	out   io.Writer = os.Stdout
)

type Logger struct {
	*slog.Logger
}

// SetLevel changes the level of every logger built by this package, including the ones already handed out
func SetLevel(levelName string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(levelName))); err != nil {
		return fmt.Errorf("unknown log level %q: %w", levelName, err)
	}
	level.Set(l)
	return nil
}

// SetOutput redirects loggers built afterwards to w
func SetOutput(w io.Writer) {
	out = w
}

func BuildLogger() *Logger {
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	logger = &Logger{Logger: logger.With("path", ctx.Request.URL.Path, "client_ip", ctx.ClientIP())}
	return logger
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}
