package log

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é a fachada de log usada por handlers, middlewares e serviços de score
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

type contextKey string

const (
	CorrelationIDKey   contextKey = "correlation_id"
	correlationIDField            = "correlation_id"
)

// logger herda os métodos de nível do *logrus.Entry e só redefine os que anexam campos
type logger struct {
	*logrus.Entry
}

var L Logger = wrap(logrus.StandardLogger())

func wrap(base *logrus.Logger) *logger {
	return &logger{Entry: logrus.NewEntry(base)}
}

// IsDevelopment vale para APP_ENV vazio, "development" ou "dev"
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

func formatter() logrus.Formatter {
	if IsDevelopment() {
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339}
	}
	return &logrus.JSONFormatter{TimestampFormat: time.RFC3339}
}

// Setup configura o logger global; nível inválido vira info
func Setup(level string) {
	logrus.SetFormatter(formatter())

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	L = wrap(logrus.StandardLogger())
}

// Em desenvolvimento só estes campos chegam à saída
var developmentFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"period":           true,
	"dataset":          true,
	"operation":        true,
}

func keep(key string) bool {
	return !IsDevelopment() || developmentFields[key]
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if !keep(key) {
		return l
	}
	return &logger{Entry: l.Entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keep(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{Entry: l.Entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{Entry: l.Entry.WithError(err)}
}

// WithContext anexa o correlation_id guardado no contexto, se houver
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}
	if id := GetCorrelationID(ctx); id != "" {
		return l.WithField(correlationIDField, id)
	}
	return l
}

// WithCorrelationID gera um uuid para a requisição e o guarda no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	id := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, id), id
}

func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(CorrelationIDKey).(string)
	return id
}

func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
