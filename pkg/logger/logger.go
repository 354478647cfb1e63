package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log *Logger
)

// Logger is a named sugared logger
type Logger struct {
	*zap.SugaredLogger
	LogsPath string
	Name     string
}

// Config represents configuration options for logger initialization
type Config struct {
	Debug     bool   // Enable debug logging
	TimeZone  string // Time zone name for timestamps (UTC, Europe/Moscow, etc.)
	LogToFile bool   // Enable logging to a file
	LogsDir   string // Set the directory for logs (default: current working directory)
}

// Init is a function to initialize logger with extended configuration
func Init(config Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// New builds a logger named "main" without touching the package logger
func New(config Config) (*Logger, error) {
	l := Logger{Name: "main"}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	// Set log directory, default to current working directory
	switch {
	case config.LogsDir == "":
		l.LogsPath = wd
	case filepath.IsAbs(config.LogsDir):
		l.LogsPath = config.LogsDir
	default:
		l.LogsPath = filepath.Join(wd, config.LogsDir)
	}

	location := time.UTC
	if config.TimeZone != "" {
		location, err = time.LoadLocation(config.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("invalid time zone %q: %w", config.TimeZone, err)
		}
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     timeEncoder(location),
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var level zapcore.Level
	if config.Debug {
		level = zapcore.DebugLevel
	} else {
		level = zapcore.InfoLevel
	}

	// Console encoder with colors
	consoleEncoderConfig := encoderConfig
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(consoleEncoderConfig)

	// File encoder without colors
	fileEncoderConfig := encoderConfig
	fileEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	fileEncoder := zapcore.NewJSONEncoder(fileEncoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level),
	}

	// Add file output if enabled
	if config.LogToFile {
		if err = os.MkdirAll(l.LogsPath, os.ModePerm); err != nil {
			return nil, err
		}
		mainLogPath := filepath.Join(l.LogsPath, fmt.Sprintf("%s.log", time.Now().In(location).Format("2006-01-02")))
		fileWriter, errOpenFile := os.OpenFile(mainLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if errOpenFile != nil {
			return nil, errOpenFile
		}
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(fileWriter), level))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	l.SugaredLogger = log.Named(l.Name).Sugar()

	return &l, nil
}

// Named returns a new logger with the specified name ("render", "cache", etc.)
func Named(name string) (*Logger, error) {
	if Log == nil {
		return nil, fmt.Errorf("logger is not initialized")
	}
	return Log.Named(name), nil
}

// Named returns a child logger
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.Named(name),
		LogsPath:      l.LogsPath,
		Name:          name,
	}
}

func timeEncoder(location *time.Location) zapcore.TimeEncoder {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(location).Format("2006-01-02 15:04:05"))
	}
}
