// Package logging builds the zap logger used across the program.
//
// Logs go to stderr. Stdout carries only the program's console messages.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/yunet-facedetect/internal/config"
)

// DebugEnv enables debug logging when it parses true with config.ParseBool.
const DebugEnv = "FACEDETECT_DEBUG"

// NewLoggerConfig returns the console logger config at the given level.
func NewLoggerConfig(level zapcore.Level) zap.Config {
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// LevelFromEnv reads DebugEnv. Unset or unparsable values give InfoLevel.
func LevelFromEnv() zapcore.Level {
	v, ok := os.LookupEnv(DebugEnv)
	if !ok {
		return zapcore.InfoLevel
	}
	debug, err := config.ParseBool(v)
	if err != nil || !debug {
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

// NewLogger returns a named sugared logger at the given level.
func NewLogger(name string, level zapcore.Level) (*zap.SugaredLogger, error) {
	logger, err := NewLoggerConfig(level).Build()
	if err != nil {
		return nil, err
	}
	return logger.Named(name).Sugar(), nil
}
