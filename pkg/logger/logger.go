// Package logger builds the application zap logger.
package logger

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the log sinks.
type Options struct {
	Level      string
	File       string
	MaxAgeDays int
	Compress   bool
}

// New returns a sugared logger writing to stderr and, when File is set, to a file
// rotated every calendar month (or at maxFileSizeMB) with backups kept MaxAgeDays.
func New(opts Options) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("02/01/06 15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level),
	}
	if opts.File != "" {
		rotator := newMonthlyRotator(&lumberjack.Logger{
			Filename: opts.File,
			MaxSize:  maxFileSizeMB,
			MaxAge:   opts.MaxAgeDays,
			Compress: opts.Compress,
		}, time.Now)
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), rotator, level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar(), nil
}
