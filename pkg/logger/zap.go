package logger

import (
	"context"

	"go.uber.org/zap"
)

// ZapLogger — обёртка zap под контракт ports.Logger.
// Production-режим: JSON, уровень info; development: консоль, debug.
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger — конструктор; возвращает логгер и функцию сброса буферов.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		base *zap.Logger
		err  error
	)

	if isProd {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	l := &ZapLogger{base: base, sugar: base.Sugar()}
	cleanup := func() error { return l.base.Sync() }
	return l, cleanup, nil
}

func (z *ZapLogger) Infof(_ context.Context, format string, args ...any) {
	z.sugar.Infof(format, args...)
}

func (z *ZapLogger) Warnf(_ context.Context, format string, args ...any) {
	z.sugar.Warnf(format, args...)
}

func (z *ZapLogger) Errorf(_ context.Context, format string, args ...any) {
	z.sugar.Errorf(format, args...)
}

// Base — доступ к исходному *zap.Logger (для интеграций).
func (z *ZapLogger) Base() *zap.Logger { return z.base }
