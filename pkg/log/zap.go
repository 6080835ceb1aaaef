package log

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction  = "production"
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	var encCfg zapcore.EncoderConfig
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// with attaches request-scoped fields found in ctx.
func (z *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}
	s := z.sugar
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		s = s.With("trace_id", sc.TraceID().String())
	}
	if id := CorrelationID(ctx); id != "" {
		s = s.With("correlation_id", id)
	}
	return s
}

func (z *zapLogger) Debug(ctx context.Context, arg ...any) { z.with(ctx).Debug(arg...) }
func (z *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Debugf(template, arg...)
}
func (z *zapLogger) Info(ctx context.Context, arg ...any) { z.with(ctx).Info(arg...) }
func (z *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Infof(template, arg...)
}
func (z *zapLogger) Warn(ctx context.Context, arg ...any) { z.with(ctx).Warn(arg...) }
func (z *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Warnf(template, arg...)
}
func (z *zapLogger) Error(ctx context.Context, arg ...any) { z.with(ctx).Error(arg...) }
func (z *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Errorf(template, arg...)
}
func (z *zapLogger) DPanic(ctx context.Context, arg ...any) { z.with(ctx).DPanic(arg...) }
func (z *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).DPanicf(template, arg...)
}
func (z *zapLogger) Panic(ctx context.Context, arg ...any) { z.with(ctx).Panic(arg...) }
func (z *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Panicf(template, arg...)
}
func (z *zapLogger) Fatal(ctx context.Context, arg ...any) { z.with(ctx).Fatal(arg...) }
func (z *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Fatalf(template, arg...)
}
