package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Zhima-Mochi/cafe-patterns/internal/application/cafe"
	"github.com/Zhima-Mochi/cafe-patterns/internal/application/checkout"
	"github.com/Zhima-Mochi/cafe-patterns/internal/config"
	"github.com/Zhima-Mochi/cafe-patterns/internal/infrastructure/id"
	infraobs "github.com/Zhima-Mochi/cafe-patterns/internal/infrastructure/observability"
	"github.com/Zhima-Mochi/cafe-patterns/internal/infrastructure/observability/oteltrace"
	"github.com/Zhima-Mochi/cafe-patterns/internal/infrastructure/observability/prometrics"
	"github.com/Zhima-Mochi/cafe-patterns/internal/infrastructure/observability/zaplogger"
	"github.com/Zhima-Mochi/cafe-patterns/internal/infrastructure/payment"
	"github.com/Zhima-Mochi/cafe-patterns/internal/observability"
	"github.com/Zhima-Mochi/cafe-patterns/internal/presentation/console"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Getenv("CAFE_CONFIG_DIR"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	baseLogger, err := zaplogger.New(zaplogger.Options{
		Level:   cfg.LogLevel,
		LogFile: cfg.LogFile,
		Fixed: []observability.Field{
			observability.F("service", cfg.ServiceName),
			observability.F("env", cfg.Env),
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger.Zap())

	if cfg.Tracing {
		shutdown := oteltrace.Install()
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				baseLogger.Warn("tracer_shutdown_error", observability.F("error", err.Error()))
			}
		}()
	}

	reg := prometheus.NewRegistry()
	counters, histograms := prometrics.RegisterDefaults(prometrics.New(reg, ""))
	tel := infraobs.New(oteltrace.New(cfg.ServiceName), baseLogger, counters, histograms)

	out := os.Stdout
	dispatcher := console.NewDispatcher(out,
		cafe.NewDecoratorDemoUseCase(out, tel),
		checkout.NewAdapterDemoUseCase(out, payment.DemoCharges, tel),
		id.NewUUIDGenerator(),
		tel,
	)

	state, err := dispatcher.Run(context.Background(), os.Stdin)

	if cfg.MetricsDump {
		if dumpErr := prometrics.Dump(os.Stderr, reg); dumpErr != nil {
			baseLogger.Warn("metrics_dump_error", observability.F("error", dumpErr.Error()))
		}
	}

	if err != nil {
		baseLogger.Error("dispatch_failed",
			observability.F("state", state.String()),
			observability.F("error", err.Error()),
		)
		return 1
	}
	baseLogger.Debug("dispatch_done", observability.F("state", state.String()))
	return 0
}
