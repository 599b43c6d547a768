package checkout

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Zhima-Mochi/cafe-patterns/internal/observability"
	"github.com/Zhima-Mochi/cafe-patterns/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	checkoutService  = "checkout-service"
	useCaseAdapter   = "checkout.adapter_demo"
	adapterSpanName  = "AdapterDemo"
	spanPrefix       = "UC."
	paymentFailed    = "PAYMENT_FAILED"
	outputWriteError = "OUTPUT_WRITE_FAILED"

	Header = "\n=== Интернет-магазин: система оплаты (Паттерн Адаптер) ==="
)

// ChargeSource builds the charges for one run. Processors it returns must be
// new instances writing to out.
type ChargeSource func(out io.Writer) []Charge

type AdapterDemoInput struct{}

type AdapterDemoResult struct {
	Processed []string // providers, in call order
}

// AdapterDemoUseCase pushes each charge through the uniform Processor contract.
type AdapterDemoUseCase struct {
	out     io.Writer
	charges ChargeSource
	tel     observability.Observability

	log          observability.Logger
	reqCounter   observability.Counter        // usecase_requests_total{use_case,outcome}
	durHistogram observability.BoundHistogram // usecase_duration_seconds{use_case}
}

func NewAdapterDemoUseCase(out io.Writer, charges ChargeSource, tel observability.Observability) *AdapterDemoUseCase {
	baseLog := observability.NopLogger()
	metricsProvider := observability.NopMetrics()
	if tel != nil {
		baseLog = tel.Logger()
		metricsProvider = tel.Metrics()
	}

	return &AdapterDemoUseCase{
		out:          out,
		charges:      charges,
		tel:          tel,
		log:          baseLog.With(observability.F("service", checkoutService)),
		reqCounter:   metricsProvider.Counter(observability.MUsecaseRequests),
		durHistogram: metricsProvider.Histogram(observability.MUsecaseDuration).Bind(observability.L("use_case", useCaseAdapter)),
	}
}

func (uc *AdapterDemoUseCase) Execute(ctx context.Context, _ AdapterDemoInput) (_ *AdapterDemoResult, err error) {
	logger := logctx.FromOr(ctx, uc.log).With(observability.F("use_case", useCaseAdapter))

	tracer := observability.NopTracer()
	metrics := observability.NopMetrics()
	if uc.tel != nil {
		tracer = uc.tel.Tracer()
		metrics = uc.tel.Metrics()
	}

	ctx, span := tracer.Start(ctx, spanPrefix+adapterSpanName,
		attribute.String("use_case", useCaseAdapter),
	)
	start := time.Now()
	outcome, statusText := "success", "OK"
	result := &AdapterDemoResult{}
	var failedProvider string

	defer func() {
		latency := time.Since(start).Seconds()

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, statusText)
		} else {
			span.SetStatus(codes.Ok, statusText)
		}
		span.End()

		uc.reqCounter.Add(1,
			observability.L("use_case", useCaseAdapter),
			observability.L("outcome", outcome),
		)
		uc.durHistogram.Observe(latency)

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", latency),
			observability.F("processed", len(result.Processed)),
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		if failedProvider != "" {
			fields = append(fields, observability.F("failed_provider", failedProvider))
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}
		logger.Info("use_case_done", fields...)
	}()

	if _, err = fmt.Fprintln(uc.out, Header); err != nil {
		outcome, statusText = "error", outputWriteError
		return nil, fmt.Errorf("checkout: write header: %w", err)
	}

	var charges []Charge
	if uc.charges != nil {
		charges = uc.charges(uc.out)
	}
	for _, c := range charges {
		p := instrument(c, tracer, metrics)
		if err = p.Process(ctx, c.Amount); err != nil {
			outcome, statusText = "error", paymentFailed
			failedProvider = c.Provider
			return result, fmt.Errorf("checkout: %s: %w", c.Provider, err)
		}
		result.Processed = append(result.Processed, c.Provider)
		logger.Debug("payment_processed",
			observability.F("provider", c.Provider),
			observability.F("amount", c.Amount),
		)
	}

	return result, nil
}
