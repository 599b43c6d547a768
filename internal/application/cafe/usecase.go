package cafe

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Zhima-Mochi/cafe-patterns/internal/domain/beverage"
	dompay "github.com/Zhima-Mochi/cafe-patterns/internal/domain/payment"
	"github.com/Zhima-Mochi/cafe-patterns/internal/observability"
	"github.com/Zhima-Mochi/cafe-patterns/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	cafeService        = "cafe-service"
	useCaseDecorator   = "cafe.decorator_demo"
	decoratorSpanName  = "DecoratorDemo"
	spanPrefix         = "UC."
	outputWriteFailure = "OUTPUT_WRITE_FAILED"

	Header = "\n=== Кафе: система заказов (Паттерн Декоратор) ==="
)

// demoOrders are the fixed compositions shown by the demo, in display order.
var demoOrders = []func() beverage.Beverage{
	func() beverage.Beverage {
		return beverage.WithSugar(beverage.WithMilk(beverage.Espresso()))
	},
	func() beverage.Beverage {
		return beverage.WithCaramel(beverage.WithWhippedCream(beverage.Latte()))
	},
	func() beverage.Beverage {
		return beverage.WithMilk(beverage.WithMilk(beverage.WithSugar(beverage.Mocha())))
	},
}

type DecoratorDemoInput struct{}

// Receipt is one printed line of the demo.
type Receipt struct {
	Description string
	Cost        int64
}

func (r Receipt) String() string {
	return fmt.Sprintf("%s -> %s", r.Description, dompay.FormatAmount(r.Cost))
}

type DecoratorDemoResult struct {
	Receipts []Receipt
}

// DecoratorDemoUseCase composes the demo drinks and prints one receipt line per drink.
type DecoratorDemoUseCase struct {
	out io.Writer
	tel observability.Observability

	log           observability.Logger
	reqCounter    observability.Counter        // usecase_requests_total{use_case,outcome}
	durHistogram  observability.BoundHistogram // usecase_duration_seconds{use_case}
	servedCounter observability.Counter        // beverages_served_total{base}
}

func NewDecoratorDemoUseCase(out io.Writer, tel observability.Observability) *DecoratorDemoUseCase {
	baseLog := observability.NopLogger()
	metricsProvider := observability.NopMetrics()
	if tel != nil {
		baseLog = tel.Logger()
		metricsProvider = tel.Metrics()
	}

	return &DecoratorDemoUseCase{
		out:           out,
		tel:           tel,
		log:           baseLog.With(observability.F("service", cafeService)),
		reqCounter:    metricsProvider.Counter(observability.MUsecaseRequests),
		durHistogram:  metricsProvider.Histogram(observability.MUsecaseDuration).Bind(observability.L("use_case", useCaseDecorator)),
		servedCounter: metricsProvider.Counter(observability.MBeveragesServed),
	}
}

// Execute builds every demo drink from scratch and writes its receipt line.
func (uc *DecoratorDemoUseCase) Execute(ctx context.Context, _ DecoratorDemoInput) (_ *DecoratorDemoResult, err error) {
	logger := logctx.FromOr(ctx, uc.log).With(observability.F("use_case", useCaseDecorator))

	tracer := observability.NopTracer()
	if uc.tel != nil {
		tracer = uc.tel.Tracer()
	}
	ctx, span := tracer.Start(ctx, spanPrefix+decoratorSpanName,
		attribute.String("use_case", useCaseDecorator),
	)
	start := time.Now()
	outcome, statusText := "success", "OK"
	result := &DecoratorDemoResult{Receipts: make([]Receipt, 0, len(demoOrders))}

	defer func() {
		latency := time.Since(start).Seconds()

		span.SetAttributes(attribute.Int("cafe.receipts", len(result.Receipts)))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, statusText)
		} else {
			span.SetStatus(codes.Ok, statusText)
		}
		span.End()

		uc.reqCounter.Add(1,
			observability.L("use_case", useCaseDecorator),
			observability.L("outcome", outcome),
		)
		uc.durHistogram.Observe(latency)

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", latency),
			observability.F("receipts", len(result.Receipts)),
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}
		logger.Info("use_case_done", fields...)
	}()

	if _, err = fmt.Fprintln(uc.out, Header); err != nil {
		outcome, statusText = "error", outputWriteFailure
		return nil, fmt.Errorf("cafe: write header: %w", err)
	}

	for _, build := range demoOrders {
		drink := build()
		r := Receipt{Description: drink.Description(), Cost: drink.Cost()}
		if _, err = fmt.Fprintln(uc.out, r.String()); err != nil {
			outcome, statusText = "error", outputWriteFailure
			return nil, fmt.Errorf("cafe: write receipt: %w", err)
		}
		result.Receipts = append(result.Receipts, r)
		uc.servedCounter.Add(1, observability.L("base", beverage.BaseName(drink)))
		logger.Debug("beverage_served",
			observability.F("description", r.Description),
			observability.F("cost", r.Cost),
		)
	}

	return result, nil
}
