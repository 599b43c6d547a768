package checkout

import (
	"context"
	"time"

	dompay "github.com/Zhima-Mochi/cafe-patterns/internal/domain/payment"
	"github.com/Zhima-Mochi/cafe-patterns/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const paymentSpanName = "Payment.Process"

// Charge pairs a processor with the amount the demo sends through it.
type Charge struct {
	Provider  string
	Processor dompay.Processor
	Amount    int64
}

// instrumented wraps a Processor with a span and per-provider counters.
// It satisfies the same contract, so callers cannot tell it apart.
type instrumented struct {
	next     dompay.Processor
	provider string
	tracer   observability.Tracer
	count    observability.BoundCounter
	amount   observability.BoundCounter
}

var _ dompay.Processor = (*instrumented)(nil)

func instrument(c Charge, tracer observability.Tracer, metrics observability.Metrics) dompay.Processor {
	provider := observability.L("provider", c.Provider)
	return &instrumented{
		next:     c.Processor,
		provider: c.Provider,
		tracer:   tracer,
		count:    metrics.Counter(observability.MPaymentsProcessed).Bind(provider),
		amount:   metrics.Counter(observability.MPaymentAmount).Bind(provider),
	}
}

func (p *instrumented) Process(ctx context.Context, amount int64) (err error) {
	ctx, span := p.tracer.Start(ctx, paymentSpanName,
		attribute.String("payment.provider", p.provider),
		attribute.Int64("payment.amount", amount),
	)
	start := time.Now()
	defer func() {
		span.SetAttributes(attribute.Float64("payment.latency_seconds", time.Since(start).Seconds()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "PAYMENT_FAILED")
		} else {
			span.SetStatus(codes.Ok, "OK")
		}
		span.End()
	}()

	// respect cancellation before handing off to the provider
	if err = ctx.Err(); err != nil {
		return err
	}
	if err = p.next.Process(ctx, amount); err != nil {
		return err
	}

	p.count.Add(1)
	// counters only grow; zero and negative amounts are still processed
	if amount > 0 {
		p.amount.Add(float64(amount))
	}
	return nil
}
