// Package console drives the demos from a one-line text menu.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Zhima-Mochi/cafe-patterns/internal/application"
	"github.com/Zhima-Mochi/cafe-patterns/internal/application/cafe"
	"github.com/Zhima-Mochi/cafe-patterns/internal/application/checkout"
	"github.com/Zhima-Mochi/cafe-patterns/internal/observability"
	"github.com/Zhima-Mochi/cafe-patterns/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	Banner = "=== Демонстрация структурных паттернов ===\n" +
		"1 — Система заказов в кафе (Декоратор)\n" +
		"2 — Система оплаты (Адаптер)\n" +
		"\nВыберите модуль: "
	InvalidChoiceMessage = "Неверный выбор!"

	choiceBeverage = "1"
	choicePayment  = "2"

	dispatchSpanName = "Console.Dispatch"
)

// ErrInvalidChoice marks menu input that selects no demo.
var ErrInvalidChoice = errors.New("console: invalid menu choice")

// State is a dispatcher state. Every run ends in one of the three terminal states.
type State int

const (
	AwaitingChoice State = iota
	RunningBeverageDemo
	RunningPaymentDemo
	Rejected
)

func (s State) String() string {
	switch s {
	case AwaitingChoice:
		return "awaiting_choice"
	case RunningBeverageDemo:
		return "beverage_demo"
	case RunningPaymentDemo:
		return "payment_demo"
	case Rejected:
		return "invalid"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Transition returns the state that follows AwaitingChoice for the given line.
// Only the exact strings "1" and "2" select a demo.
func Transition(choice string) (State, error) {
	switch choice {
	case choiceBeverage:
		return RunningBeverageDemo, nil
	case choicePayment:
		return RunningPaymentDemo, nil
	default:
		return Rejected, ErrInvalidChoice
	}
}

type IDGenerator interface {
	NewID() string
}

type (
	BeverageDemo = application.UseCase[cafe.DecoratorDemoInput, *cafe.DecoratorDemoResult]
	PaymentDemo  = application.UseCase[checkout.AdapterDemoInput, *checkout.AdapterDemoResult]
)

// Dispatcher reads one menu line and runs at most one demo.
type Dispatcher struct {
	out      io.Writer
	beverage BeverageDemo
	payment  PaymentDemo
	ids      IDGenerator
	tel      observability.Observability

	log        observability.Logger
	selections observability.Counter // menu_selections_total{choice}
}

func NewDispatcher(
	out io.Writer,
	beverage BeverageDemo,
	payment PaymentDemo,
	ids IDGenerator,
	tel observability.Observability,
) *Dispatcher {
	baseLog := observability.NopLogger()
	metricsProvider := observability.NopMetrics()
	if tel != nil {
		baseLog = tel.Logger()
		metricsProvider = tel.Metrics()
	}
	return &Dispatcher{
		out:        out,
		beverage:   beverage,
		payment:    payment,
		ids:        ids,
		tel:        tel,
		log:        baseLog.With(observability.F("component", "console_dispatcher")),
		selections: metricsProvider.Counter(observability.MMenuSelections),
	}
}

// Run prints the menu, reads a single line from in and dispatches on it.
// Invalid input is answered with a message and yields (Rejected, nil); only
// output failures and demo failures are returned as errors.
func (d *Dispatcher) Run(ctx context.Context, in io.Reader) (state State, err error) {
	tracer := observability.NopTracer()
	if d.tel != nil {
		tracer = d.tel.Tracer()
	}
	ctx, span := tracer.Start(ctx, dispatchSpanName)

	fields := []observability.Field{}
	if d.ids != nil {
		fields = append(fields, observability.F("run_id", d.ids.NewID()))
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields = append(fields,
			observability.F("trace_id", sc.TraceID().String()),
			observability.F("span_id", sc.SpanID().String()),
		)
	}
	logger := d.log.With(fields...)
	ctx = logctx.With(ctx, logger)

	state = AwaitingChoice
	defer func() {
		span.SetAttributes(attribute.String("console.state", state.String()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "OK")
		}
		span.End()
	}()

	if _, err = io.WriteString(d.out, Banner); err != nil {
		return state, fmt.Errorf("console: write menu: %w", err)
	}

	choice, readErr := readLine(in)
	if readErr != nil {
		logger.Warn("menu_read_failed", observability.F("error", readErr.Error()))
	}

	next, choiceErr := Transition(choice)
	d.selections.Add(1, observability.L("choice", next.String()))
	logger.Info("menu_choice_read", observability.F("state", next.String()))
	state = next

	switch state {
	case RunningBeverageDemo:
		if _, err = d.beverage.Execute(ctx, cafe.DecoratorDemoInput{}); err != nil {
			return state, fmt.Errorf("console: beverage demo: %w", err)
		}
	case RunningPaymentDemo:
		if _, err = d.payment.Execute(ctx, checkout.AdapterDemoInput{}); err != nil {
			return state, fmt.Errorf("console: payment demo: %w", err)
		}
	default:
		logger.Warn("menu_choice_rejected", observability.F("error", choiceErr.Error()))
		if _, err = fmt.Fprintln(d.out, InvalidChoiceMessage); err != nil {
			return state, fmt.Errorf("console: write invalid choice: %w", err)
		}
	}
	return state, nil
}

// readLine returns the first line of r without its terminator. EOF before any
// newline yields whatever was read, possibly "".
func readLine(r io.Reader) (string, error) {
	if r == nil {
		return "", io.ErrUnexpectedEOF
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if err != nil && !errors.Is(err, io.EOF) {
		return line, err
	}
	return line, nil
}
