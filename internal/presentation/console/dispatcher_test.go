package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Zhima-Mochi/cafe-patterns/internal/application/cafe"
	"github.com/Zhima-Mochi/cafe-patterns/internal/application/checkout"
	infraobs "github.com/Zhima-Mochi/cafe-patterns/internal/infrastructure/observability"
	"github.com/Zhima-Mochi/cafe-patterns/internal/infrastructure/observability/prometrics"
	"github.com/Zhima-Mochi/cafe-patterns/internal/infrastructure/observability/zaplogger"
	"github.com/Zhima-Mochi/cafe-patterns/internal/infrastructure/payment"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fixedID string

func (f fixedID) NewID() string { return string(f) }

type spyBeverageDemo struct {
	calls int
	err   error
}

func (s *spyBeverageDemo) Execute(context.Context, cafe.DecoratorDemoInput) (*cafe.DecoratorDemoResult, error) {
	s.calls++
	return &cafe.DecoratorDemoResult{}, s.err
}

type spyPaymentDemo struct {
	calls int
	err   error
}

func (s *spyPaymentDemo) Execute(context.Context, checkout.AdapterDemoInput) (*checkout.AdapterDemoResult, error) {
	s.calls++
	return &checkout.AdapterDemoResult{}, s.err
}

func newRealDispatcher(out *bytes.Buffer) *Dispatcher {
	return NewDispatcher(out,
		cafe.NewDecoratorDemoUseCase(out, nil),
		checkout.NewAdapterDemoUseCase(out, payment.DemoCharges, nil),
		fixedID("run-1"),
		nil,
	)
}

func TestTransition(t *testing.T) {
	tests := []struct {
		in      string
		want    State
		wantErr error
	}{
		{"1", RunningBeverageDemo, nil},
		{"2", RunningPaymentDemo, nil},
		{"x", Rejected, ErrInvalidChoice},
		{"", Rejected, ErrInvalidChoice},
		{" 1", Rejected, ErrInvalidChoice},
		{"3", Rejected, ErrInvalidChoice},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Transition(tt.in)
			assert.Equal(t, tt.want, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRun_RoutesToExactlyOneDemo(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantState    State
		wantBeverage int
		wantPayment  int
		wantInvalid  bool
	}{
		{name: "beverage", input: "1\n", wantState: RunningBeverageDemo, wantBeverage: 1},
		{name: "payment", input: "2\n", wantState: RunningPaymentDemo, wantPayment: 1},
		{name: "crlf", input: "2\r\n", wantState: RunningPaymentDemo, wantPayment: 1},
		{name: "no trailing newline", input: "1", wantState: RunningBeverageDemo, wantBeverage: 1},
		{name: "letter", input: "x\n", wantState: Rejected, wantInvalid: true},
		{name: "empty line", input: "\n", wantState: Rejected, wantInvalid: true},
		{name: "eof", input: "", wantState: Rejected, wantInvalid: true},
		{name: "only first line counts", input: "x\n1\n", wantState: Rejected, wantInvalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			bev, pay := &spyBeverageDemo{}, &spyPaymentDemo{}
			d := NewDispatcher(&out, bev, pay, fixedID("r"), nil)

			state, err := d.Run(context.Background(), strings.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantBeverage, bev.calls)
			assert.Equal(t, tt.wantPayment, pay.calls)
			assert.True(t, strings.HasPrefix(out.String(), Banner))
			assert.Equal(t, tt.wantInvalid, strings.Contains(out.String(), InvalidChoiceMessage))
		})
	}
}

func TestRun_BeverageEndToEnd(t *testing.T) {
	var out bytes.Buffer
	state, err := newRealDispatcher(&out).Run(context.Background(), strings.NewReader("1\n"))
	require.NoError(t, err)
	assert.Equal(t, RunningBeverageDemo, state)

	got := out.String()
	want := []string{
		"Espresso, Milk, Sugar -> 1100",
		"Latte, Whipped Cream, Caramel -> 1550",
		"Mocha, Sugar, Milk, Milk -> 1700",
	}
	last := -1
	for _, w := range want {
		idx := strings.Index(got, w)
		require.GreaterOrEqual(t, idx, 0, w)
		assert.Greater(t, idx, last, "%q out of order", w)
		last = idx
	}
	assert.NotContains(t, got, "[PayPal]")
	assert.NotContains(t, got, InvalidChoiceMessage)
}

func TestRun_PaymentEndToEnd(t *testing.T) {
	var out bytes.Buffer
	state, err := newRealDispatcher(&out).Run(context.Background(), strings.NewReader("2\n"))
	require.NoError(t, err)
	assert.Equal(t, RunningPaymentDemo, state)

	want := Banner + checkout.Header + "\n" +
		"[PayPal] Processing payment of 5000 тг...\n" +
		"[Stripe] Transaction completed: 7500 тг\n" +
		"[Qiwi] Оплата прошла успешно: 3000 тг\n"
	assert.Equal(t, want, out.String())
}

func TestRun_InvalidPrintsOnlyMessage(t *testing.T) {
	var out bytes.Buffer
	state, err := newRealDispatcher(&out).Run(context.Background(), strings.NewReader("x\n"))
	require.NoError(t, err)
	assert.Equal(t, Rejected, state)
	assert.Equal(t, Banner+InvalidChoiceMessage+"\n", out.String())
}

func TestRun_DemoFailureIsWrapped(t *testing.T) {
	boom := errors.New("sink closed")
	var out bytes.Buffer
	d := NewDispatcher(&out, &spyBeverageDemo{err: boom}, &spyPaymentDemo{}, nil, nil)

	state, err := d.Run(context.Background(), strings.NewReader("1\n"))
	assert.Equal(t, RunningBeverageDemo, state)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "console: beverage demo")
}

func TestRun_LogsAndCountsSelection(t *testing.T) {
	reg := prometheus.NewRegistry()
	counters, histograms := prometrics.RegisterDefaults(prometrics.New(reg, ""))
	core, logs := observer.New(zapcore.DebugLevel)
	tel := infraobs.New(nil, zaplogger.Wrap(zap.New(core)), counters, histograms)

	var out bytes.Buffer
	d := NewDispatcher(&out, &spyBeverageDemo{}, &spyPaymentDemo{}, fixedID("run-42"), tel)

	_, err := d.Run(context.Background(), strings.NewReader("nope\n"))
	require.NoError(t, err)
	_, err = d.Run(context.Background(), strings.NewReader("2\n"))
	require.NoError(t, err)

	expected := `
# HELP menu_selections_total Menu selections read from the console, by outcome.
# TYPE menu_selections_total counter
menu_selections_total{choice="invalid"} 1
menu_selections_total{choice="payment_demo"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "menu_selections_total"))

	rejected := logs.FilterMessage("menu_choice_rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "run-42", rejected[0].ContextMap()["run_id"])
	assert.Equal(t, zapcore.WarnLevel, rejected[0].Level)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "awaiting_choice", AwaitingChoice.String())
	assert.Equal(t, "state(9)", State(9).String())
}
