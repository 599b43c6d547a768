// Package payment wires the concrete providers into checkout charges.
package payment

import (
	"io"

	"github.com/Zhima-Mochi/cafe-patterns/internal/application/checkout"
	"github.com/Zhima-Mochi/cafe-patterns/internal/infrastructure/payment/paypal"
	"github.com/Zhima-Mochi/cafe-patterns/internal/infrastructure/payment/qiwi"
	"github.com/Zhima-Mochi/cafe-patterns/internal/infrastructure/payment/stripe"
)

const (
	paypalDemoAmount int64 = 5000
	stripeDemoAmount int64 = 7500
	qiwiDemoAmount   int64 = 3000
)

// DemoCharges returns one charge per provider: PayPal directly, Stripe and
// Qiwi through their adapters. Every call builds new instances.
func DemoCharges(out io.Writer) []checkout.Charge {
	return []checkout.Charge{
		{Provider: paypal.Provider, Processor: paypal.NewProcessor(out), Amount: paypalDemoAmount},
		{Provider: stripe.Provider, Processor: stripe.NewAdapter(stripe.NewService(out)), Amount: stripeDemoAmount},
		{Provider: qiwi.Provider, Processor: qiwi.NewAdapter(qiwi.NewSystem(out)), Amount: qiwiDemoAmount},
	}
}
