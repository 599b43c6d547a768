// Package paypal talks the checkout contract natively, so no adapter is needed.
package paypal

import (
	"context"
	"fmt"
	"io"

	dompay "github.com/Zhima-Mochi/cafe-patterns/internal/domain/payment"
)

// Provider is the label used in metrics and logs.
const Provider = "paypal"

// Processor implements dompay.Processor directly.
type Processor struct {
	out io.Writer
}

var _ dompay.Processor = (*Processor)(nil)

// NewProcessor returns a Processor printing confirmations to out.
func NewProcessor(out io.Writer) *Processor {
	return &Processor{out: out}
}

// Process prints the PayPal confirmation line for amount.
func (p *Processor) Process(_ context.Context, amount int64) error {
	_, err := fmt.Fprintf(p.out, "[PayPal] Processing payment of %s...\n", dompay.FormatAmount(amount))
	return err
}
