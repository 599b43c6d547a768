// Package stripe holds a stand-in for a third-party client whose API does not
// match the checkout contract, and the adapter that bridges the two.
package stripe

import (
	"fmt"
	"io"

	dompay "github.com/Zhima-Mochi/cafe-patterns/internal/domain/payment"
)

const Provider = "stripe"

// Service mimics the vendor client: it settles a total via MakeTransaction.
type Service struct {
	out io.Writer
}

func NewService(out io.Writer) *Service {
	return &Service{out: out}
}

func (s *Service) MakeTransaction(totalAmount int64) error {
	_, err := fmt.Fprintf(s.out, "[Stripe] Transaction completed: %s\n", dompay.FormatAmount(totalAmount))
	return err
}
