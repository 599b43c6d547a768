package qiwi

import (
	"fmt"
	"io"

	dompay "github.com/Zhima-Mochi/cafe-patterns/internal/domain/payment"
)

const Provider = "qiwi"

// System mimics the Qiwi wallet SDK, which charges through Pay.
type System struct {
	out io.Writer
}

func NewSystem(out io.Writer) *System {
	return &System{out: out}
}

func (s *System) Pay(sum int64) error {
	_, err := fmt.Fprintf(s.out, "[Qiwi] Оплата прошла успешно: %s\n", dompay.FormatAmount(sum))
	return err
}
