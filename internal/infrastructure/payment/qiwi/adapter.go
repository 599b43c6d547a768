package qiwi

import (
	"context"

	dompay "github.com/Zhima-Mochi/cafe-patterns/internal/domain/payment"
)

type Adapter struct {
	system *System
}

var _ dompay.Processor = (*Adapter)(nil)

func NewAdapter(system *System) *Adapter {
	return &Adapter{system: system}
}

// Process forwards to System.Pay unchanged.
func (a *Adapter) Process(_ context.Context, amount int64) error {
	return a.system.Pay(amount)
}
