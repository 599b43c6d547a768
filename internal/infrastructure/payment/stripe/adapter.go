package stripe

import (
	"context"

	dompay "github.com/Zhima-Mochi/cafe-patterns/internal/domain/payment"
)

// Adapter exposes a Service through dompay.Processor.
type Adapter struct {
	service *Service
}

var _ dompay.Processor = (*Adapter)(nil)

// NewAdapter takes ownership of service; callers should not keep using it directly.
func NewAdapter(service *Service) *Adapter {
	return &Adapter{service: service}
}

func (a *Adapter) Process(_ context.Context, amount int64) error {
	return a.service.MakeTransaction(amount)
}
