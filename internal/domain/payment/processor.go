package payment

import (
	"context"
	"strconv"
)

// Currency is appended to every amount shown to the customer.
const Currency = "тг"

// Processor is the single capability checkout code depends on. Amounts are
// taken as-is; zero and negative values are not rejected.
type Processor interface {
	Process(ctx context.Context, amount int64) error
}

// FormatAmount renders amount followed by the currency suffix, e.g. "5000 тг".
func FormatAmount(amount int64) string {
	return strconv.FormatInt(amount, 10) + " " + Currency
}
