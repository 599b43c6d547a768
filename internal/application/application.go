package application

import "context"

// UseCase is the shape every demo exposes to the console dispatcher.
type UseCase[C any, R any] interface {
	Execute(ctx context.Context, cmd C) (R, error)
}
