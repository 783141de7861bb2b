// Package reprise is the convenience facade: the common types and entry
// points of the library re-exported under one import.
package reprise

import (
	"context"

	"github.com/aponysus/reprise/observe"
	"github.com/aponysus/reprise/retry"
)

// Option configures a wrapped operation.
type Option = retry.Option

// AttemptRecord is the per-attempt record passed to handlers.
type AttemptRecord = observe.AttemptRecord

// Handler is a retry-event callback.
type Handler = observe.Handler

// OnError wraps op in exception mode.
func OnError[T any](op retry.Operation[T], opts ...Option) (retry.Operation[T], error) {
	return retry.OnError(op, opts...)
}

// OnValue wraps op in predicate mode.
func OnValue[T any](op retry.Operation[T], retryIf func(T) bool, opts ...Option) (retry.Operation[T], error) {
	return retry.OnValue(op, retryIf, opts...)
}

// Do wraps an error-only operation in exception mode and runs it once.
func Do(ctx context.Context, op func(ctx context.Context) error, opts ...Option) error {
	return retry.Do(ctx, op, opts...)
}

// DoValue wraps op in exception mode and runs it once.
func DoValue[T any](ctx context.Context, op retry.Operation[T], opts ...Option) (T, error) {
	return retry.DoValue(ctx, op, opts...)
}
