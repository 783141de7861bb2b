package classify

import (
	"context"
	"errors"
)

// Built-in classifier registry names.
const (
	ClassifierAlways  = "always"
	ClassifierTimeout = "timeout"
)

// RegisterBuiltins registers the core classifiers into reg.
func RegisterBuiltins(reg *Registry) {
	if reg == nil {
		return
	}
	reg.Register(ClassifierAlways, AlwaysRetry{})
	reg.Register(ClassifierTimeout, TimeoutRetry{})
}

// AlwaysRetry classifies nil errors as success and every other error as
// retryable, except context cancellation which aborts immediately.
type AlwaysRetry struct{}

func (AlwaysRetry) Classify(_ any, err error) Outcome {
	if err == nil {
		return Outcome{Kind: OutcomeSuccess, Reason: "success"}
	}
	if errors.Is(err, context.Canceled) {
		return Outcome{Kind: OutcomeAbort, Reason: "context_canceled"}
	}
	return Outcome{Kind: OutcomeRetryable, Reason: "retryable_error"}
}

// TimeoutRetry retries only errors that report themselves as timeouts via a
// Timeout() bool method (net.Error and friends). Everything else aborts.
type TimeoutRetry struct{}

func (TimeoutRetry) Classify(_ any, err error) Outcome {
	if err == nil {
		return Outcome{Kind: OutcomeSuccess, Reason: "success"}
	}
	var te interface{ Timeout() bool }
	if errors.As(err, &te) && te.Timeout() {
		return Outcome{Kind: OutcomeRetryable, Reason: "timeout"}
	}
	return Outcome{Kind: OutcomeAbort, Reason: "non_retryable_error"}
}

// ErrorIs returns a classifier that retries only errors matching one of
// targets under errors.Is. Any other error aborts retrying and propagates
// unchanged.
func ErrorIs(targets ...error) Classifier {
	return ClassifierFunc(func(_ any, err error) Outcome {
		if err == nil {
			return Outcome{Kind: OutcomeSuccess, Reason: "success"}
		}
		for _, t := range targets {
			if errors.Is(err, t) {
				return Outcome{Kind: OutcomeRetryable, Reason: "retryable_error"}
			}
		}
		return Outcome{Kind: OutcomeAbort, Reason: "non_retryable_error"}
	})
}

// ErrorMatch returns a classifier that retries errors for which match
// returns true and aborts on the rest.
func ErrorMatch(match func(error) bool) Classifier {
	return ClassifierFunc(func(_ any, err error) Outcome {
		if err == nil {
			return Outcome{Kind: OutcomeSuccess, Reason: "success"}
		}
		if match != nil && match(err) {
			return Outcome{Kind: OutcomeRetryable, Reason: "retryable_error"}
		}
		return Outcome{Kind: OutcomeAbort, Reason: "non_retryable_error"}
	})
}
