// Package classify decides what an attempt result means for the retry loop:
// success, a retryable failure, or a failure that must abort retrying.
package classify

// OutcomeKind is the controller-facing decision about one attempt result.
type OutcomeKind int

const (
	OutcomeUnknown OutcomeKind = iota
	OutcomeSuccess
	OutcomeRetryable
	OutcomeAbort
)

// Outcome is the classification of a single attempt. Reason is a short
// stable token suitable for logs and metric labels.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
}

// Classifier inspects an attempt's value and error. Exhaustion of the retry
// budget is the controller's decision, never the classifier's.
type Classifier interface {
	Classify(value any, err error) Outcome
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(value any, err error) Outcome

func (f ClassifierFunc) Classify(value any, err error) Outcome {
	return f(value, err)
}
