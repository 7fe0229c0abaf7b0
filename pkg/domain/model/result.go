package model

// TransformOutcome classifies the result of applying a transformer to an
// event payload. Suppression and failure are distinct outcomes so that a
// dropped notification is always a visible decision, not a swallowed
// exception.
type TransformOutcome string

const (
	OutcomeNotify   TransformOutcome = "notify"
	OutcomeSuppress TransformOutcome = "suppress"
	OutcomeFail     TransformOutcome = "fail"
)

// TransformResult is the outcome of one transformation: a message to
// dispatch, a suppression with its reason, or a failure with its error.
type TransformResult struct {
	Outcome TransformOutcome
	Message *Message
	Reason  string
	Err     error
}

// Notify wraps a fully built message
func Notify(msg *Message) TransformResult {
	return TransformResult{Outcome: OutcomeNotify, Message: msg}
}

// Suppress records that no notification should be sent and why
func Suppress(reason string) TransformResult {
	return TransformResult{Outcome: OutcomeSuppress, Reason: reason}
}

// Failed records a transformation error
func Failed(err error) TransformResult {
	return TransformResult{Outcome: OutcomeFail, Err: err}
}
