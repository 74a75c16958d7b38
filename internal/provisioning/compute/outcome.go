package compute

import "strings"

// Outcome classifies the result of one launch attempt.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeRetryable
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRetryable:
		return "retryable"
	case OutcomeFatal:
		return "fatal"
	}
	return "unknown"
}

// retryableFragments are the error-text markers of exhausted capacity or
// transient provider conditions. Matching is case-insensitive substring; the
// provider does not guarantee stable machine-readable codes for all of these,
// so the message text is the contract.
var retryableFragments = []string{
	"out of host capacity",
	"capacity",
	"temporarily unavailable",
	"too many requests",
	"service unavailable",
	"timeout",
	"timed out",
	"internal error",
}

// Classify maps a launch error to an outcome. A nil error is a success. Any
// error not matching a retryable fragment is fatal: retrying cannot fix a
// configuration or permission problem.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}
	msg := strings.ToLower(err.Error())
	for _, fragment := range retryableFragments {
		if strings.Contains(msg, fragment) {
			return OutcomeRetryable
		}
	}
	return OutcomeFatal
}
