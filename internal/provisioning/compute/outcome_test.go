package compute

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{"nil error", nil, OutcomeSuccess},
		{"out of host capacity", errors.New("Out of host capacity."), OutcomeRetryable},
		{"capacity generic", errors.New("shape capacity exceeded in this AD"), OutcomeRetryable},
		{"temporarily unavailable", errors.New("The service is Temporarily Unavailable"), OutcomeRetryable},
		{"too many requests", errors.New("429: TooManyRequests: Too many requests for the user"), OutcomeRetryable},
		{"service unavailable", errors.New("503 Service Unavailable"), OutcomeRetryable},
		{"timeout", errors.New("request timeout exceeded"), OutcomeRetryable},
		{"timed out", errors.New("dial tcp: i/o timed out"), OutcomeRetryable},
		{"internal error", errors.New("500: InternalError: Internal error occurred"), OutcomeRetryable},
		{"invalid parameter", errors.New("400: InvalidParameter: ssh key malformed"), OutcomeFatal},
		{"not authorized", errors.New("404: NotAuthorizedOrNotFound"), OutcomeFatal},
		{"quota exceeded", errors.New("LimitExceeded: instance quota exceeded"), OutcomeFatal},
		{"wrapped retryable", fmt.Errorf("launch: %w", errors.New("OUT OF HOST CAPACITY")), OutcomeRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "success", OutcomeSuccess.String())
	assert.Equal(t, "retryable", OutcomeRetryable.String())
	assert.Equal(t, "fatal", OutcomeFatal.String())
}
