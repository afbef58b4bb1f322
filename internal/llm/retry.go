package llm

import (
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds repeated calls against a rate-limiting provider.
// Waits double from InitialBackoff with no jitter, so the schedule is
// reproducible in tests.
type RetryPolicy struct {
	MaxAttempts    int                 // total attempts, including the first
	InitialBackoff time.Duration       // wait after the first 429
	Sleep          func(time.Duration) // test hook; time.Sleep when nil
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 4, InitialBackoff: 800 * time.Millisecond}
}

func (p RetryPolicy) schedule() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0 // attempts are bounded by MaxAttempts, not wall clock
	b.Reset()
	return b
}

// RetryOn429 runs op up to MaxAttempts times. Only an *UpstreamError with
// status 429 is retried; any other failure returns immediately. When the
// last attempt is still rate-limited, that 429 error is returned unchanged.
func RetryOn429(p RetryPolicy, op func() error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	wait := p.schedule()

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		lastErr = err

		var ue *UpstreamError
		if !errors.As(err, &ue) || ue.StatusCode != http.StatusTooManyRequests {
			return err
		}
		if attempt == attempts {
			break
		}
		d := wait.NextBackOff()
		if d == backoff.Stop {
			break
		}
		sleep(d)
	}
	return lastErr
}
