package llm

import (
	"context"
	"fmt"
	"log"
)

// Result is a successful generation tagged with the model that produced it.
type Result struct {
	Model string
	Text  string
}

// Generate tries the engine's candidate models in order and returns on the
// first success. Each candidate gets the full rate-limit retry budget; any
// other failure moves straight to the next candidate. When every candidate
// fails, the last failure is returned.
func Generate(ctx context.Context, e Engine, prompt string, policy RetryPolicy) (Result, error) {
	var lastErr error
	for _, model := range e.Candidates() {
		var text string
		err := RetryOn429(policy, func() error {
			var callErr error
			text, callErr = e.GenerateOnce(ctx, model, prompt)
			return callErr
		})
		if err == nil {
			return Result{Model: model, Text: text}, nil
		}
		lastErr = err
		log.Printf("%s: model %s failed: %v", e.Name(), model, err)

		if ctx.Err() != nil {
			break // deadline spent, further candidates cannot succeed
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%s: no models to try", e.Name())
	}
	return Result{}, lastErr
}
