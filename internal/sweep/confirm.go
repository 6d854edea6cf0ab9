package sweep

import "context"

// confirmWithRetries drives a submitted transaction to a terminal
// confirmation answer. Each poll is bounded by the configured per-attempt
// timeout; transport and timeout failures are retried through the retry
// policy, while a confirmation answer (success or on-chain failure) returns
// immediately. When every attempt fails, the last transport error is
// returned and the caller must treat the sweep as unresolved.
func (s *service) confirmWithRetries(ctx context.Context, gateway Gateway, signature string) (ConfirmationResult, error) {
	var result ConfirmationResult

	err := s.retry.Execute(ctx, func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
		defer cancel()

		res, err := gateway.ConfirmTransaction(attemptCtx, signature)
		if err != nil {
			return err
		}

		result = res
		return nil
	})

	return result, err
}
