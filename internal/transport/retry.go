package transport

import (
	"context"
	"net/http"

	"github.com/espeeswap/espeeswap-go/internal/types"
)

// checkRetry classifies each attempt's outcome for the retry client.
// Transient statuses (408, 429, 500, 502, 503, 504) and sent-but-unanswered
// requests are retryable; other statuses short-circuit after one attempt.
// A device that went offline mid-chain stops retrying immediately — the
// failure is classified NO_INTERNET afterwards.
func (t *REST) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if !t.network.Online() {
		return false, nil
	}

	if err != nil {
		// Timeouts, connection aborts, and other no-response conditions.
		return true, nil
	}

	if resp != nil && types.RetryableStatus(resp.StatusCode) {
		return true, nil
	}

	return false, nil
}
