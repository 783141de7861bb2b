// Package http adapts reprise to HTTP polling: predicate-mode helpers over
// *http.Response and a Retry-After-driven wait function.
package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aponysus/reprise/observe"
	"github.com/aponysus/reprise/retry"
)

// StatusRetryable returns a predicate for retry.OnValue that treats the
// given status codes as unsatisfactory. With no codes it retries 5xx and
// 429, the usual transient statuses.
func StatusRetryable(codes ...int) func(*http.Response) bool {
	set := make(map[int]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return func(resp *http.Response) bool {
		if resp == nil {
			return true
		}
		if len(set) > 0 {
			_, ok := set[resp.StatusCode]
			return ok
		}
		return resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
	}
}

// RetryAfterWait returns a wait function for retry.WithWaitFunc that reads
// the Retry-After header (seconds or HTTP date) from the response of the
// attempt just made. Attempts without a usable header wait fallback.
func RetryAfterWait(fallback time.Duration) retry.WaitFunc {
	return func(rec observe.AttemptRecord) time.Duration {
		resp, ok := rec.Value.(*http.Response)
		if !ok || resp == nil {
			return fallback
		}
		if d, ok := parseRetryAfter(resp.Header.Get("Retry-After")); ok {
			return d
		}
		return fallback
	}
}

func parseRetryAfter(s string) (time.Duration, bool) {
	if s == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(s); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(s); err == nil {
		d := time.Until(t)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}
