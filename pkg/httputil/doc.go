// Package httputil holds the retry policy shared by the render client.
//
// Transient failures (transport errors, 5xx responses) are wrapped in
// [RetryableError] by the caller; [Retry] only repeats those and returns any
// other error at once:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    ...
//	})
//
// The delay doubles after each failed attempt and waiting stops as soon as
// the context is done.
package httputil
