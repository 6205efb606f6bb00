package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError translates a hub response into the package's typed failures.
// 2xx yields nil; everything else carries the response body for diagnostics.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrSignedOut, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrRecordNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	case http.StatusInsufficientStorage:
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceDisabled, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrExchangeFailed, resp.StatusCode(), body)
	}
}
