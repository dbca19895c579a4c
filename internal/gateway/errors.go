package gateway

import (
	"errors"
	"net/http"

	"github.com/google/go-github/v62/github"

	"github.com/naka-gawa/github-activity/internal/domain"
)

// wrapError converts go-github errors to domain error kinds.
// A 202 means the data is not ready yet and is reported as an HTTP failure.
// Any other success status whose body failed to decode is malformed;
// no response at all is a transport failure.
func wrapError(resp *github.Response, err error, resource string) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return &domain.HTTPError{Status: ghErr.Response.StatusCode, Message: ghErr.Message}
	}

	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) && rateLimitErr.Response != nil {
		return &domain.HTTPError{Status: rateLimitErr.Response.StatusCode, Message: rateLimitErr.Message}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return &domain.HTTPError{Status: abuseErr.Response.StatusCode, Message: abuseErr.Message}
	}

	var otpErr *github.TwoFactorAuthError
	if errors.As(err, &otpErr) && otpErr.Response != nil {
		return &domain.HTTPError{Status: otpErr.Response.StatusCode, Message: otpErr.Message}
	}

	var acceptedErr *github.AcceptedError
	if errors.As(err, &acceptedErr) {
		return &domain.HTTPError{Status: http.StatusAccepted}
	}

	if resp != nil && resp.Response != nil {
		if code := resp.StatusCode; code >= 200 && code <= 299 {
			return &domain.MalformedResponseError{Resource: resource, Index: -1, Err: err}
		}
		return &domain.HTTPError{Status: resp.StatusCode}
	}

	return &domain.TransportError{Err: err}
}
