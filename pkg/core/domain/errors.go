package domain

import "errors"

var (
	// ErrNotFound means the requested document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUpstreamUnavailable covers an unreachable or failing store or third-party API.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrMalformedPayload means a third-party response envelope could not be parsed.
	ErrMalformedPayload = errors.New("malformed upstream payload")
	// ErrNoClientAddress means the request carried no usable client address.
	ErrNoClientAddress = errors.New("client address unavailable")
)
