package salesapi

import "errors"

var (
	// ErrUpstreamUnavailable is returned when the sales API cannot be reached.
	ErrUpstreamUnavailable = errors.New("sales api unreachable")

	// ErrUpstreamStatus is returned when the sales API answers with a non-2xx status.
	ErrUpstreamStatus = errors.New("sales api returned an error status")

	// ErrUpstreamDecode is returned when the sales API payload cannot be decoded.
	ErrUpstreamDecode = errors.New("sales api returned a malformed payload")
)
