package adapter

import "errors"

var (
	// ErrUnauthorized is returned for 401 and 403 responses: the device
	// credential is unknown, revoked or not linked.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrTransient wraps every other failure: timeouts, DNS and connection
	// errors and non-2xx statuses. The caller retries on its own schedule.
	ErrTransient = errors.New("transient transport failure")

	// ErrMalformedPayload is returned when a 2xx response body cannot be
	// decoded into the expected shape.
	ErrMalformedPayload = errors.New("malformed server payload")

	// ErrNotFound accompanies ErrTransient on 404 responses.
	ErrNotFound = errors.New("not found")
)
