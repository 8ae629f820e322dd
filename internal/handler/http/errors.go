// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// Bearer prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrDeviceIDMismatch is returned when the X-Device-ID header names a
	// different device than the bearer credential.
	ErrDeviceIDMismatch = errors.New("device id header does not match credential")
)

var (
	// ErrInvalidRequestBody is returned when a request body is not valid JSON
	// of the expected shape.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrInvalidRecordID is returned when the {id} path segment is not a UUID
	// or disagrees with the record in the body.
	ErrInvalidRecordID = errors.New("invalid record id")

	// ErrTooManyRequests is returned by the pairing rate limiter.
	ErrTooManyRequests = errors.New("too many pairing requests")
)
