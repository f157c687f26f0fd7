// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the session guard when resolving the inbound
// session token. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionToken is returned by the guard when the request carries
	// neither a session cookie nor an "Authorization" header.
	ErrNoSessionToken = errors.New("no session token on request")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the token carrier exists but the token
	// value itself is an empty string.
	ErrEmptyToken = errors.New("empty session token")
)
