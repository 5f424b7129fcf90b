// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while extracting the bearer token from the
// "Authorization" header. The auth middleware returns their text in the
// 401 response body so the client can tell a missing token from a
// malformed one.
var (
	// ErrEmptyAuthorizationHeader: the request carries no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header cannot be split into a
	// scheme and a token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme prefix is present but the token value is
	// an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
