package domain

import "errors"

// Every failure of an export run wraps exactly one of these.
var (
	ErrAuth              = errors.New("analytics: authentication failed")
	ErrTransport         = errors.New("analytics: report request failed")
	ErrMalformedResponse = errors.New("analytics: malformed report response")
	ErrUnknownField      = errors.New("analytics: unknown field")
	ErrIO                = errors.New("analytics: output write failed")
)
