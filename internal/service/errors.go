package service

import (
	"errors"
	"fmt"
)

// Authorization gate failures. The handler surfaces these verbatim as the
// 401 reason, so the texts must stay free of configured values.
var (
	ErrInvalidSecret      = errors.New("invalid shared secret")
	ErrCredentialRequired = errors.New("an API key is required when no shared secret is provided")
	ErrNoProviderKey      = errors.New("no provider API key is configured on this server")
	ErrCallerKeyDisabled  = errors.New("this server does not accept caller-supplied API keys")
)

// ErrUnknownMode is returned by the prompt composer for a mode it has no
// template for. Request validation rejects unknown modes before the composer
// runs, so seeing this error means a handler bug.
var ErrUnknownMode = errors.New("unknown processing mode")

// ErrEmptyCompletion is returned when the provider answered successfully but
// the first completion choice carries no text.
var ErrEmptyCompletion = errors.New("provider returned an empty completion")

// UpstreamError wraps a failed provider call. Status and Body are logged
// server-side only and never surfaced to the caller.
type UpstreamError struct {
	Status int
	Body   string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider request failed: %v", e.Err)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// MalformedOutputError means the model's reply was not valid JSON after
// normalization. Raw keeps the original text for diagnostics.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("failed to parse model output as JSON: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}
