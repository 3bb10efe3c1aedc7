package imagegen

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a generation failure. The same kind strings appear
// in the HTTP service's error envelopes and in CLI failure messages.
type ErrorKind string

const (
	// KindMissingCredential means no API key was available.
	KindMissingCredential ErrorKind = "missing_credential"

	// KindClientNotInitialized means the provider client was never
	// constructed, so generation cannot proceed. The service reports this
	// per request when it started without a credential.
	KindClientNotInitialized ErrorKind = "client_not_initialized"

	// KindInvalidAspectRatio means the request named an unknown aspect
	// ratio key. The error carries the accepted keys.
	KindInvalidAspectRatio ErrorKind = "invalid_aspect_ratio"

	// KindSafetyFilterTriggered labels the filtered outcome in frontend
	// envelopes. Generate reports filtering through Result, not through
	// an error.
	KindSafetyFilterTriggered ErrorKind = "safety_filter_triggered"

	// KindNoArtifactProduced labels the empty outcome in frontend
	// envelopes, like KindSafetyFilterTriggered.
	KindNoArtifactProduced ErrorKind = "no_artifact_produced"

	// KindProviderCallFailed means the provider call itself failed:
	// transport error, error envelope or a malformed answer stream.
	KindProviderCallFailed ErrorKind = "provider_call_failed"

	// KindImageDecodeFailed means the artifact payload was not a
	// decodable image.
	KindImageDecodeFailed ErrorKind = "image_decode_failed"

	// KindFileWriteFailed means the PNG could not be written to disk.
	KindFileWriteFailed ErrorKind = "file_write_failed"
)

// Error is a classified generation failure.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Message is a short human-readable description.
	Message string

	// Detail carries the raw diagnostic from the underlying failure. It
	// is informational only; callers must not parse it.
	Detail string

	// ValidKeys lists the accepted aspect ratio keys. Set only when Kind
	// is KindInvalidAspectRatio.
	ValidKeys []string

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("imagegen: %s", e.Kind)
	}
	return fmt.Sprintf("imagegen: %s (kind=%s)", e.Message, e.Kind)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// AsError extracts *Error from an error.
//
// Example:
//
//	if e, ok := imagegen.AsError(err); ok && e.Kind == imagegen.KindInvalidAspectRatio {
//	    fmt.Println("valid keys:", e.ValidKeys)
//	}
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// wrapError builds a classified error around a cause.
func wrapError(kind ErrorKind, message string, cause error) *Error {
	e := &Error{Kind: kind, Message: message, cause: cause}
	if cause != nil {
		e.Detail = cause.Error()
	}
	return e
}
