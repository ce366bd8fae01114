package message

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
type Kind string

const (
	KindClassification Kind = "Classification" // leading byte matches no usable domain
	KindFraming        Kind = "Framing"        // counter header malformed or unrecognized
	KindPrimitive      Kind = "Primitive"      // an item's constituent primitive failed to decode
	KindPayload        Kind = "Payload"        // message body failed to decode
	KindUnsupported    Kind = "Unsupported"    // combination intentionally left unimplemented
)

// Error is the package's structured error type.
//
// RuleID is a stable identifier (e.g., CESR-COLD-001, CESR-GRP-003) naming
// the violated invariant. Offset is the byte offset into the stream handed to
// the failing parse entry point, where one could be determined, else 0.
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Offset  int
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

func atOffset(err error, offset int) error {
	var e *Error
	if errors.As(err, &e) && e.Offset == 0 {
		e.Offset = offset
	}
	return err
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}

// Offset returns the stream offset recorded on a structured error, or -1 if
// err carries none.
func Offset(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return -1
	}
	return e.Offset
}
