package hajihash

import "errors"

// Kind groups canonicalization failures. Branch on Kind or RuleID,
// never on the message.
type Kind string

const (
	// KindEncoding reports text that cannot be encoded as UTF-8.
	KindEncoding Kind = "Encoding"
	// KindCanonical reports a value with no canonical form under the active mode.
	KindCanonical Kind = "Canonical"
)

// Error is returned by every failing canonicalization, and so by Digest and
// CheckWord. RuleID names the rejecting rule, e.g. HAJI-ENC-001.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return e.RuleID + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.RuleID + ": " + e.Message
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

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// RuleID returns the rule that produced err, or "" for foreign errors.
func RuleID(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.RuleID
	}
	return ""
}
