package hajihash

import (
	"errors"
	"testing"
)

func TestDigest_ErrorTaxonomy_EncodingRuleID(t *testing.T) {
	_, err := Digest("\xff\xfe\xfd")
	if err == nil {
		t.Fatalf("expected error")
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *hajihash.Error, got %T", err)
	}
	if e.Kind != KindEncoding {
		t.Fatalf("expected KindEncoding, got %s", e.Kind)
	}
	if e.RuleID != "HAJI-ENC-001" {
		t.Fatalf("expected RuleID HAJI-ENC-001, got %s", e.RuleID)
	}
}

func TestCheckWord_ErrorTaxonomy_CanonicalRuleID(t *testing.T) {
	_, err := CheckWord(make(chan struct{}))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsKind(err, KindCanonical) {
		t.Fatalf("expected KindCanonical, got %v", err)
	}
	if IsKind(err, KindEncoding) {
		t.Fatalf("did not expect KindEncoding")
	}
	if RuleID(err) != "HAJI-CANON-001" {
		t.Fatalf("expected RuleID HAJI-CANON-001, got %s", RuleID(err))
	}
}

type failingText struct{}

var errMarshal = errors.New("marshal failed")

func (failingText) MarshalText() ([]byte, error) { return nil, errMarshal }

func TestDigest_ErrorTaxonomy_WrapsCause(t *testing.T) {
	_, err := Digest(failingText{})
	if RuleID(err) != "HAJI-CANON-002" {
		t.Fatalf("expected RuleID HAJI-CANON-002, got %v", err)
	}
	if !errors.Is(err, errMarshal) {
		t.Fatalf("expected cause to be preserved")
	}
}

func TestErrorTaxonomy_ForeignErrors(t *testing.T) {
	err := errors.New("plain")
	if IsKind(err, KindEncoding) {
		t.Fatalf("plain errors have no Kind")
	}
	if RuleID(err) != "" {
		t.Fatalf("plain errors have no RuleID")
	}
	var e *Error
	if e.Error() != "<nil>" || e.Unwrap() != nil {
		t.Fatalf("nil *Error must be safe to use")
	}
}
