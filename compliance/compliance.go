package compliance

// ComplianceMode selects how strictly canonicalization treats values whose
// text form is not a documented, stable contract.
//
// Permissive accepts fmt.Stringer/error text and non-finite floats, and lets
// the JSON encoder repair invalid UTF-8 nested inside composites.
// Strict rejects all of them with a structured error.
type ComplianceMode int

const (
	// Permissive is the zero value and the default.
	Permissive ComplianceMode = iota
	// Strict rejects values without a stable canonical form.
	Strict
)

func (m ComplianceMode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}
