package hajihash

import "xdao.co/hajihash/compliance"

// Options controls canonicalization behavior.
//
// Default behavior is Permissive when Options{} is used.
type Options struct {
	Mode compliance.ComplianceMode
}

func (o Options) withDefaults() Options {
	switch o.Mode {
	case compliance.Permissive, compliance.Strict:
		return o
	default:
		// Unknown modes fail closed.
		o.Mode = compliance.Strict
		return o
	}
}

func (o Options) strict() bool {
	return o.Mode == compliance.Strict
}
