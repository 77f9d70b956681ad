package parse

import "github.com/dbai-tuwien/setafrup/internal/store"

// Options names every input file a run needs. DescriptionPath and
// RequiredPath are optional (empty string skips them).
type Options struct {
	InstancePath    string
	DescriptionPath string
	ProofPath       string
	RequiredPath    string
	Semantics       Semantics
}

// Load parses the framework, optional description, optional required
// arguments and proof, in that order, and freezes the result into a Store
// ready for verification. The returned bool reports whether the required
// arguments (if any) are internally consistent; an inconsistent set is not
// a parse error; it short-circuits verification to vacuous success.
func Load(opts Options) (*store.Store, bool, error) {
	builder, names, err := ParseFramework(opts.InstancePath, opts.DescriptionPath)
	if err != nil {
		return nil, false, err
	}

	requiredConsistent := true
	if opts.RequiredPath != "" {
		required, err := ParseRequired(opts.RequiredPath, builder.ArgumentCount(), names)
		if err != nil {
			return nil, false, err
		}
		builder.SetRequired(required)
		requiredConsistent = RequiredConsistent(required)
	}

	if err := ParseProof(opts.ProofPath, opts.Semantics, builder); err != nil {
		return nil, false, err
	}

	return builder.Freeze(), requiredConsistent, nil
}
