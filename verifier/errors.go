package verifier

import "errors"

// Conversion errors. All of them are terminal for the attempt: the conversion
// is a pure transform with no transient failure modes, so nothing is retried.
// Callers match with errors.Is; the wrapped message carries the offending
// field name and index.
var (
	// ErrMalformedFieldElement means a field element string is not a valid
	// non-negative base-10 integer.
	ErrMalformedFieldElement = errors.New("malformed field element")

	// ErrFieldElementOverflow means a field element value does not fit in 32
	// bytes. Such values are rejected, never truncated.
	ErrFieldElementOverflow = errors.New("field element does not fit in 32 bytes")

	// ErrEmptyVerificationKey means the verification key is missing required
	// coordinates or points.
	ErrEmptyVerificationKey = errors.New("verification key is missing required elements")

	// ErrTooManyPublicInputs means the key carries more public inputs than the
	// verifier memory layout has slots for.
	ErrTooManyPublicInputs = errors.New("too many public inputs for the verifier memory layout")

	// ErrUnresolvedToken means the instantiated template still contains
	// placeholders after substitution.
	ErrUnresolvedToken = errors.New("template contains unresolved placeholders")
)
