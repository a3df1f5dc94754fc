package maketen

import "errors"

// Sentinel errors for solver-internal failure conditions.
// These can be used with errors.Is() for error handling.
var (
	// ErrCanonicalize indicates the canonicalizer's rewrite rules did not
	// reach a fixpoint within the configured pass budget. This signals a
	// rule-interaction bug rather than a bad input; no combination of
	// numbers should trigger it.
	ErrCanonicalize = errors.New("maketen: canonicalization did not converge")
)
