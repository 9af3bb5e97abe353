package errors

import "fmt"

var (
	ErrMissingCache      = fmt.Errorf("no cached artifact")
	ErrMalformedInput    = fmt.Errorf("malformed input row")
	ErrContractViolation = fmt.Errorf("fingerprints do not share the same genres")
	ErrUnknownBackend    = fmt.Errorf("unknown cache backend")
	ErrUnknownLookup     = fmt.Errorf("unknown title lookup")
	ErrUnknownColumn     = fmt.Errorf("column not found in header")
)
