// SPDX-License-Identifier: MIT
// Package: fixseq
//
// errors.go — sentinel errors for the fixseq package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • TryNewWith attaches the failing index with %w at the wrap site.

package fixseq

import (
	"errors"
	"fmt"
)

// ErrGenFailed indicates that a generator invocation returned a non-nil
// error during TryNewWith, aborting construction.
// Classification: propagated collaborator failure (the package defines no
// failure modes of its own).
// Usage: if errors.Is(err, fixseq.ErrGenFailed) { /* generator at fault */ }.
// The generator's own error remains reachable through errors.Is/As.
var ErrGenFailed = errors.New("fixseq: generator failed")

// genFailedf wraps a generator error with the failing index, keeping both
// ErrGenFailed and err in the chain.
func genFailedf(idx int, err error) error {
	return fmt.Errorf("%w at index %d: %w", ErrGenFailed, idx, err)
}
