// SPDX-License-Identifier: MIT
// Package: fixseq
//
// gen.go — generator function types and the core construction loop.
//
// Contract:
//   - NewWith and TryNewWith allocate exactly once: make([]T, n), len == cap == n.
//   - The generator is invoked exactly once per index, in strictly ascending
//     order (0, 1, …, n-1); no index is skipped, repeated, or reordered.
//   - Validation panics are confined to negative lengths (programmer error);
//     runtime failures surface only through TryNewWith's error return.

package fixseq

import "fmt"

// GenFn produces the element for a given zero-based index.
// It may be pure or side-effecting; because side effects are allowed, the
// ascending invocation order documented on NewWith is part of the contract.
type GenFn[T any] func(idx int) T

// ErrGenFn is the fallible counterpart of GenFn: it either produces the
// element for idx or reports why it could not. A non-nil error aborts the
// construction that invoked it.
type ErrGenFn[T any] func(idx int) (T, error)

// NewWith returns a freshly allocated slice of length exactly n, where
// element i is gen(i). The generator is invoked exactly n times, once per
// index, in strictly ascending order. n = 0 yields an empty slice and gen
// is never invoked.
//
// The backing array is allocated once, sized exactly for n elements; the
// result aliases nothing and is exclusively the caller's. If gen panics at
// some index, the panic propagates unchanged and no slice is returned —
// the already-produced prefix becomes unreachable and is collected.
//
// Complexity: O(n) invocations, one allocation.
// Panics if n < 0; lengths beyond addressable memory trap inside make.
func NewWith[T any](n int, gen GenFn[T]) []T {
	if n < 0 {
		panic(fmt.Sprintf("fixseq: NewWith: n must be ≥ 0, got %d", n))
	}
	ts := make([]T, n)
	for idx := range ts {
		ts[idx] = gen(idx)
	}

	return ts
}

// TryNewWith is NewWith for fallible generators. On success it returns a
// slice of length exactly n with element i equal to the value gen(i)
// produced, under the same exactly-once, ascending-order, allocate-once
// contract as NewWith.
//
// On the first index whose invocation returns a non-nil error,
// construction aborts: no partial sequence is returned, indices past the
// failing one are never visited, and the result error wraps both
// ErrGenFailed and the generator's error (branch with errors.Is).
//
// Complexity: O(k+1) invocations for a failure at index k, O(n) otherwise.
// Panics if n < 0.
func TryNewWith[T any](n int, gen ErrGenFn[T]) ([]T, error) {
	if n < 0 {
		panic(fmt.Sprintf("fixseq: TryNewWith: n must be ≥ 0, got %d", n))
	}
	ts := make([]T, n)
	var err error
	for idx := range ts {
		if ts[idx], err = gen(idx); err != nil {
			return nil, genFailedf(idx, err)
		}
	}

	return ts, nil
}
