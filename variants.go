// SPDX-License-Identifier: MIT
// Package: fixseq
//
// variants.go — thin constructor variants over NewWith.
//
// Contract:
//   - Every variant delegates to NewWith and inherits its guarantees
//     (exact length, single allocation, panic on negative n).

package fixseq

import "golang.org/x/exp/constraints"

// Number constrains Iota's element type to the built-in numeric kinds.
type Number interface {
	constraints.Integer | constraints.Float
}

// NewCopies returns a slice of n copies of val.
// Complexity: O(n) time, one allocation.
// Panics if n < 0.
func NewCopies[T any](n int, val T) []T {
	return NewWith(n, func(int) T { return val })
}

// NewZeroes returns a slice of n zero values of T.
// Complexity: O(n) time, one allocation.
// Panics if n < 0.
func NewZeroes[T any](n int) []T {
	var zero T

	return NewWith(n, func(int) T { return zero })
}

// Iota returns the arithmetic progression start, start+step, …,
// start+(n-1)·step as a slice of length exactly n. step may be zero or
// negative. Element i is computed as start + T(i)·step, so float
// progressions do not accumulate drift across indices.
// Complexity: O(n) time, one allocation.
// Panics if n < 0.
func Iota[T Number](n int, start, step T) []T {
	return NewWith(n, func(idx int) T { return start + T(idx)*step })
}
