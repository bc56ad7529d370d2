// Package fixseq builds heap-allocated, fixed-length slices by calling a
// generator function once per index — a tiny stopgap until the standard
// library grows an equivalent.
//
// 🚀 What is fixseq?
//
//	A single-purpose, zero-dependency helper family around one operation:
//		• NewWith:    element i ← gen(i), invoked in strictly ascending order
//		• TryNewWith: same contract for fallible generators (idx → (T, error))
//		• NewCopies:  n copies of one value
//		• NewZeroes:  n zero values
//		• Iota:       arithmetic progression start, start+step, …
//
// ✨ Guarantees
//
//   - Exactly-once, ascending invocation — generators may carry side effects,
//     so call order is part of the contract, not an implementation detail
//   - Allocate-once — the result has len == cap == n, no growth, no over-allocation
//   - All-or-nothing — a failing or panicking generator aborts construction;
//     no partial sequence ever escapes
//   - Pure Go — no cgo, no runtime deps
//
// Quick example:
//
//	nums := fixseq.NewWith(5, func(idx int) int { return idx + 1 })
//	// nums == []int{1, 2, 3, 4, 5}
//
// Validation panics are confined to programmer error (negative length);
// runtime failures surface only through TryNewWith's error return — branch
// on them with errors.Is(err, fixseq.ErrGenFailed).
package fixseq
