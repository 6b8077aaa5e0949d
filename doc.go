// Package arrays is a small collection of in-place utilities for
// fixed-length integer sequences.
//
// 🚀 What's inside?
//
//	• Sum     — total of all elements (0 for an empty sequence)
//	• FindMax — largest element, ErrInvalidArgument on empty input
//	• Rotate  — right rotation by k using three reversals, O(1) extra space
//
// ✨ Why?
//
//   - Predictable – no allocation, no hidden state, no locks
//   - Caller-owned data – functions never resize or copy your slice
//   - Pure Go – no cgo, only testify for tests
//
// Layout:
//
//	arrays/   — Sum, FindMax, Rotate and sentinel errors
//	examples/ — runnable walkthrough of every operation
//
// Quick example:
//
//	[1 2 3 4 5] ──Rotate(k=2)──▶ [4 5 1 2 3]
//
//	go get github.com/katalvlaran/arrays
package arrays
