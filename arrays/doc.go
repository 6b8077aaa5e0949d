// Package arrays provides in-place utilities over fixed-length integer
// sequences: summing, finding the maximum and rotating.
//
// What:
//
//   - Sum adds every element of a []int (0 for an empty slice).
//   - FindMax scans for the largest element, rejecting empty input.
//   - Rotate shifts elements right by k positions, wrapping around the end,
//     using the three-reversal technique.
//
// Why:
//
//   - Ring buffers: realign a fixed buffer after a wrap without reallocating.
//   - Scheduling: cycle a fixed roster of slots by an offset.
//   - Teaching: the classic O(1)-extra-space rotation.
//
// Complexity:
//
//   - Sum:     O(n), Memory: O(1).
//   - FindMax: O(n), Memory: O(1).
//   - Rotate:  O(n), Memory: O(1) (exactly n swaps at most).
//
// Semantics:
//
//   - The caller owns the slice. No function appends to it, reslices it or
//     allocates a copy; Rotate only reorders it.
//   - A nil slice behaves like an empty one.
//   - Rotate normalizes k into [0, n) with ((k % n) + n) % n, so negative k
//     rotates left and k ≥ n wraps.
//
// Errors:
//
//   - ErrInvalidArgument: FindMax called on a nil or empty slice.
//
// Example:
//
//	a := []int{1, 2, 3, 4, 5}
//	arrays.Rotate(a, 2) // a == [4 5 1 2 3]
//	m, err := arrays.FindMax(a)
package arrays
