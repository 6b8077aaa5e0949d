package arrays

// Sum returns the arithmetic sum of all elements of a.
// An empty or nil slice sums to 0. Overflow wraps as Go int arithmetic does.
//
// Complexity: O(n) time, O(1) memory.
func Sum(a []int) int {
	sum := 0
	for _, v := range a {
		sum += v
	}

	return sum
}

// FindMax returns the greatest element of a under natural integer ordering.
//
// Errors:
//   - ErrInvalidArgument if a is nil or empty; a maximum is undefined.
//
// Complexity: O(n) time, O(1) memory.
func FindMax(a []int) (int, error) {
	if len(a) == 0 {
		return 0, ErrInvalidArgument
	}

	maxVal := a[0]
	for i := 1; i < len(a); i++ {
		if a[i] > maxVal {
			maxVal = a[i]
		}
	}

	return maxVal, nil
}

// Rotate rotates a right by k positions in place.
//
// Algorithm Outline:
//  1. n = len(a); if n == 0 return (no-op).
//  2. k = ((k % n) + n) % n, so k lands in [0, n).
//  3. Reverse a[0..n-1].
//  4. Reverse a[0..k-1] (empty when k == 0).
//  5. Reverse a[k..n-1].
//
// Example:
//
//	a := []int{1, 2, 3, 4, 5}
//	Rotate(a, 2)  // [4 5 1 2 3]
//	Rotate(a, -2) // back to [1 2 3 4 5]
//
// Complexity: O(n) time, O(1) memory.
func Rotate(a []int, k int) {
	n := len(a)
	if n == 0 {
		return
	}

	k = ((k % n) + n) % n
	if k == 0 {
		return
	}

	reverse(a, 0, n-1)
	reverse(a, 0, k-1)
	reverse(a, k, n-1)
}

// reverse swaps a[start..end] (inclusive) end-to-end until the indices meet.
// A degenerate range (start >= end) is left untouched.
func reverse(a []int, start, end int) {
	for start < end {
		a[start], a[end] = a[end], a[start]
		start++
		end--
	}
}
