package arrays_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/arrays/arrays"
)

const benchN = 1 << 16

func benchSlice() []int {
	r := rand.New(rand.NewSource(42))
	a := make([]int, benchN)
	for i := range a {
		a[i] = r.Int()
	}

	return a
}

// BenchmarkSum measures Sum over 65536 random ints.
// Complexity: O(n)
func BenchmarkSum(b *testing.B) {
	a := benchSlice()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = arrays.Sum(a)
	}
}

// BenchmarkFindMax measures FindMax over 65536 random ints.
// Complexity: O(n)
func BenchmarkFindMax(b *testing.B) {
	a := benchSlice()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arrays.FindMax(a)
	}
}

// BenchmarkRotate measures in-place rotation by a non-trivial offset.
// Complexity: O(n), Memory: O(1)
func BenchmarkRotate(b *testing.B) {
	a := benchSlice()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arrays.Rotate(a, benchN/3)
	}
}
