// The combinatorics package computes binomial coefficients and enumerates
// the k-subsets of a finite set.
package combinatorics

import (
	"fmt"
	"math/big"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/vertex-lab/hyperwalk/pkg/models"
	"github.com/vertex-lab/hyperwalk/pkg/utils/sliceutils"
)

// maxPrealloc caps how many subsets Combinations allocates upfront.
const maxPrealloc = 1 << 16

// key identifies a binomial coefficient C(n, k) with k <= n/2.
type key struct {
	n, k int
}

/*
pascal is the process-wide memo table of binomial coefficients. Only the
canonical half of each row (k <= n/2) is stored, since C(n, k) = C(n, n-k).
Entries are created on first use and never evicted. Values in the table are
never mutated; callers receive copies.
*/
var pascal = xsync.NewMapOf[key, *big.Int]()

var one = big.NewInt(1)

// Choose() returns the binomial coefficient C(n, k), the number of k-subsets of
// a set of n elements. It returns ErrInvalidArgument if n or k are negative.
func Choose(n, k int) (*big.Int, error) {
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("%w: n = %d, k = %d", models.ErrInvalidArgument, n, k)
	}

	return new(big.Int).Set(choose(n, k)), nil
}

// ChooseUint64() is like Choose, but returns ErrOverflow if the result doesn't fit into an uint64.
func ChooseUint64(n, k int) (uint64, error) {
	C, err := Choose(n, k)
	if err != nil {
		return 0, err
	}

	if !C.IsUint64() {
		return 0, fmt.Errorf("%w: C(%d, %d)", models.ErrOverflow, n, k)
	}

	return C.Uint64(), nil
}

// CacheSize() returns the number of binomial coefficients in the memo table.
func CacheSize() int {
	return pascal.Size()
}

// lookup returns C(n, k) from the base cases or the memo table. The second
// return value is false if the coefficient hasn't been computed yet.
func lookup(n, k int) (*big.Int, bool) {
	if k > n {
		return new(big.Int), true
	}

	if 2*k > n {
		k = n - k
	}

	if k == 0 {
		return one, true
	}

	return pascal.Load(key{n: n, k: k})
}

// choose computes C(n, k) with Pascal's rule, filling the memo table bottom-up
// one row at a time, so that every C(i-1, *) needed by row i is already there.
func choose(n, k int) *big.Int {
	if C, exists := lookup(n, k); exists {
		return C
	}

	if 2*k > n {
		k = n - k
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= min(k, i/2); j++ {
			if _, exists := pascal.Load(key{n: i, k: j}); exists {
				continue
			}

			left, _ := lookup(i-1, j-1)
			right, _ := lookup(i-1, j)
			pascal.LoadOrStore(key{n: i, k: j}, new(big.Int).Add(left, right))
		}
	}

	C, _ := lookup(n, k)
	return C
}

// ChooseSet() returns all the subsets of s of cardinality k. Each subset is
// sorted in ascending order, and the subsets are sorted lexicographically.
// It returns ErrInvalidArgument if k is negative.
func ChooseSet(s mapset.Set[uint32], k int) ([][]uint32, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k = %d", models.ErrInvalidArgument, k)
	}

	if s == nil {
		return Combinations(nil, k), nil
	}

	return Combinations(s.ToSlice(), k), nil
}

/*
Combinations() returns the k-combinations of the distinct elements of the slice,
in lexicographic order. Duplicates in elements are ignored, and elements isn't
changed in the caller. It returns an empty slice if k is negative or bigger than
the number of distinct elements.

The combinations are enumerated with an index vector idx, where idx[i] is the
position (in the sorted elements) of the i-th element of the current combination.
*/
func Combinations(elements []uint32, k int) [][]uint32 {

	elements = sliceutils.Unique(elements)
	m := len(elements)
	if k < 0 || k > m {
		return [][]uint32{}
	}

	size, err := ChooseUint64(m, k)
	if err != nil || size > maxPrealloc {
		size = maxPrealloc
	}
	combinations := make([][]uint32, 0, size)

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		combination := make([]uint32, k)
		for i, pos := range idx {
			combination[i] = elements[pos]
		}
		combinations = append(combinations, combination)

		// find the rightmost index that can still be advanced
		i := k - 1
		for i >= 0 && idx[i] == m-k+i {
			i--
		}

		if i < 0 {
			return combinations
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
