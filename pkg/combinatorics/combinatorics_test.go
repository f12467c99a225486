package combinatorics

import (
	"errors"
	"math/big"
	"reflect"
	"sync"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/vertex-lab/hyperwalk/pkg/models"
)

func TestChoose(t *testing.T) {
	testCases := []struct {
		name          string
		n             int
		k             int
		expectedC     int64
		expectedError error
	}{
		{
			name:          "negative n",
			n:             -1,
			k:             0,
			expectedError: models.ErrInvalidArgument,
		},
		{
			name:          "negative k",
			n:             3,
			k:             -2,
			expectedError: models.ErrInvalidArgument,
		},
		{
			name:      "zero choose zero",
			n:         0,
			k:         0,
			expectedC: 1,
		},
		{
			name:      "k bigger than n",
			n:         3,
			k:         4,
			expectedC: 0,
		},
		{
			name:      "k = 0",
			n:         7,
			k:         0,
			expectedC: 1,
		},
		{
			name:      "k = n",
			n:         7,
			k:         7,
			expectedC: 1,
		},
		{
			name:      "k = 1",
			n:         9,
			k:         1,
			expectedC: 9,
		},
		{
			name:      "five choose two",
			n:         5,
			k:         2,
			expectedC: 10,
		},
		{
			name:      "five choose three",
			n:         5,
			k:         3,
			expectedC: 10,
		},
		{
			name:      "twenty choose ten",
			n:         20,
			k:         10,
			expectedC: 184756,
		},
		{
			name:      "sixty choose thirty",
			n:         60,
			k:         30,
			expectedC: 118264581564861424,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			C, err := Choose(test.n, test.k)
			if !errors.Is(err, test.expectedError) {
				t.Fatalf("Choose(%d, %d): expected %v, got %v", test.n, test.k, test.expectedError, err)
			}

			if err != nil {
				return
			}

			if C.Cmp(big.NewInt(test.expectedC)) != 0 {
				t.Errorf("Choose(%d, %d): expected %v, got %v", test.n, test.k, test.expectedC, C)
			}
		})
	}
}

func TestChooseProperties(t *testing.T) {
	const maxN = 40

	for n := 0; n <= maxN; n++ {
		for k := 0; k <= n; k++ {
			C, err := Choose(n, k)
			if err != nil {
				t.Fatalf("Choose(%d, %d): expected nil, got %v", n, k, err)
			}

			symmetric, _ := Choose(n, n-k)
			if C.Cmp(symmetric) != 0 {
				t.Errorf("Choose(%d, %d) = %v differs from Choose(%d, %d) = %v", n, k, C, n, n-k, symmetric)
			}

			if n == 0 || k == 0 {
				continue
			}

			// Pascal's rule
			left, _ := Choose(n-1, k-1)
			right, _ := Choose(n-1, k)
			if sum := new(big.Int).Add(left, right); C.Cmp(sum) != 0 {
				t.Errorf("Choose(%d, %d): expected %v, got %v", n, k, sum, C)
			}
		}

		zero, _ := Choose(n, n+1)
		if zero.Sign() != 0 {
			t.Errorf("Choose(%d, %d): expected 0, got %v", n, n+1, zero)
		}
	}
}

func TestChooseLarge(t *testing.T) {
	// C(200, 100) = 90548514656103281165404177077484163874504589675413336841320
	expected, _ := new(big.Int).SetString("90548514656103281165404177077484163874504589675413336841320", 10)

	C, err := Choose(200, 100)
	if err != nil {
		t.Fatalf("Choose(): expected nil, got %v", err)
	}

	if C.Cmp(expected) != 0 {
		t.Errorf("Choose(): expected %v, got %v", expected, C)
	}
}

func TestChooseReturnsCopy(t *testing.T) {
	C, _ := Choose(10, 3)
	C.SetInt64(-1)

	again, _ := Choose(10, 3)
	if again.Cmp(big.NewInt(120)) != 0 {
		t.Errorf("Choose(): the cache was mutated, expected 120, got %v", again)
	}
}

func TestChooseConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*big.Int, 16)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Choose(90+i%3, 30)
		}(i)
	}
	wg.Wait()

	for i, C := range results {
		expected, _ := Choose(90+i%3, 30)
		if C.Cmp(expected) != 0 {
			t.Errorf("Choose(%d, 30): expected %v, got %v", 90+i%3, expected, C)
		}
	}

	if CacheSize() == 0 {
		t.Errorf("CacheSize(): expected a populated cache")
	}
}

func TestChooseUint64(t *testing.T) {
	testCases := []struct {
		name          string
		n             int
		k             int
		expectedC     uint64
		expectedError error
	}{
		{
			name:          "negative",
			n:             -1,
			k:             1,
			expectedError: models.ErrInvalidArgument,
		},
		{
			name:      "fits",
			n:         5,
			k:         2,
			expectedC: 10,
		},
		{
			name:          "overflow",
			n:             100,
			k:             50,
			expectedError: models.ErrOverflow,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			C, err := ChooseUint64(test.n, test.k)
			if !errors.Is(err, test.expectedError) {
				t.Fatalf("ChooseUint64(): expected %v, got %v", test.expectedError, err)
			}

			if C != test.expectedC {
				t.Errorf("ChooseUint64(): expected %v, got %v", test.expectedC, C)
			}
		})
	}
}

func TestChooseSet(t *testing.T) {
	testCases := []struct {
		name          string
		set           mapset.Set[uint32]
		k             int
		expectedSets  [][]uint32
		expectedError error
	}{
		{
			name:          "negative k",
			set:           mapset.NewSet[uint32](1, 2),
			k:             -1,
			expectedError: models.ErrInvalidArgument,
		},
		{
			name:         "nil set",
			set:          nil,
			k:            0,
			expectedSets: [][]uint32{{}},
		},
		{
			name:         "k bigger than the set",
			set:          mapset.NewSet[uint32](1, 2),
			k:            3,
			expectedSets: [][]uint32{},
		},
		{
			name:         "k = 0",
			set:          mapset.NewSet[uint32](1, 2, 3),
			k:            0,
			expectedSets: [][]uint32{{}},
		},
		{
			name:         "pairs",
			set:          mapset.NewSet[uint32](3, 1, 2),
			k:            2,
			expectedSets: [][]uint32{{1, 2}, {1, 3}, {2, 3}},
		},
		{
			name:         "whole set",
			set:          mapset.NewSet[uint32](4, 2, 9),
			k:            3,
			expectedSets: [][]uint32{{2, 4, 9}},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			sets, err := ChooseSet(test.set, test.k)
			if !errors.Is(err, test.expectedError) {
				t.Fatalf("ChooseSet(): expected %v, got %v", test.expectedError, err)
			}

			if err != nil {
				return
			}

			if diff := cmp.Diff(test.expectedSets, sets); diff != "" {
				t.Errorf("ChooseSet(): mismatch (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestChooseSetCardinality(t *testing.T) {
	set := mapset.NewSet[uint32]()
	for m := 0; m <= 10; m++ {
		if m > 0 {
			set.Add(uint32(m))
		}

		for k := 0; k <= m; k++ {
			subsets, err := ChooseSet(set, k)
			if err != nil {
				t.Fatalf("ChooseSet(): expected nil, got %v", err)
			}

			expected, _ := ChooseUint64(m, k)
			if uint64(len(subsets)) != expected {
				t.Fatalf("ChooseSet(%d, %d): expected %d subsets, got %d", m, k, expected, len(subsets))
			}

			seen := mapset.NewThreadUnsafeSet[string]()
			for _, subset := range subsets {
				if len(subset) != k {
					t.Fatalf("ChooseSet(%d, %d): expected subsets of size %d, got %v", m, k, k, subset)
				}

				if !set.Contains(subset...) {
					t.Fatalf("ChooseSet(%d, %d): %v is not a subset of %v", m, k, subset, set)
				}

				seen.Add(fmtSubset(subset))
			}

			if seen.Cardinality() != len(subsets) {
				t.Fatalf("ChooseSet(%d, %d): expected distinct subsets, got %v", m, k, subsets)
			}
		}
	}
}

func TestCombinations(t *testing.T) {
	elements := []uint32{3, 1, 3, 2}
	original := append([]uint32{}, elements...)

	combinations := Combinations(elements, 2)
	expected := [][]uint32{{1, 2}, {1, 3}, {2, 3}}
	if !reflect.DeepEqual(combinations, expected) {
		t.Errorf("Combinations(): expected %v, got %v", expected, combinations)
	}

	if !reflect.DeepEqual(elements, original) {
		t.Errorf("Combinations(): elements changed from %v to %v", original, elements)
	}

	if got := Combinations(elements, -1); len(got) != 0 {
		t.Errorf("Combinations(): expected no combinations, got %v", got)
	}
}

func fmtSubset(subset []uint32) string {
	b := make([]byte, 0, 4*len(subset))
	for _, v := range subset {
		b = append(b, byte(v), ',')
	}
	return string(b)
}

// ---------------------------------BENCHMARKS---------------------------------

func BenchmarkChoose(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Choose(500, 250)
	}
}

func BenchmarkCombinations(b *testing.B) {
	elements := make([]uint32, 30)
	for i := range elements {
		elements[i] = uint32(i + 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Combinations(elements, 3)
	}
}
