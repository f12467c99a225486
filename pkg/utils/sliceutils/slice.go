// The sliceutils package contains helpers for slices of vertices ([]uint32).
package sliceutils

import (
	"slices"
)

// Unique() returns a sorted copy of slice without duplicates. It doesn't change slice in the caller.
func Unique(slice []uint32) []uint32 {
	unique := slices.Clone(slice)
	slices.Sort(unique)
	return slices.Compact(unique)
}

// EqualElements() returns whether slice1 and slice2 have the same elements, regardless of their order.
// Multiplicity matters: {1,1,2} and {1,2} are different.
func EqualElements(slice1, slice2 []uint32) bool {
	if len(slice1) != len(slice2) {
		return false
	}

	s1 := slices.Clone(slice1)
	s2 := slices.Clone(slice2)
	slices.Sort(s1)
	slices.Sort(s2)
	return slices.Equal(s1, s2)
}

/*
returns the difference between slice1 and slice2; in set notation:

- difference = slice1 - slice2

Both slices get sorted. Time complexity O(n * logn + m * logm), where n and m
are the lengths of the slices.
*/
func Difference(slice1, slice2 []uint32) []uint32 {

	slices.Sort(slice1)
	slices.Sort(slice2)
	difference := []uint32{}

	i, j := 0, 0
	len1, len2 := len(slice1), len(slice2)

	// Use two pointers to compare both sorted lists
	for i < len1 && j < len2 {
		if slice1[i] < slice2[j] {
			// the element is in slice1 but not in slice2
			difference = append(difference, slice1[i])
			i++
		} else if slice1[i] > slice2[j] {
			j++
		} else {
			i++
			j++
		}
	}

	// Add all elements not traversed
	difference = append(difference, slice1[i:]...)
	return difference
}

// Compare() compares two slices lexicographically, like strings.Compare.
func Compare(slice1, slice2 []uint32) int {
	return slices.Compare(slice1, slice2)
}

// SortLex() sorts the slices in lexicographic order, in place, and returns them.
func SortLex(sets [][]uint32) [][]uint32 {
	slices.SortFunc(sets, Compare)
	return sets
}
