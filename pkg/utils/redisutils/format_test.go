package redisutils

import (
	"reflect"
	"testing"
)

func TestFormatEdge(t *testing.T) {
	testCases := []struct {
		name        string
		edge        []uint32
		expectedStr string
	}{
		{
			name:        "empty edge",
			edge:        []uint32{},
			expectedStr: "",
		},
		{
			name:        "pair",
			edge:        []uint32{1, 2},
			expectedStr: "1,2",
		},
		{
			name:        "hyperedge",
			edge:        []uint32{3, 40, 500},
			expectedStr: "3,40,500",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			str := FormatEdge(test.edge)
			if str != test.expectedStr {
				t.Errorf("FormatEdge(): expected %v, got %v", test.expectedStr, str)
			}
		})
	}
}

func TestParseEdge(t *testing.T) {
	testCases := []struct {
		name          string
		strEdge       string
		expectedEdge  []uint32
		expectedError bool
	}{
		{
			name:         "empty string",
			strEdge:      "",
			expectedEdge: []uint32{},
		},
		{
			name:         "valid",
			strEdge:      "1,2,7",
			expectedEdge: []uint32{1, 2, 7},
		},
		{
			name:          "not a number",
			strEdge:       "1,a",
			expectedError: true,
		},
		{
			name:          "negative",
			strEdge:       "-1,2",
			expectedError: true,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			edge, err := ParseEdge(test.strEdge)
			if (err != nil) != test.expectedError {
				t.Fatalf("ParseEdge(): expected error %v, got %v", test.expectedError, err)
			}

			if err != nil {
				return
			}

			if !reflect.DeepEqual(edge, test.expectedEdge) {
				t.Errorf("ParseEdge(): expected %v, got %v", test.expectedEdge, edge)
			}
		})
	}
}

func TestParseEdges(t *testing.T) {
	edges, err := ParseEdges([]string{"1,2", "2,3"})
	if err != nil {
		t.Fatalf("ParseEdges(): expected nil, got %v", err)
	}

	expected := [][]uint32{{1, 2}, {2, 3}}
	if !reflect.DeepEqual(edges, expected) {
		t.Errorf("ParseEdges(): expected %v, got %v", expected, edges)
	}

	if _, err := ParseEdges([]string{"1,2", "x"}); err == nil {
		t.Errorf("ParseEdges(): expected error, got nil")
	}
}
