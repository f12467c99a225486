package redisutils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatEdge() formats an edge into a string ready to be stored in Redis (e.g. "1,2,7").
func FormatEdge(edge []uint32) string {
	strVals := make([]string, len(edge))
	for i, val := range edge {
		strVals[i] = FormatID(val)
	}

	return strings.Join(strVals, ",")
}

// ParseEdge() parses a string to an edge. The empty string is the empty edge.
func ParseEdge(strEdge string) ([]uint32, error) {

	if len(strEdge) == 0 {
		return []uint32{}, nil
	}

	strVals := strings.Split(strEdge, ",")
	edge := make([]uint32, len(strVals))

	for i, str := range strVals {
		val, err := ParseID(str)
		if err != nil {
			return nil, fmt.Errorf("failed to parse edge \"%s\": %w", strEdge, err)
		}

		edge[i] = val
	}
	return edge, nil
}

// ParseEdges() parses a slice of strings to a slice of edges.
func ParseEdges(strEdges []string) ([][]uint32, error) {
	edges := make([][]uint32, len(strEdges))
	for i, strEdge := range strEdges {
		edge, err := ParseEdge(strEdge)
		if err != nil {
			return nil, err
		}
		edges[i] = edge
	}

	return edges, nil
}

// FormatID() formats a vertex (uint32) into a string
func FormatID(ID uint32) string {
	return strconv.FormatUint(uint64(ID), 10)
}

// ParseID() parses a vertex (uint32) from the specified string
func ParseID(strVal string) (uint32, error) {
	parsedVal, err := strconv.ParseUint(strVal, 10, 32)
	return uint32(parsedVal), err
}
