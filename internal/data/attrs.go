package data

import (
	"strconv"
	"strings"
)

// XML attribute conversion helpers. Source tables omit attributes freely, so
// every field carries an explicit default instead of failing the whole file.

func attrInt32(s string, def int32) int32 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return def
	}
	return int32(n)
}

func attrFloat64(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func attrBool(s string) bool {
	return s == "true"
}

func attrString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
