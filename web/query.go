package web

import (
	"net/url"
	"strconv"
	"strings"
)

func parseQuery(search string) url.Values {
	v, err := url.ParseQuery(strings.TrimPrefix(search, "?"))
	if err != nil {
		return url.Values{}
	}
	return v
}

// QueryFlag reports whether a page query string such as "?debug" or
// "?debug=1" turns name on.
func QueryFlag(search, name string) bool {
	v := parseQuery(search)
	if _, ok := v[name]; !ok {
		return false
	}
	switch strings.ToLower(v.Get(name)) {
	case "0", "false", "off", "no":
		return false
	}
	return true
}

// QueryUint reads a 32-bit unsigned value from a page query string.
func QueryUint(search, name string) (uint64, bool) {
	raw := parseQuery(search).Get(name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return n, true
}
