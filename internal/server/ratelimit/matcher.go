package ratelimit

import "strings"

// MatchEndpoint finds the endpoint configuration that matches the given path
// and method. Exact path matches win, then suffix rules, then the longest
// matching prefix. Returns nil when no rule matches.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Exact matches first
	for i := range configs {
		c := &configs[i]
		if c.Path == path && c.Method == method {
			return c
		}
	}

	// Suffix rules next. A rule like "/roadmap" covers
	// "/sessions/{id}/roadmap" for every session, and must not be
	// shadowed by the broad "/sessions/" prefix rule.
	var best *EndpointConfig
	bestLen := 0
	for i := range configs {
		c := &configs[i]
		if c.Method != method || strings.HasSuffix(c.Path, "/") {
			continue
		}
		if strings.HasSuffix(path, c.Path) && len(c.Path) > bestLen {
			best = c
			bestLen = len(c.Path)
		}
	}
	if best != nil {
		return best
	}

	// Finally the longest prefix match
	bestLen = 0
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if strings.HasPrefix(path, c.Path) && len(c.Path) > bestLen {
			best = c
			bestLen = len(c.Path)
		}
	}
	return best
}
