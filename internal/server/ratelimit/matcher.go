package ratelimit

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Paths must match exactly. Returns the matching EndpointConfig or nil if no
// match is found.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}
	return nil
}
