package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// CacheTTLSeconds is how long parsed dump documents stay cached
	// before being fetched and parsed again.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// LeftDump is the object name of the left-hand dump the server compares.
	LeftDump string `mapstructure:"left_dump" default:"left.dump"`
	// RightDump is the object name of the right-hand dump.
	RightDump string `mapstructure:"right_dump" default:"right.dump"`
}

// CacheTTL returns the cache lifetime as a duration.
func (c Config) CacheTTL() time.Duration {
	ttl := c.CacheTTLSeconds
	if ttl <= 0 {
		ttl = 300
	}
	return time.Duration(ttl) * time.Second
}
