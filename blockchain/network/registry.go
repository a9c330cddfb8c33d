package network

import (
	cmap "github.com/orcaman/concurrent-map"
)

// customNetworks holds presets registered at runtime, e.g. localnet or ci environments
var customNetworks = cmap.New()

// Register adds a custom network preset under the given name and reports
// whether it took effect. The first registration for a name wins, and built-in
// networks cannot be shadowed. Safe for concurrent use.
func Register(name string, config Config) bool {
	if _, ok := networkMapping[name]; ok {
		return false
	}
	return customNetworks.SetIfAbsent(name, config)
}

func registered(name string) (Config, bool) {
	value, ok := customNetworks.Get(name)
	if !ok {
		return unknownConfig(), false
	}
	return value.(Config), true
}
