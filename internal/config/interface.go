package config

import "context"

// Loader is the interface for a format-specific almanac loader.
type Loader interface {
	// Load reads the almanac stored at the given paths and translates it into
	// the format-agnostic definition. Several paths are merged in order.
	Load(ctx context.Context, paths ...string) (*Definition, error)
}
