// Package config loads and validates the application configuration.
//
// Configuration is assembled from three sources, merged in order of
// precedence: environment variables, command-line flags, and an optional
// JSON file referenced by either of the first two. Required security
// parameters (token signing key, database DSN) have no defaults and must be
// supplied; everything else falls back to sensible development defaults.
package config
