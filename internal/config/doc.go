// Package config loads and merges application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with mergo in declaration order: environment
// variables first, then flags, then the JSON file referenced by either.
// A non-zero value from an earlier source wins. Defaults for the sync
// timings (debounce delay, poll interval) are applied after the merge so
// a bare client works against a local server with no configuration at all.
package config
