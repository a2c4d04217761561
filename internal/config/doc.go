// Package config loads and validates the TOML configuration file. Loading
// always starts from Default(), applies file overrides when a file exists,
// then normalizes paths and validates the result, so callers never see a
// partially configured value.
package config
