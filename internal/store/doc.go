// Package store persists user-defined directory shortcuts in a small TOML
// file and merges them over the built-in defaults (., .., ..., tmp, ~)
// that are recomputed on every run.
package store
