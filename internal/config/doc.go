// Package config loads, normalizes, and validates savescout configuration.
//
// Configuration comes from a TOML file. Load applies repository defaults
// first, then file values, then normalization (path expansion, trimming,
// defaulting) and validation. A missing file is not an error; defaults
// alone produce a working configuration.
package config
