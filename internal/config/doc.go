// Package config loads, normalizes, and validates cococonv configuration data.
//
// It supplies repository defaults (the dataset locations the converters were
// first written against), expands user paths including tilde shortcuts, reads
// TOML files, and honours the COCOCONV_LOG_LEVEL environment override. The
// Config type centralizes every knob the converters and CLI need so dataset and
// output directories are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical extension lists, and clear validation errors.
package config
