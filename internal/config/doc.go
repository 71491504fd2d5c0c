// Package config loads ~/.berdumprc, a flat key:value file read by
// cmd/berdump.
//
// # Example configuration
//
//	trace: on
//	allocator: pool
//
// # Environment variables
//
// Values may reference environment variables with the same
// ${VAR}/${VAR:-default} substitution the reference server's config
// loader used, applied before parsing:
//
//	allocator: ${BERDUMP_ALLOCATOR:-heap}
//
// Load returns DefaultConfig() unmodified if the file does not exist;
// a berdump invocation never requires a config file.
package config
