// Package config provides loading, merging, and validation of the bootstrap
// configuration: which environment to resolve, where its profiles live, and
// how the command reports.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-empty fields):
//  1. Command-line flags
//  2. Environment variables (after .env files are loaded)
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
