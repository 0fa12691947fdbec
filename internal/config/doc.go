// Package config provides configuration loading, merging, and validation
// facilities for the keyvault CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-empty fields):
//  1. JSON config file
//  2. Environment variables (KEYVAULT_ prefix)
//  3. Command-line flags
//
// Fields left empty by every source take the values returned by [Defaults].
// The main entry point is [GetStructuredConfig].
package config
