// Package config provides configuration loading, merging, and validation
// facilities for the insight server, the terminal client and the
// provisioning tool.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// Fields left unset by every source receive the package defaults.
//
// The main entry points are [GetStructuredConfig] for the server,
// [GetClientConfig] for the client and [GetStorageConfig] for provisioning.
package config
