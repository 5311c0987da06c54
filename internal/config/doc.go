// Package config provides configuration loading, merging, and validation
// facilities for the server and the console.
//
// Configuration is assembled from multiple sources; for each field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags (server only)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetConsoleConfig] for the console.
package config
