// Package options describes every configuration option the console knows
// about: its storage identifier, value kind, the rule used to cascade it
// across client, group and global scope, and its built-in default.
//
// The catalog is shipped as an embedded YAML document and loaded once at
// package initialisation. Callers normally use [Builtin]; tests may build
// their own catalog with [Load].
package options
