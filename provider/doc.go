// Package provider loads configuration sections from INI and YAML files
// and serves them to the resolve engine as ordered raw key/value pairs.
//
// All formats parse into the same ordered [Document], so the engine never
// needs to know which source format a section came from. Multiple input
// files merge into one document: later files override earlier values for
// the same section and key, while the original declaration order of
// sections and keys is preserved.
//
// [Discover] locates a configuration file by name, searching the starting
// directory and each of its ancestors.
package provider
