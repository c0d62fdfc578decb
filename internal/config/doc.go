// Package config loads detour configuration.
//
// Settings are layered: built-in defaults, then the user file, then a
// per-repository file stored inside the repository's .git directory.
package config
