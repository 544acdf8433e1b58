// Package config loads globfind configuration from local and global YAML
// files. CLI code applies the precedence CLI > local > global when mapping
// files and flags into an engine configuration.
package config
