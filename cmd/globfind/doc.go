// Package globfind provides the command-line interface for globfind.
// It configures subcommands (find, check, rules, config, completion), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/redactyl/globfind/cmd/globfind"
//	func main() { globfind.Execute() }
package globfind
