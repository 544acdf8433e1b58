// Package report renders scan results and pattern diagnostics for the CLI.
package report
