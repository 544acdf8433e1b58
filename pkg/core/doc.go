// Package core provides a small, stable facade over globfind's internal
// engine for external integrations. It re-exports a narrow API surface so
// other tools can depend on a stable import path without reaching into
// internal packages.
//
// Example:
//
//	files, err := core.FindFiles(core.Config{
//		Root:     ".",
//		Includes: []string{"./src/**/*.go"},
//		Excludes: []string{"*_test.go"},
//	})
//	if err != nil { /* handle */ }
//	_ = core.MarshalFiles(os.Stdout, files)
package core
