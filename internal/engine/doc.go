// Package engine resolves include/exclude glob patterns against a directory
// tree. It walks the tree top-down, filters each directory listing with the
// include/exclude precedence rules and only descends into directories that
// an include pattern could still match beneath. This package is internal;
// external consumers should use the stable facade in pkg/core.
package engine
