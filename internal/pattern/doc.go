// Package pattern classifies, validates and roots include/exclude glob
// patterns before they reach the engine. Everything here is a pure function
// over strings; no filesystem access happens in this package.
package pattern
