// Package fixtures builds small, named render graphs used by tests and
// the demo CLI. It is a convenience layer, not part of the compiler
// core.
package fixtures
