// Package keyword provides the token vocabulary: a two-table registry
// distinguishing dialect-gated keyword identifiers from always-valid
// symbols.
package keyword
