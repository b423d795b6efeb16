// Package diag defines the diagnostic model shared by the lexer and the
// flatten pipeline.
//
// Diagnostic is the central record: Severity, a compact numeric Code with
// a stable string form, a short human message, and the primary source
// span. Producers emit through reporter interfaces of their own (see
// internal/lexer) and aggregate into a Bag, which the CLI renders.
//
// The package performs no formatting or IO. Rendering lives in
// internal/diagfmt.
package diag
