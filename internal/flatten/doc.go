// Package flatten rewrites a spreadsheet formula so that every cell
// reference backed by a formula is replaced, recursively, by that
// formula's parenthesized expansion. References to plain values, ranges,
// and other files are left alone, so the result is one expression over
// literals, ranges, external references, and function calls only.
//
// The pipeline is Tokenize -> Expand -> Render. Expand consults a
// Context carrying the workbook, the active sheet for unqualified
// references, and an optional debug Tracer.
package flatten
