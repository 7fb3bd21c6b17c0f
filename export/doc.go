// Package export serializes an already-computed render graph or
// compiler output for external tools: JSON for machine consumption,
// Mermaid and Graphviz DOT for visualization. It is pure serialization —
// none of these formats are part of the compiler's core contract.
package export
