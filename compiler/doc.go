// Package compiler implements the render-graph compiler pipeline: cull,
// serial order, parallelizability analysis, task fusion, resource
// lifetime aliasing and template synthesis, sequenced by Compile.
package compiler
