package compiler

// Options is the compiler's entire configuration surface.
type Options struct {
	// AllowParallelization enables the fusion phase to place independent
	// async-capable tasks alongside their raster partner. When false,
	// every task carries only its primary pass and no task is ever fused.
	AllowParallelization bool
}
