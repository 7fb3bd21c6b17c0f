package compiler

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Andromeda08/RenderGraph/graph"
)

// CompileOption configures ancillary behavior of Compile that lives
// outside the Options config surface — currently, only logging.
type CompileOption func(*compileConfig)

type compileConfig struct {
	logger *zap.SugaredLogger
}

// WithLogger routes the orchestrator's structured logging through the
// given logger instead of a no-op default.
func WithLogger(logger *zap.SugaredLogger) CompileOption {
	return func(c *compileConfig) { c.logger = logger }
}

// Compile runs the full five-phase pipeline over g and returns the
// aggregated result. The first phase to fail short-circuits the
// remainder; Output.HasFailed and Output.FailReason report why.
func Compile(g *graph.Graph, opts Options, compileOpts ...CompileOption) *Output {
	cfg := compileConfig{logger: zap.NewNop().Sugar()}
	for _, o := range compileOpts {
		o(&cfg)
	}
	log := cfg.logger.With("component", "compiler")

	start := time.Now()
	output := &Output{Options: opts}

	fail := func(phase string, kind ErrorKind) *Output {
		log.Errorw("compile phase failed", "phase", phase, "reason", kind.String())
		output.HasFailed = true
		output.FailReason = kind
		CompileTotal.WithLabelValues(kind.String()).Inc()
		CompileDurationSeconds.Observe(time.Since(start).Seconds())
		return output
	}

	culled, err := Cull(g)
	if err != nil {
		return fail("cull", kindOf(err))
	}
	log.Infow("culling complete", "retained", len(culled))

	serialOrder, err := SerialOrder(g, culled)
	if err != nil {
		return fail("serial-order", kindOf(err))
	}
	log.Infow("serial ordering complete", "count", len(serialOrder))

	parallelizable, err := ParallelizabilityAnalysis(g, serialOrder)
	if err != nil {
		return fail("parallelizability", kindOf(err))
	}
	log.Debugw("parallelizability analysis complete", "candidates", len(parallelizable))

	tasks, err := FuseTasks(g, serialOrder, parallelizable, opts)
	if err != nil {
		return fail("fusion", kindOf(err))
	}
	log.Infow("task fusion complete", "tasks", len(tasks))

	optResult := OptimizeResources(g, tasks)
	log.Infow("resource optimization complete",
		"pre_count", optResult.PreCount, "post_count", optResult.PostCount, "reduction", optResult.Reduction)
	ResourcePreCount.Set(float64(optResult.PreCount))
	ResourcePostCount.Set(float64(optResult.PostCount))
	ResourceReduction.Set(float64(optResult.Reduction))

	templates := SynthesizeTemplates(optResult)

	output.ResourceTemplates = templates
	output.PhaseOutputs = &PhaseOutputs{
		CullNodes:            culled,
		SerialExecutionOrder: serialOrder,
		ParallelizableNodes:  parallelizable,
		TaskOrder:            tasks,
		ResourceOptimizer:    optResult,
	}

	CompileTotal.WithLabelValues("ok").Inc()
	CompileDurationSeconds.Observe(time.Since(start).Seconds())
	return output
}

func kindOf(err error) ErrorKind {
	var ce *CompilerError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ErrNone
}
