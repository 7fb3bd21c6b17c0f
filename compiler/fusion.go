package compiler

import "github.com/Andromeda08/RenderGraph/graph"

// FuseTasks greedily pairs serial-order passes with an independent,
// async-capable partner, producing the final task sequence. When
// AllowParallelization is off every pass becomes its own single-primary
// task.
func FuseTasks(g *graph.Graph, serialOrder []graph.Id, parallelizable map[graph.Id][]graph.Id, opts Options) ([]Task, error) {
	passes, ok := g.ToPassList(serialOrder)
	if !ok {
		return nil, newError("fusion", ErrNoNodeByGivenId)
	}

	if !opts.AllowParallelization {
		tasks := make([]Task, len(passes))
		for i, p := range passes {
			tasks[i] = Task{Primary: p}
		}
		return tasks, nil
	}

	chances := len(parallelizable)
	used := 0
	placed := make(map[graph.Id]bool, len(passes))
	tasks := make([]Task, 0, len(passes))

	for _, n := range passes {
		if placed[n.Id] {
			continue
		}

		candidates := parallelizable[n.Id]
		if len(candidates) == 0 && used >= chances {
			tasks = append(tasks, Task{Primary: n})
			placed[n.Id] = true
			continue
		}

		var chosen *graph.Pass
		for _, cid := range candidates {
			c, ok := g.GetPassById(cid)
			if !ok || placed[c.Id] {
				continue
			}
			if c.Flags.Async {
				chosen = c
				break
			}
		}

		tasks = append(tasks, Task{Primary: n, Async: chosen})
		placed[n.Id] = true
		if chosen != nil {
			placed[chosen.Id] = true
		}
		used++
	}

	return tasks, nil
}
