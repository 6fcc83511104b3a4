package light

import (
	"context"
	"fmt"

	"github.com/gammazero/deque"

	"lito/internal/errors"
	"lito/internal/geom"
	"lito/internal/logging"
	"lito/internal/schem"
	"lito/internal/shape"
)

// Options controls a single traversal of one region.
type Options struct {
	// Origin is the cell light starts from. It must lie inside the
	// region's bounds. The origin always propagates outward in all six
	// directions regardless of its own block's shape.
	Origin geom.Position

	// Rainbow recolors air cells by traversal generation in the
	// output, a visualization aid with no effect on reachability.
	Rainbow bool

	// Target, when set, switches the engine into leak detection: the
	// traversal stops as soon as it steps onto the target and the
	// output carries the marked path instead of being pruned.
	Target *geom.Position

	// KeepBoundary treats cells on the outermost coordinate of the
	// region's bounds as reachable, exempting them from pruning.
	KeepBoundary bool
}

// Result reports what one traversal found.
type Result struct {
	// Visited holds every position the light stepped onto, including
	// the padding layer outside the region.
	Visited *PositionIndex

	// Reachable holds every non-air cell the light saw, whether or
	// not it moved into it. Pruning keeps exactly these cells.
	Reachable *PositionIndex

	// LeakFound reports that the traversal reached the target.
	LeakFound bool

	// LeakPath is the chain of positions from the target back toward
	// the origin, only populated when LeakFound is set.
	LeakPath []geom.Position

	// Pruned is the number of cells replaced with air, zero in leak
	// mode.
	Pruned int

	// MaxGeneration is the highest BFS distance reached.
	MaxGeneration int

	// Output is the assembled clone: pruned, recolored or leak-marked
	// depending on the options. The input region is never mutated.
	Output *schem.Region
}

// Engine runs reachability traversals. It is not safe for concurrent
// use; each traversal owns its state exclusively.
type Engine struct {
	catalog *shape.Catalog
	logger  *logging.Logger
}

// NewEngine creates an engine deriving shapes from catalog.
func NewEngine(catalog *shape.Catalog, logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Engine{catalog: catalog, logger: logger}
}

type node struct {
	pos geom.Position
	gen int
}

// cancelCheckInterval is how many dequeues pass between context
// checks inside the main loop.
const cancelCheckInterval = 4096

// Run traverses the region from the origin and assembles the output
// clone. See Options for the three modes.
func (e *Engine) Run(ctx context.Context, region *schem.Region, opts Options) (*Result, error) {
	if !region.Contains(opts.Origin) {
		min, max := region.Bounds()
		return nil, errors.New(errors.OutOfBounds,
			fmt.Sprintf("origin %v outside region %q bounds %v..%v", opts.Origin, region.Name, min, max), nil)
	}

	output := region.Clone()

	var q deque.Deque[node]
	q.PushBack(node{pos: opts.Origin})

	visited := NewPositionIndex(region)
	visited.Insert(opts.Origin)
	reachable := NewPositionIndex(region)

	var parents map[geom.Position]geom.Position
	if opts.Target != nil {
		parents = map[geom.Position]geom.Position{}
	}

	leakFound := false
	maxGen := 0
	steps := 0

bfs:
	for q.Len() > 0 {
		steps++
		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		n := q.PopFront()
		if n.gen > maxGen {
			maxGen = n.gen
			e.logger.Debug("traversal advanced a generation", logging.Fields{
				"generation": maxGen,
				"queued":     q.Len(),
				"visited":    visited.Len(),
			})
		}

		currentShape := e.catalog.Of(region.Get(n.pos))

		for _, dir := range geom.Directions {
			next := n.pos.Step(dir)

			if visited.Contains(next) {
				continue
			}

			// Extend the search into the one-cell buffer around the
			// region, to reach cells only reachable by going outside.
			// No stored cell exists there; the move predicate runs
			// against air.
			if isJustOutside(next, region) {
				if n.pos == opts.Origin || shape.CanMove(currentShape, shape.Empty, dir) {
					q.PushBack(node{pos: next, gen: n.gen + 1})
					if parents != nil {
						parents[next] = n.pos
					}
					visited.Insert(next)
				}
				continue
			}
			if !region.Contains(next) {
				continue
			}

			nextBlock := region.Get(next)

			if opts.Rainbow && nextBlock.IsAir() {
				output.Set(next, rainbowBlock(n.gen))
			}

			if shape.CanSee(currentShape, dir) && !nextBlock.IsAir() {
				reachable.Insert(next)
			}

			if n.pos == opts.Origin || shape.CanMove(currentShape, e.catalog.Of(nextBlock), dir) {
				q.PushBack(node{pos: next, gen: n.gen + 1})
				if parents != nil {
					if _, seen := parents[next]; !seen {
						parents[next] = n.pos
					}
					if next == *opts.Target {
						e.logger.Info("light reached the protected cell", logging.Fields{
							"target":     next.String(),
							"generation": n.gen + 1,
						})
						leakFound = true
						break bfs
					}
				}
				visited.Insert(next)
			}
		}
	}

	result := &Result{
		Visited:       visited,
		Reachable:     reachable,
		LeakFound:     leakFound,
		MaxGeneration: maxGen,
		Output:        output,
	}

	if leakFound {
		result.LeakPath = markLeakPath(output, parents, *opts.Target, opts.Origin)
		return result, nil
	}

	result.Pruned = prune(output, region, reachable, opts.KeepBoundary)
	e.logger.Debug("traversal finished", logging.Fields{
		"region":    region.Name,
		"visited":   visited.Len(),
		"reachable": reachable.Len(),
		"pruned":    result.Pruned,
		"maxGen":    maxGen,
	})
	return result, nil
}

// isJustOutside reports whether pos lies in the one-cell padding
// layer around the region.
func isJustOutside(pos geom.Position, region *schem.Region) bool {
	if region.Contains(pos) {
		return false
	}
	min, max := region.Bounds()
	return pos.X >= min.X-1 && pos.X <= max.X+1 &&
		pos.Y >= min.Y-1 && pos.Y <= max.Y+1 &&
		pos.Z >= min.Z-1 && pos.Z <= max.Z+1
}
