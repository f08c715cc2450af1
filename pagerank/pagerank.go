package pagerank

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/neo4j-labs/graph-sub000/graph"
	"github.com/neo4j-labs/graph-sub000/internal/parallel"
)

// chunkSize is the number of nodes a worker claims per steal.
const chunkSize = 16384

// PageRank runs the iteration on g and returns the final scores, the number
// of executed iterations, and the error of the last iteration.
func PageRank[NI graph.ID](g graph.Directed[NI], cfg Config) ([]float32, int, float64) {
	nodeCount := int(g.NodeCount())
	initScore := float32(1) / float32(nodeCount)
	baseScore := (1 - cfg.DampingFactor) / float32(nodeCount)

	// outScores[v] caches score[v]/out_degree(v). Other workers read cells
	// of the current iteration while their owners rewrite them, so all
	// access goes through atomics.
	outScores := newSharedF32s(nodeCount)
	parallel.ForEachChunk(nodeCount, chunkSize, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			outScores.store(u, initScore/float32(g.OutDegree(NI(u))))
		}
	})

	scores := make([]float32, nodeCount)
	for i := range scores {
		scores[i] = initScore
	}

	iteration := 0
	for {
		start := time.Now()
		err := pageRankIteration(g, baseScore, cfg.DampingFactor, outScores, scores)
		iteration++

		graph.Log().Debug().
			Int("iteration", iteration).
			Float64("error", err).
			Dur("took", time.Since(start)).
			Msg("finished page rank iteration")

		if err < cfg.Tolerance || iteration == cfg.MaxIterations {
			return scores, iteration, err
		}
	}
}

// pageRankIteration recomputes every score once and returns the summed
// absolute score change. Workers steal contiguous node chunks; within one
// iteration each node is written by exactly one worker.
func pageRankIteration[NI graph.ID](
	g graph.Directed[NI],
	baseScore, dampingFactor float32,
	outScores *sharedF32s,
	scores []float32,
) float64 {
	nodeCount := int(g.NodeCount())
	var cursor parallel.Cursor
	var totalError atomicF64

	_ = parallel.Run(parallel.Workers(), func(int) error {
		var localError float64

		for {
			lo, hi, ok := cursor.Next(chunkSize, nodeCount)
			if !ok {
				break
			}

			for u := lo; u < hi; u++ {
				var incomingTotal float32
				for _, v := range g.InNeighbors(NI(u)) {
					incomingTotal += outScores.load(int(v))
				}

				oldScore := scores[u]
				newScore := baseScore + dampingFactor*incomingTotal

				scores[u] = newScore
				localError += math.Abs(float64(newScore - oldScore))

				outScores.store(u, newScore/float32(g.OutDegree(NI(u))))
			}
		}

		totalError.add(localError)
		return nil
	})

	return totalError.load()
}

// sharedF32s is a dense float32 array accessed through relaxed atomics.
type sharedF32s struct {
	bits []uint32
}

func newSharedF32s(n int) *sharedF32s {
	return &sharedF32s{bits: make([]uint32, n)}
}

func (s *sharedF32s) load(i int) float32 {
	return math.Float32frombits(atomic.LoadUint32(&s.bits[i]))
}

func (s *sharedF32s) store(i int, v float32) {
	atomic.StoreUint32(&s.bits[i], math.Float32bits(v))
}

// atomicF64 is an add-only float64 accumulator built on a CAS loop.
type atomicF64 struct {
	bits atomic.Uint64
}

func (a *atomicF64) add(delta float64) {
	for {
		old := a.bits.Load()
		new := math.Float64bits(math.Float64frombits(old) + delta)
		if a.bits.CompareAndSwap(old, new) {
			return
		}
	}
}

func (a *atomicF64) load() float64 {
	return math.Float64frombits(a.bits.Load())
}
