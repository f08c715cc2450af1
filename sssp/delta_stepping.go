package sssp

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/neo4j-labs/graph-sub000/graph"
	"github.com/neo4j-labs/graph-sub000/internal/parallel"
)

const (
	// noBin signals that no worker holds further work.
	noBin = math.MaxInt

	// binSizeThreshold caps how large a local bucket may grow before its
	// processing is deferred to the shared phase. A heuristic; it changes
	// performance, not correctness.
	binSizeThreshold = 1000

	// batchSize is the number of frontier slots a worker claims per steal.
	batchSize = 64
)

// DeltaStepping computes tentative distances from cfg.StartNode to every
// node of g. Unreachable nodes report Infinity.
//
// Every write to a distance cell is monotonically decreasing, so the final
// distances are deterministic even though the parallel schedule is not.
func DeltaStepping[NI graph.ID](g graph.WeightedDirected[NI, float32], cfg Config[NI]) ([]float32, error) {
	if cfg.Delta <= 0 {
		return nil, ErrBadDelta
	}
	nodeCount := int(g.NodeCount())
	if int(cfg.StartNode) < 0 || int(cfg.StartNode) >= nodeCount {
		return nil, ErrStartNodeNotFound
	}

	start := time.Now()
	delta := cfg.Delta
	workers := parallel.Workers()

	distance := newAtomicF32s(nodeCount, Infinity)
	distance.store(int(cfg.StartNode), 0)

	frontierCap := int(g.EdgeCount())
	if frontierCap < 1 {
		frontierCap = 1
	}
	frontier := make([]NI, frontierCap)
	frontier[0] = cfg.StartNode
	frontierLen := 1
	var frontierIdx atomic.Int64

	bins := make([]*localBins[NI], workers)
	for w := range bins {
		bins[w] = newLocalBins[NI]()
	}
	nextBins := make([]int, workers)

	currBin := 0

	for currBin != noBin {
		frontierIdx.Store(0)

		_ = parallel.Run(workers, func(w int) error {
			lb := bins[w]
			processSharedBin(lb, currBin, g, frontier, &frontierIdx, frontierLen, distance, delta)
			processLocalBins(lb, currBin, g, distance, delta)
			nextBins[w] = minNonEmptyBin(lb, currBin)
			return nil
		})

		nextBin := noBin
		for _, b := range nextBins {
			if b < nextBin {
				nextBin = b
			}
		}

		if nextBin != noBin {
			// Copy the next local bins into the shared frontier. Each worker
			// owns a pre-reserved slice computed from the per-worker bin
			// sizes, so the copies never overlap.
			slices := frontierSlices(frontier, bins, nextBin)
			frontierLen = 0
			for w := range bins {
				frontierLen += len(slices[w])
			}
			_ = parallel.Run(workers, func(w int) error {
				if bins[w].contains(nextBin) {
					copy(slices[w], bins[w].slice(nextBin))
					bins[w].clear(nextBin)
				}
				return nil
			})
		}

		currBin = nextBin
	}

	graph.Log().Debug().Dur("took", time.Since(start)).Msg("computed sssp")

	return distance.snapshot(), nil
}

// processSharedBin drains the shared frontier in batches, relaxing every
// claimed node that still belongs to the current bucket or a later one.
func processSharedBin[NI graph.ID](
	bins *localBins[NI],
	currBin int,
	g graph.WeightedDirected[NI, float32],
	frontier []NI,
	frontierIdx *atomic.Int64,
	frontierLen int,
	distance *atomicF32s,
	delta float32,
) {
	for {
		offset := int(frontierIdx.Add(batchSize)) - batchSize
		if offset >= frontierLen {
			break
		}

		limit := offset + batchSize
		if limit > frontierLen {
			limit = frontierLen
		}

		for _, node := range frontier[offset:limit] {
			if distance.load(int(node)) >= delta*float32(currBin) {
				relaxEdges(g, distance, bins, node, delta)
			}
		}
	}
}

// processLocalBins drains the worker's current bucket as long as it stays
// below the size threshold. Relaxations may refill the same bucket.
func processLocalBins[NI graph.ID](
	bins *localBins[NI],
	currBin int,
	g graph.WeightedDirected[NI, float32],
	distance *atomicF32s,
	delta float32,
) {
	for currBin < bins.len() && !bins.isEmpty(currBin) && bins.binLen(currBin) < binSizeThreshold {
		snapshot := bins.snapshot(currBin)
		bins.clear(currBin)

		for _, node := range snapshot {
			relaxEdges(g, distance, bins, node, delta)
		}
	}
}

// minNonEmptyBin returns the smallest non-empty local bucket at or after
// currBin, or noBin.
func minNonEmptyBin[NI graph.ID](bins *localBins[NI], currBin int) int {
	for bin := currBin; bin < bins.len(); bin++ {
		if !bins.isEmpty(bin) {
			return bin
		}
	}

	return noBin
}

// relaxEdges applies one relaxation round to all outgoing edges of node.
// A successful distance decrease files the target into the bucket of its
// new tentative distance.
func relaxEdges[NI graph.ID](
	g graph.WeightedDirected[NI, float32],
	distances *atomicF32s,
	bins *localBins[NI],
	node NI,
	delta float32,
) {
	for _, t := range g.OutNeighborsWithValues(node) {
		target := int(t.Target)
		oldDistance := distances.load(target)
		newDistance := distances.load(int(node)) + t.Value

		for newDistance < oldDistance {
			if distances.compareAndSwap(target, oldDistance, newDistance) {
				destBin := int(newDistance / delta)
				bins.grow(destBin + 1)
				bins.push(destBin, t.Target)
				break
			}
			// CAS failed: someone else lowered the distance; retry against
			// the new minimum.
			oldDistance = distances.load(target)
		}
	}
}

// frontierSlices splits the shared frontier into one pre-reserved slice per
// worker, sized by that worker's next-bucket length.
func frontierSlices[NI graph.ID](frontier []NI, bins []*localBins[NI], nextBin int) [][]NI {
	slices := make([][]NI, len(bins))
	tail := frontier

	for w, lb := range bins {
		if lb.contains(nextBin) {
			n := lb.binLen(nextBin)
			slices[w] = tail[:n:n]
			tail = tail[n:]
		}
	}

	return slices
}
