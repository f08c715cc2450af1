package wcc

import (
	"math/rand/v2"
	"time"

	"github.com/neo4j-labs/graph-sub000/graph"
	"github.com/neo4j-labs/graph-sub000/internal/parallel"
)

// Wcc computes the weakly connected components of g and returns the dense
// node→component mapping. Two nodes share a component id iff an undirected
// path connects them.
//
// The computation runs the three Afforest phases over a shared disjoint
// set: sample up to NeighborRounds outgoing neighbors per node, find the
// dominant component by SamplingSize random probes, then link the remaining
// out-neighbors and all in-neighbors of every node outside the dominant
// component.
func Wcc[NI graph.ID](g graph.Directed[NI], opts ...Option) ([]NI, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start := time.Now()
	dss := NewDisjointSet[NI](int(g.NodeCount()))

	sampleSubgraph(g, dss, o)
	largest := findLargestComponent(dss, o)
	linkRemaining(g, dss, largest, o)

	components := dss.Components()
	graph.Log().Debug().Dur("took", time.Since(start)).Msg("computed wcc")

	return components, nil
}

// sampleSubgraph unions each node with up to NeighborRounds of its first
// outgoing neighbors.
func sampleSubgraph[NI graph.ID](g graph.Directed[NI], dss *DisjointSet[NI], o Options) {
	parallel.ForEachChunk(int(g.NodeCount()), o.ChunkSize, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			neighbors := g.OutNeighbors(NI(u))
			if len(neighbors) > o.NeighborRounds {
				neighbors = neighbors[:o.NeighborRounds]
			}
			for _, v := range neighbors {
				dss.Union(NI(u), v)
			}
		}
	})
}

// findLargestComponent probes SamplingSize random nodes and returns the
// most frequently seen component root.
func findLargestComponent[NI graph.ID](dss *DisjointSet[NI], o Options) NI {
	rng := rand.New(rand.NewPCG(o.Seed, 0))
	counts := make(map[NI]int)

	for i := 0; i < o.SamplingSize; i++ {
		component := dss.Find(NI(rng.IntN(dss.Len())))
		counts[component]++
	}

	var mostFrequent NI
	best := -1
	for component, count := range counts {
		if count > best || (count == best && component < mostFrequent) {
			mostFrequent = component
			best = count
		}
	}

	return mostFrequent
}

// linkRemaining processes the edges not covered by the sampling phase,
// skipping nodes already inside the sampled-largest component: their
// internal edges are assumed covered by the sampled contractions.
func linkRemaining[NI graph.ID](g graph.Directed[NI], dss *DisjointSet[NI], skip NI, o Options) {
	parallel.ForEachChunk(int(g.NodeCount()), o.ChunkSize, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			if dss.Find(NI(u)) == skip {
				continue
			}

			out := g.OutNeighbors(NI(u))
			if len(out) > o.NeighborRounds {
				for _, v := range out[o.NeighborRounds:] {
					dss.Union(NI(u), v)
				}
			}

			for _, v := range g.InNeighbors(NI(u)) {
				dss.Union(NI(u), v)
			}
		}
	})
}
