package triangle

import (
	"sync/atomic"
	"time"

	"github.com/neo4j-labs/graph-sub000/graph"
	"github.com/neo4j-labs/graph-sub000/internal/parallel"
)

// chunkSize is the number of nodes a worker claims per steal.
const chunkSize = 64

// GlobalCount returns the number of triangles in g.
//
// g must have sorted, deduplicated neighbor lists. For each node u and each
// neighbor v < u the intersection of the two neighbor lists below v is
// accumulated into a worker-local counter, folded into the shared total at
// chunk exhaustion.
func GlobalCount[NI graph.ID](g graph.UndirectedView[NI]) uint64 {
	start := time.Now()

	nodeCount := int(g.NodeCount())
	var cursor parallel.Cursor
	var totalTriangles atomic.Uint64

	_ = parallel.Run(parallel.Workers(), func(int) error {
		var triangles uint64

		for {
			lo, hi, ok := cursor.Next(chunkSize, nodeCount)
			if !ok {
				break
			}

			for u := lo; u < hi; u++ {
				nu := g.Neighbors(NI(u))

				for _, v := range nu {
					if int(v) > u {
						break
					}

					// Merge-intersect nu with neighbors(v), both restricted
					// to ids strictly below v. One cursor into nu survives
					// the whole inner loop because both lists ascend.
					i := 0
					for _, w := range g.Neighbors(v) {
						if w > v {
							break
						}
						for i < len(nu) && nu[i] < w {
							i++
						}
						if i < len(nu) && nu[i] == w {
							triangles++
						}
					}
				}
			}
		}

		totalTriangles.Add(triangles)
		return nil
	})

	tc := totalTriangles.Load()
	graph.Log().Debug().Uint64("triangles", tc).Dur("took", time.Since(start)).Msg("computed triangle count")

	return tc
}
