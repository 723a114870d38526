package cluster

import "github.com/dkovalov/roadskeleton/geom2d"

// Group grows clusters of polygon indices by repeated absorption: each
// cluster starts from one unused seed and then rescans every remaining
// unused index, attaching any that CanAttach against the cluster's current
// best-scoring member, until a full rescan attaches nothing more — only
// then does it move on to seed the next cluster. This lets a bridging
// polygon (adjacent to two otherwise-unrelated members) pull both into one
// cluster across multiple passes, matching TopologyClusterer.can_attach's
// per-seed "while changed" absorption loop rather than a single forward
// pass over the index order.
func Group(polys []geom2d.Polygon, sharedHi, distTh float64) [][]int {
	n := len(polys)
	used := make([]bool, n)
	clusters := make([][]int, 0, n)

	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		cluster := []int{i}
		used[i] = true

		for changed := true; changed; {
			changed = false
			for j := 0; j < n; j++ {
				if used[j] {
					continue
				}
				best := Feature{}
				bestScore := -1e18
				for _, k := range cluster {
					f := ComputeFeature(polys[k], polys[j], distTh, sharedHi)
					if f.Score > bestScore {
						bestScore = f.Score
						best = f
					}
				}
				if CanAttach(best, sharedHi, distTh) {
					cluster = append(cluster, j)
					used[j] = true
					changed = true
				}
			}
		}

		clusters = append(clusters, cluster)
	}
	return clusters
}
