package gridgraph

// OpenRegions finds all 4-connected regions of open cells.
// Returns a slice of regions; each region is a slice of row-major
// cell indices in BFS discovery order. Regions are ordered by their
// first cell in row-major order.
//
// To convert an index back to a Cell, use Coordinate(idx).
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) OpenRegions() [][]int {
	total := g.Rows * g.Cols
	seen := make([]bool, total)
	var regions [][]int

	for i0 := 0; i0 < total; i0++ {
		if g.blocked[i0] || seen[i0] {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range Directions {
				v, ok := g.Step(u, d)
				if !ok {
					continue
				}
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// RegionOf labels every cell with the index of its open region
// (as returned by OpenRegions), or -1 for obstacles.
func (g *Grid) RegionOf() []int {
	labels := make([]int, g.Rows*g.Cols)
	for i := range labels {
		labels[i] = -1
	}
	for l, region := range g.OpenRegions() {
		for _, i := range region {
			labels[i] = l
		}
	}

	return labels
}

// Connected reports whether a and b are open cells of the same region.
// Turning does not depend on position, so any two cells of one region
// are mutually reachable in every orientation.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Open(a) || !g.Open(b) {
		return false
	}
	labels := g.RegionOf()

	return labels[g.Index(a)] == labels[g.Index(b)]
}
