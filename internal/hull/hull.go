// Package hull computes the 2D convex hull of a formation-energy curve and
// extracts the lower envelope of thermodynamically stable compositions.
package hull

import (
	"fmt"
	"sort"

	"ocv-hull/internal/model"
)

// collinearEps bounds the cross product below which three points are treated
// as collinear. Energies and compositions are order-one quantities here, so
// genuine hull turns produce cross products far above this.
const collinearEps = 1e-12

// Compute returns the facets of the full convex hull of the (x, energy)
// point cloud, as index pairs into points. Uses Andrew's monotone chain.
func Compute(points []model.FormationPoint) ([]model.HullSegment, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points for a hull, got %d", model.ErrDegenerateInput, len(points))
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := points[order[a]], points[order[b]]
		if pa.X != pb.X {
			return pa.X < pb.X
		}
		return pa.Energy < pb.Energy
	})

	// Lower chain then upper chain. Popping at or below collinearEps drops
	// collinear interior points, which dense interpolated curves produce in
	// runs; the epsilon keeps float rounding from promoting points on a
	// straight run into hull vertices.
	chain := func(idxs []int) []int {
		var out []int
		for _, i := range idxs {
			for len(out) >= 2 && cross(points[out[len(out)-2]], points[out[len(out)-1]], points[i]) <= collinearEps {
				out = out[:len(out)-1]
			}
			out = append(out, i)
		}
		return out
	}
	lower := chain(order)
	rev := make([]int, len(order))
	for i, idx := range order {
		rev[len(order)-1-i] = idx
	}
	upper := chain(rev)

	// Walk the cycle: lower chain left to right, upper chain right to left,
	// dropping the duplicated turning points.
	cycle := append(lower[:len(lower)-1:len(lower)-1], upper[:len(upper)-1]...)
	if len(cycle) < 3 {
		return nil, fmt.Errorf("%w: all points are collinear", model.ErrDegenerateInput)
	}

	facets := make([]model.HullSegment, len(cycle))
	for i := range cycle {
		facets[i] = model.HullSegment{cycle[i], cycle[(i+1)%len(cycle)]}
	}
	return facets, nil
}

// LowerSegments filters the hull facets to those whose vertices all have
// energy <= tol, then orders them by the minimum x of their vertices. An
// empty result is valid: it means no composition mixes favorably.
func LowerSegments(points []model.FormationPoint, tol float64) ([]model.HullSegment, error) {
	facets, err := Compute(points)
	if err != nil {
		return nil, err
	}
	kept := make([]model.HullSegment, 0, len(facets))
	for _, f := range facets {
		if points[f[0]].Energy <= tol && points[f[1]].Energy <= tol {
			kept = append(kept, f)
		}
	}
	sort.Slice(kept, func(a, b int) bool {
		ma, mb := minX(points, kept[a]), minX(points, kept[b])
		if ma != mb {
			return ma < mb
		}
		return maxX(points, kept[a]) < maxX(points, kept[b])
	})
	return kept, nil
}

// Vertices returns the distinct point indices referenced by the segments,
// ordered by ascending x.
func Vertices(points []model.FormationPoint, segments []model.HullSegment) []int {
	seen := make(map[int]bool, 2*len(segments))
	var idxs []int
	for _, seg := range segments {
		for _, i := range seg {
			if !seen[i] {
				seen[i] = true
				idxs = append(idxs, i)
			}
		}
	}
	sort.Slice(idxs, func(a, b int) bool { return points[idxs[a]].X < points[idxs[b]].X })
	return idxs
}

func cross(o, a, b model.FormationPoint) float64 {
	return (a.X-o.X)*(b.Energy-o.Energy) - (a.Energy-o.Energy)*(b.X-o.X)
}

func minX(points []model.FormationPoint, seg model.HullSegment) float64 {
	if points[seg[0]].X < points[seg[1]].X {
		return points[seg[0]].X
	}
	return points[seg[1]].X
}

func maxX(points []model.FormationPoint, seg model.HullSegment) float64 {
	if points[seg[0]].X > points[seg[1]].X {
		return points[seg[0]].X
	}
	return points[seg[1]].X
}
