package focus

import "math"

// crossAxisPenalty weights misalignment on the axis perpendicular to the
// requested direction.
const crossAxisPenalty = 3

// candidate is a visible element sampled for one resolution pass
type candidate struct {
	id   string
	rect Rect
}

// bestCandidate returns the index of the candidate that should receive focus
// when moving from current in direction dir, or -1 if none is viable.
// Ties keep the earliest candidate.
func bestCandidate(current Rect, candidates []candidate, dir Direction) int {
	cx, cy := current.Center()

	best := -1
	bestScore := math.Inf(1)
	for i, c := range candidates {
		x, y := c.rect.Center()
		dx, dy := x-cx, y-cy

		if !viable(dir, dx, dy) {
			continue
		}

		if s := score(dir, dx, dy); s < bestScore {
			best, bestScore = i, s
		}
	}

	return best
}

// viable reports whether an offset points in the requested direction
func viable(dir Direction, dx, dy float64) bool {
	switch dir {
	case Up:
		return dy < 0
	case Down:
		return dy > 0
	case Left:
		return dx < 0
	case Right:
		return dx > 0
	}
	return false
}

// score is a direction-weighted manhattan distance
func score(dir Direction, dx, dy float64) float64 {
	if dir.Horizontal() {
		return math.Abs(dx) + crossAxisPenalty*math.Abs(dy)
	}
	return math.Abs(dy) + crossAxisPenalty*math.Abs(dx)
}
