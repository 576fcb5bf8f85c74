package focus

import "testing"

func box(x, y int) Rect {
	return Rect{X: x, Y: y, W: 10, H: 10}
}

func TestBestCandidateNeverPicksWrongSign(t *testing.T) {
	current := box(100, 100)
	candidates := []candidate{
		{id: "left", rect: box(0, 100)},
		{id: "right", rect: box(200, 100)},
		{id: "up", rect: box(100, 0)},
		{id: "down", rect: box(100, 200)},
		{id: "up-left", rect: box(20, 20)},
		{id: "down-right", rect: box(180, 180)},
		{id: "same", rect: box(100, 100)},
	}

	for _, dir := range []Direction{Up, Down, Left, Right} {
		idx := bestCandidate(current, candidates, dir)
		if idx < 0 {
			t.Fatalf("%s: expected a candidate", dir)
		}

		cx, cy := current.Center()
		x, y := candidates[idx].rect.Center()
		if !viable(dir, x-cx, y-cy) {
			t.Errorf("%s: picked %q with wrong-sign offset (%.1f, %.1f)", dir, candidates[idx].id, x-cx, y-cy)
		}
		if candidates[idx].id != string(dir) {
			t.Errorf("%s: expected %q, got %q", dir, dir, candidates[idx].id)
		}
	}
}

func TestBestCandidatePrefersAxisAligned(t *testing.T) {
	// Both candidates are ~100 cells away in euclidean terms
	current := box(0, 0)
	candidates := []candidate{
		{id: "diagonal", rect: box(71, 71)},
		{id: "aligned", rect: box(100, 0)},
	}

	idx := bestCandidate(current, candidates, Right)
	if idx < 0 || candidates[idx].id != "aligned" {
		t.Fatalf("expected aligned candidate, got index %d", idx)
	}

	candidates = []candidate{
		{id: "diagonal", rect: box(71, 71)},
		{id: "aligned", rect: box(0, 100)},
	}
	idx = bestCandidate(current, candidates, Down)
	if idx < 0 || candidates[idx].id != "aligned" {
		t.Fatalf("expected aligned candidate moving down, got index %d", idx)
	}
}

func TestBestCandidateTieKeepsFirst(t *testing.T) {
	current := box(100, 100)
	candidates := []candidate{
		{id: "a", rect: box(200, 90)},
		{id: "b", rect: box(200, 110)},
	}

	idx := bestCandidate(current, candidates, Right)
	if idx != 0 {
		t.Errorf("expected first candidate on tie, got %d", idx)
	}
}

func TestBestCandidateNoneViable(t *testing.T) {
	current := box(0, 0)
	candidates := []candidate{
		{id: "right", rect: box(100, 0)},
		{id: "below", rect: box(0, 100)},
	}

	if idx := bestCandidate(current, candidates, Up); idx != -1 {
		t.Errorf("expected -1 moving up, got %d", idx)
	}
	if idx := bestCandidate(current, candidates, Left); idx != -1 {
		t.Errorf("expected -1 moving left, got %d", idx)
	}
	if idx := bestCandidate(current, nil, Right); idx != -1 {
		t.Errorf("expected -1 with no candidates, got %d", idx)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		dir      Direction
		dx, dy   float64
		expected float64
	}{
		{Right, 100, 0, 100},
		{Right, 10, -5, 25},
		{Left, -10, 5, 25},
		{Down, 0, 100, 100},
		{Down, 5, 10, 25},
		{Up, -5, -10, 25},
	}

	for _, tt := range tests {
		if got := score(tt.dir, tt.dx, tt.dy); got != tt.expected {
			t.Errorf("score(%s, %.0f, %.0f) = %.1f, want %.1f", tt.dir, tt.dx, tt.dy, got, tt.expected)
		}
	}
}

func TestRectCenterKeepsHalfCells(t *testing.T) {
	cx, cy := Rect{X: 0, Y: 0, W: 3, H: 1}.Center()
	if cx != 1.5 || cy != 0.5 {
		t.Errorf("expected (1.5, 0.5), got (%.1f, %.1f)", cx, cy)
	}
}
