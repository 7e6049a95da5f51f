package shapepath

import (
	"math"
	"testing"
)

func TestArcEndpoints(t *testing.T) {
	p1 := Point{X: 10, Y: 50}
	p2 := Point{X: 90, Y: 50}
	out := Arc(p1, p2, 0.5, 16)

	if len(out) != 17 {
		t.Fatalf("len = %d, want 17", len(out))
	}
	if d := dist(out[0], p1); d > 1e-9 {
		t.Errorf("first sample off p1 by %v", d)
	}
	if d := dist(out[len(out)-1], p2); d > 1e-9 {
		t.Errorf("last sample off p2 by %v", d)
	}
}

func TestArcBulgeSide(t *testing.T) {
	p1 := Point{X: 10, Y: 50}
	p2 := Point{X: 90, Y: 50}

	// Left-to-right chord in y-down space: positive bulge offsets along
	// (dy, -dx), which is -y (up on screen).
	up := Arc(p1, p2, 0.5, 16)
	mid := up[len(up)/2]
	if mid.Y >= 50 {
		t.Errorf("positive bulge midpoint y = %v, want above the chord", mid.Y)
	}

	down := Arc(p1, p2, -0.5, 16)
	mid = down[len(down)/2]
	if mid.Y <= 50 {
		t.Errorf("negative bulge midpoint y = %v, want below the chord", mid.Y)
	}
}

func TestArcApexOffset(t *testing.T) {
	p1 := Point{X: 0, Y: 0}
	p2 := Point{X: 100, Y: 0}
	out := Arc(p1, p2, 0.3, 64)

	// The apex sits bulge × chord off the midpoint.
	wantApexY := -30.0
	minY := math.Inf(1)
	for _, p := range out {
		minY = math.Min(minY, p.Y)
	}
	if math.Abs(minY-wantApexY) > 0.5 {
		t.Errorf("apex y = %v, want ≈ %v", minY, wantApexY)
	}
}

func TestArcDegenerate(t *testing.T) {
	p := Point{X: 5, Y: 5}
	if out := Arc(p, p, 0.5, 16); len(out) != 2 {
		t.Errorf("degenerate chord: %d points, want plain chord", len(out))
	}
	out := Arc(Point{X: 0, Y: 0}, Point{X: 10, Y: 0}, 0, 16)
	if len(out) != 2 {
		t.Errorf("zero bulge: %d points, want plain chord", len(out))
	}
}

func TestArrowhead(t *testing.T) {
	from := Point{X: 0, Y: 0}
	to := Point{X: 100, Y: 0}
	tri := Arrowhead(from, to, 10)

	if tri[0] != to {
		t.Errorf("tip = %v, want %v", tri[0], to)
	}
	// Both base corners sit behind the tip, symmetric about the shaft.
	for i, p := range tri[1:] {
		if p.X >= to.X {
			t.Errorf("base corner %d at x=%v, want behind the tip", i, p.X)
		}
	}
	if math.Abs(tri[1].Y+tri[2].Y) > 1e-9 {
		t.Errorf("base corners not symmetric: y=%v and y=%v", tri[1].Y, tri[2].Y)
	}

	degenerate := Arrowhead(to, to, 10)
	if degenerate[0] != to || degenerate[1] != to || degenerate[2] != to {
		t.Error("degenerate arrowhead should collapse to the tip")
	}
}

func TestCloudBoxBulgesOutward(t *testing.T) {
	out := CloudBox(10, 10, 90, 90, 8)
	if len(out) == 0 {
		t.Fatal("empty outline")
	}
	// Every sample stays on or outside the box (within epsilon); the
	// scallops never cut inward.
	outside := 0
	for _, p := range out {
		if p.X < 10-1e-6 || p.X > 90+1e-6 || p.Y < 10-1e-6 || p.Y > 90+1e-6 {
			outside++
		}
	}
	if outside == 0 {
		t.Error("no samples outside the box; bumps are facing inward")
	}
	// And no sample strays deep into the interior.
	for _, p := range out {
		if p.X > 10+1e-6 && p.X < 90-1e-6 && p.Y > 10+1e-6 && p.Y < 90-1e-6 {
			t.Fatalf("sample %v is inside the box interior", p)
		}
	}
}

func TestCloudOutlineOpenKeepsSegmentCount(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 40}}
	out := CloudOutline(pts, false, 8)
	if len(out) <= len(pts) {
		t.Errorf("outline has %d points, want more than the input %d", len(out), len(pts))
	}
	short := CloudOutline(pts[:1], false, 8)
	if len(short) != 1 {
		t.Errorf("single-point input should pass through, got %d points", len(short))
	}
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
