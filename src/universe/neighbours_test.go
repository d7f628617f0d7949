package universe

import "testing"

func TestWrap(t *testing.T) {
	cases := []struct {
		v, dim, want int
	}{
		{-1, 5, 4},
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{-1, 1, 0},
		{1, 1, 0},
	}
	for _, c := range cases {
		if got := wrap(c.v, c.dim); got != c.want {
			t.Errorf("wrap(%d, %d): expected %d, got %d", c.v, c.dim, c.want, got)
		}
	}
}

func TestNeighbourCoords_Corner(t *testing.T) {
	want := map[Coords]bool{
		{2, 2}: true, {2, 0}: true, {0, 2}: true, {1, 0}: true,
		{0, 1}: true, {1, 1}: true, {2, 1}: true, {1, 2}: true,
	}
	got := neighbourCoords(3, 3, 0, 0)
	seen := map[Coords]bool{}
	for _, n := range got {
		if !want[n] {
			t.Errorf("Unexpected neighbour %v", n)
		}
		if seen[n] {
			t.Errorf("Duplicate neighbour %v", n)
		}
		seen[n] = true
	}
	if len(seen) != len(want) {
		t.Errorf("Expected %d distinct neighbours, got %d", len(want), len(seen))
	}
}

func TestNeighbourCoords_InBounds(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 3}, {2, 2}, {3, 1}, {7, 4}, {40, 13}}
	for _, s := range sizes {
		w, h := s[0], s[1]
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				for _, n := range neighbourCoords(w, h, x, y) {
					if n.X < 0 || n.Y < 0 || n.X >= w || n.Y >= h {
						t.Fatalf("%dx%d: neighbour %v of (%d, %d) is out of bounds", w, h, n, x, y)
					}
				}
			}
		}
	}
}

func TestNeighbourCoords_SingleCell(t *testing.T) {
	for _, n := range neighbourCoords(1, 1, 0, 0) {
		if n != (Coords{0, 0}) {
			t.Errorf("Expected every slot to be (0, 0), got %v", n)
		}
	}
}
