package model

import "testing"

func TestApplyDefaultPatternDrawsBorder(t *testing.T) {
	for _, dims := range [][2]int{{49, 40}, {5, 5}, {3, 3}, {4, 6}} {
		w, h := dims[0], dims[1]
		g := mustGrid(t, w, h)
		ApplyDefaultPattern(g)

		for y := range h {
			for x := range w {
				inside := x >= 1 && x <= w-2 && y >= 1 && y <= h-2
				onEdge := x == 1 || x == w-2 || y == 1 || y == h-2
				want := inside && onEdge
				if alive, _ := g.IsCellAlive(x, y); alive != want {
					t.Fatalf("%dx%d: cell (%d,%d) alive=%v, expected %v", w, h, x, y, alive, want)
				}
			}
		}
	}
}

func TestApplyDefaultPatternTinyBoards(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 2}, {2, 9}, {9, 1}} {
		g := mustGrid(t, dims[0], dims[1])
		ApplyDefaultPattern(g)
		if n := g.LivingCells(); n != 0 {
			t.Fatalf("%v: expected empty board, got %d living cells", dims, n)
		}
	}
}

func TestSetCell(t *testing.T) {
	g := mustGrid(t, 2, 2)

	SetCell(g, 0, 0, true)
	SetCell(g, 0, 0, true)
	if alive, _ := g.IsCellAlive(0, 0); !alive {
		t.Fatal("expected (0,0) alive")
	}

	SetCell(g, 0, 0, false)
	if alive, _ := g.IsCellAlive(0, 0); alive {
		t.Fatal("expected (0,0) dead")
	}

	SetCell(g, 5, 5, true)
	if g.LivingCells() != 0 {
		t.Fatal("out of range SetCell changed the grid")
	}
}

func TestStampsClipAtEdges(t *testing.T) {
	g := mustGrid(t, 3, 3)
	AddGlider(g, 1, 1)
	assertLive(t, g, map[[2]int]bool{{2, 1}: true})
}

func TestRandomizeIsDeterministic(t *testing.T) {
	a := mustGrid(t, 20, 20)
	b := mustGrid(t, 20, 20)
	Randomize(a, 0.3, 42)
	Randomize(b, 0.3, 42)

	if Fingerprint(a) != Fingerprint(b) {
		t.Fatal("same seed produced different boards")
	}
	if a.LivingCells() == 0 {
		t.Fatal("expected some living cells")
	}

	Randomize(a, 0, 42)
	if a.LivingCells() != 0 {
		t.Fatal("zero density left living cells")
	}
	Randomize(a, 1, 7)
	if a.LivingCells() != 400 {
		t.Fatalf("full density left dead cells: %d alive", a.LivingCells())
	}
}
