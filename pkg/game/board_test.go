package game

import "testing"

// Build a board from a 9-rune layout, '.' meaning empty
func boardFromCells(t *testing.T, cells string) Board {
	t.Helper()
	if len(cells) != 9 {
		t.Fatalf("boardFromCells: want 9 cells, got %d", len(cells))
	}

	b := Board{}
	for i, r := range cells {
		if mark := MarkFromRune(r); mark != MarkNone {
			b.put(i, mark)
		}
	}
	return b
}

func TestBoardStatus(t *testing.T) {
	cases := []struct {
		cells string
		want  BoardStatus
	}{
		{".........", BoardOpen},
		{"xxx......", BoardXWon},
		{"...xxx...", BoardXWon},
		{"......xxx", BoardXWon},
		{"x..x..x..", BoardXWon},
		{".x..x..x.", BoardXWon},
		{"..x..x..x", BoardXWon},
		{"x...x...x", BoardXWon},
		{"..x.x.x..", BoardXWon},
		{"ooo......", BoardOWon},
		{"o...o...o", BoardOWon},
		{"xoxxoooxx", BoardDrawn}, // full, no line
		{"xox.o.x..", BoardOpen},
		{"xx.oo....", BoardOpen},
	}

	for _, c := range cases {
		b := boardFromCells(t, c.cells)
		if got := b.Status(); got != c.want {
			t.Errorf("Status(%q) = %v, want %v", c.cells, got, c.want)
		}
	}
}

// The 8 board symmetries as cell permutations: perm[i] is the source
// cell written to cell i
var symmetries = map[string][9]int{
	"identity":      {0, 1, 2, 3, 4, 5, 6, 7, 8},
	"rot90":         {6, 3, 0, 7, 4, 1, 8, 5, 2},
	"rot180":        {8, 7, 6, 5, 4, 3, 2, 1, 0},
	"rot270":        {2, 5, 8, 1, 4, 7, 0, 3, 6},
	"mirrorRows":    {6, 7, 8, 3, 4, 5, 0, 1, 2},
	"mirrorCols":    {2, 1, 0, 5, 4, 3, 8, 7, 6},
	"transpose":     {0, 3, 6, 1, 4, 7, 2, 5, 8},
	"antiTranspose": {8, 5, 2, 7, 4, 1, 6, 3, 0},
}

func applySymmetry(b Board, perm [9]int) Board {
	out := Board{}
	for i, src := range perm {
		if mark := b.At(src); mark != MarkNone {
			out.put(i, mark)
		}
	}
	return out
}

func swapColors(b Board) Board {
	out := Board{}
	for i := 0; i < 9; i++ {
		if mark := b.At(i); mark != MarkNone {
			out.put(i, mark.Other())
		}
	}
	return out
}

func TestBoardStatusSymmetry(t *testing.T) {
	// Win detection must not care about orientation or color
	boards := []string{
		"xxx.oo.o.",
		"o.xo.xo.x",
		"x.o.x.oox",
		"xoxxoooxx",
		"xx.oo....",
	}

	for _, cells := range boards {
		base := boardFromCells(t, cells)
		want := base.Status()

		for name, perm := range symmetries {
			sym := applySymmetry(base, perm)
			if got := sym.Status(); got != want {
				t.Errorf("%q under %s: Status = %v, want %v", cells, name, got, want)
			}
		}
	}
}

func TestBoardStatusColorSwap(t *testing.T) {
	swapped := map[BoardStatus]BoardStatus{
		BoardOpen:  BoardOpen,
		BoardXWon:  BoardOWon,
		BoardOWon:  BoardXWon,
		BoardDrawn: BoardDrawn,
	}

	boards := []string{"xxx.oo.o.", "ooo.xx.x.", "xoxxoooxx", ".........", "x.o.x.o.."}
	for _, cells := range boards {
		base := boardFromCells(t, cells)
		sw := swapColors(base)
		if got := sw.Status(); got != swapped[base.Status()] {
			t.Errorf("%q color-swapped: Status = %v, want %v", cells, got, swapped[base.Status()])
		}
	}
}

func TestBoardWouldWin(t *testing.T) {
	b := boardFromCells(t, "xx.oo....")

	if !b.wouldWin(2, MarkX) {
		t.Error("x on cell 2 should complete the top row")
	}
	if !b.wouldWin(5, MarkO) {
		t.Error("o on cell 5 should complete the middle row")
	}
	if b.wouldWin(5, MarkX) {
		t.Error("x on cell 5 completes nothing")
	}
	if b.wouldWin(8, MarkO) {
		t.Error("o on cell 8 completes nothing")
	}
}
