package tourmg

import "testing"

func mustBoard(t *testing.T, rows, cols int, start Position, kind PieceKind) *Board {
	t.Helper()
	b, err := NewBoard(rows, cols, start, kind)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func boardsEqual(a, b *Board) bool {
	if a.rows != b.rows || a.cols != b.cols || a.pos != b.pos || a.kind != b.kind {
		return false
	}
	for i := range a.visited {
		if a.visited[i] != b.visited[i] {
			return false
		}
	}
	return true
}

func TestNewBoardRejectsBadArguments(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		start      Position
		kind       PieceKind
	}{
		{"zero rows", 0, 3, Position{0, 0}, Rook},
		{"negative cols", 3, -1, Position{0, 0}, Rook},
		{"row out of bounds", 3, 3, Position{3, 0}, King},
		{"col out of bounds", 3, 3, Position{0, 3}, King},
		{"negative start", 3, 3, Position{-1, 0}, Queen},
		{"unknown kind", 3, 3, Position{0, 0}, PieceKind(42)},
	}
	for _, tc := range cases {
		if _, err := NewBoard(tc.rows, tc.cols, tc.start, tc.kind); err == nil {
			t.Errorf("%s: expected error, got none", tc.name)
		}
	}
}

func TestNewBoardMarksStartVisited(t *testing.T) {
	b := mustBoard(t, 3, 4, Position{1, 2}, Knight)
	if !b.Visited(Position{1, 2}) {
		t.Fatalf("start square not marked visited")
	}
	if b.Pos() != (Position{1, 2}) {
		t.Fatalf("position = %v, want (1, 2)", b.Pos())
	}
	visitedCount := 0
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if b.Visited(Position{r, c}) {
				visitedCount++
			}
		}
	}
	if visitedCount != 1 {
		t.Fatalf("visited squares = %d, want 1", visitedCount)
	}
}

func TestMakeMoveReturnsPreMovePosition(t *testing.T) {
	b := mustBoard(t, 3, 3, Position{1, 1}, Rook)
	old := b.MakeMove(Position{1, 2})
	if old != (Position{1, 1}) {
		t.Fatalf("MakeMove returned %v, want (1, 1)", old)
	}
	if b.Pos() != (Position{1, 2}) {
		t.Fatalf("position = %v, want (1, 2)", b.Pos())
	}
	if !b.Visited(Position{1, 2}) {
		t.Fatalf("destination not marked visited")
	}
}

func TestUndoMoveRestoresStateExactly(t *testing.T) {
	b := mustBoard(t, 3, 3, Position{1, 1}, Rook)
	before := b.Clone()

	old := b.MakeMove(Position{0, 1})
	b.UndoMove(Position{0, 1}, old)

	if !boardsEqual(b, before) {
		t.Fatalf("board differs after undo:\ngot:\n%swant:\n%s", b, before)
	}
}

func TestApplyClosureUndoesExactlyOneMove(t *testing.T) {
	b := mustBoard(t, 4, 4, Position{0, 0}, King)
	before := b.Clone()

	undoFirst := b.Apply(Position{1, 1})
	afterFirst := b.Clone()
	undoSecond := b.Apply(Position{2, 2})

	undoSecond()
	if !boardsEqual(b, afterFirst) {
		t.Fatalf("inner undo did not restore intermediate state")
	}
	undoFirst()
	if !boardsEqual(b, before) {
		t.Fatalf("outer undo did not restore initial state")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := mustBoard(t, 2, 2, Position{0, 0}, King)
	c := b.Clone()
	b.MakeMove(Position{1, 1})
	if c.Visited(Position{1, 1}) {
		t.Fatalf("clone shares occupancy with original")
	}
	if c.Pos() != (Position{0, 0}) {
		t.Fatalf("clone position changed to %v", c.Pos())
	}
}

func TestStringRendering(t *testing.T) {
	b := mustBoard(t, 2, 3, Position{0, 1}, Rook)
	b.MakeMove(Position{1, 1})
	want := "  0 1 2\n0 - x -\n1 - P -\n"
	if got := b.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestParsePieceKind(t *testing.T) {
	for name, want := range map[string]PieceKind{
		"rook": Rook, "king": King, "queen": Queen, "knight": Knight,
	} {
		got, err := ParsePieceKind(name)
		if err != nil {
			t.Fatalf("ParsePieceKind(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParsePieceKind(%q) = %v, want %v", name, got, want)
		}
		if got.String() != name {
			t.Fatalf("String() = %q, want %q", got.String(), name)
		}
	}
	if _, err := ParsePieceKind("bishop"); err == nil {
		t.Fatalf("expected error for unsupported piece")
	}
}
