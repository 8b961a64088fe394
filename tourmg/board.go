package tourmg

import (
	"fmt"
	"strings"
)

// Board is the full game state: grid occupancy plus the piece's square.
// Squares are consumed as the piece visits them; the start square is visited
// from creation. MakeMove/UndoMove restore state bit-for-bit in LIFO order,
// so occupancy always marks exactly the squares on the current path.
type Board struct {
	rows, cols int
	visited    []bool // row-major, true once a square has been visited
	pos        Position
	kind       PieceKind

	// Heuristic reference point only, never used for legality.
	centerRow, centerCol float64
}

// NewBoard allocates an all-unvisited rows x cols grid with the piece on
// start, which is marked visited.
func NewBoard(rows, cols int, start Position, kind PieceKind) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board size %dx%d is not positive", rows, cols)
	}
	if start.Row < 0 || start.Row >= rows || start.Col < 0 || start.Col >= cols {
		return nil, fmt.Errorf("start position %v out of bounds on %dx%d board", start, rows, cols)
	}
	if kind > Knight {
		return nil, fmt.Errorf("unsupported piece kind %d", uint8(kind))
	}
	b := &Board{
		rows:      rows,
		cols:      cols,
		visited:   make([]bool, rows*cols),
		pos:       start,
		kind:      kind,
		centerRow: float64(rows) / 2,
		centerCol: float64(cols) / 2,
	}
	b.visited[start.Row*cols+start.Col] = true
	return b, nil
}

func (b *Board) Rows() int       { return b.rows }
func (b *Board) Cols() int       { return b.cols }
func (b *Board) Pos() Position   { return b.pos }
func (b *Board) Kind() PieceKind { return b.kind }

// Center returns the heuristic reference point (rows/2, cols/2).
func (b *Board) Center() (row, col float64) { return b.centerRow, b.centerCol }

func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// Visited reports whether p has been visited on the current path.
func (b *Board) Visited(p Position) bool { return b.visited[p.Row*b.cols+p.Col] }

// MakeMove marks dest visited, moves the piece there and returns the
// pre-move position for the matching UndoMove.
func (b *Board) MakeMove(dest Position) Position {
	old := b.pos
	b.pos = dest
	b.visited[dest.Row*b.cols+dest.Col] = true
	return old
}

// UndoMove reverts a MakeMove: unmark must be the dest just applied and
// restore the position MakeMove returned. Strict LIFO pairing.
func (b *Board) UndoMove(unmark, restore Position) {
	b.visited[unmark.Row*b.cols+unmark.Col] = false
	b.pos = restore
}

// Apply performs dest and returns the closure undoing exactly this move,
// so every exit path restores the board by invoking it once.
func (b *Board) Apply(dest Position) func() {
	old := b.MakeMove(dest)
	return func() { b.UndoMove(dest, old) }
}

// Clone returns a deep copy sharing no state with b.
func (b *Board) Clone() *Board {
	c := *b
	c.visited = make([]bool, len(b.visited))
	copy(c.visited, b.visited)
	return &c
}

// String renders the grid with row and column headers: P marks the piece,
// x a visited square, - a free one.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(" ")
	for j := 0; j < b.cols; j++ {
		fmt.Fprintf(&sb, " %d", j)
	}
	sb.WriteByte('\n')
	for i := 0; i < b.rows; i++ {
		fmt.Fprintf(&sb, "%d", i)
		for j := 0; j < b.cols; j++ {
			switch {
			case b.pos.Row == i && b.pos.Col == j:
				sb.WriteString(" P")
			case b.visited[i*b.cols+j]:
				sb.WriteString(" x")
			default:
				sb.WriteString(" -")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
