package tourmg

type direction struct{ dr, dc int }

var (
	rookDirs = [...]direction{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}
	royalDirs = [...]direction{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	knightDirs = [...]direction{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
)

// AvailableMoves returns the legal destinations for the piece from its
// current square. Destinations appear in direction-table order; sliding
// pieces list squares by increasing distance, and a slide stops at the board
// edge or the first visited square, which is never emitted.
func (b *Board) AvailableMoves() []Position {
	switch b.kind {
	case Rook:
		return b.movesInDirections(rookDirs[:], true)
	case Queen:
		return b.movesInDirections(royalDirs[:], true)
	case King:
		return b.movesInDirections(royalDirs[:], false)
	case Knight:
		return b.movesInDirections(knightDirs[:], false)
	}
	return nil
}

func (b *Board) movesInDirections(dirs []direction, sliding bool) []Position {
	moves := make([]Position, 0, len(dirs))
	for _, d := range dirs {
		p := Position{Row: b.pos.Row + d.dr, Col: b.pos.Col + d.dc}
		for b.InBounds(p) {
			if b.Visited(p) {
				break
			}
			moves = append(moves, p)
			if !sliding {
				break
			}
			p = Position{Row: p.Row + d.dr, Col: p.Col + d.dc}
		}
	}
	return moves
}
