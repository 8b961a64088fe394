package tourmg

import "fmt"

// PieceKind selects the movement rule for the single shared piece.
type PieceKind uint8

const (
	Rook PieceKind = iota
	King
	Queen
	Knight
)

var pieceNames = [...]string{"rook", "king", "queen", "knight"}

func (k PieceKind) String() string {
	if int(k) < len(pieceNames) {
		return pieceNames[k]
	}
	return fmt.Sprintf("PieceKind(%d)", uint8(k))
}

// ParsePieceKind maps a lowercase piece name to its PieceKind.
func ParsePieceKind(s string) (PieceKind, error) {
	switch s {
	case "rook":
		return Rook, nil
	case "king":
		return King, nil
	case "queen":
		return Queen, nil
	case "knight":
		return Knight, nil
	}
	return 0, fmt.Errorf("unsupported piece kind %q", s)
}

// Position is a square on the board, row-major from the top-left corner.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
