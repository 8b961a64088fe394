package engine

import "tour-engine/tourmg"

// Mirror-symmetric boards make moves pairwise equivalent: a reflection maps
// every legal continuation onto an equally legal one with the same outcome,
// so exploring one representative per equivalence class is enough.

// horizontallySymmetric reports whether the occupancy mirrors across the
// vertical center line with the piece on the exact mid column.
func horizontallySymmetric(b *tourmg.Board) bool {
	rows, cols := b.Rows(), b.Cols()
	if b.Pos().Col*2 != cols-1 {
		return false
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < (cols+1)/2; c++ {
			mirror := tourmg.Position{Row: r, Col: cols - 1 - c}
			if b.Visited(tourmg.Position{Row: r, Col: c}) != b.Visited(mirror) {
				return false
			}
		}
	}
	return true
}

// verticallySymmetric reports whether the occupancy mirrors across the
// horizontal center line with the piece on the exact mid row.
func verticallySymmetric(b *tourmg.Board) bool {
	rows, cols := b.Rows(), b.Cols()
	if b.Pos().Row*2 != rows-1 {
		return false
	}
	for r := 0; r < (rows+1)/2; r++ {
		for c := 0; c < cols; c++ {
			mirror := tourmg.Position{Row: rows - 1 - r, Col: c}
			if b.Visited(tourmg.Position{Row: r, Col: c}) != b.Visited(mirror) {
				return false
			}
		}
	}
	return true
}

// canonicalPosition returns the lexicographically smallest (row, then col)
// of p and its mirror images under the detected symmetries.
func canonicalPosition(p tourmg.Position, rows, cols int, hSym, vSym bool) tourmg.Position {
	canon := p
	consider := func(q tourmg.Position) {
		if q.Row < canon.Row || (q.Row == canon.Row && q.Col < canon.Col) {
			canon = q
		}
	}
	if hSym {
		consider(tourmg.Position{Row: p.Row, Col: cols - 1 - p.Col})
	}
	if vSym {
		consider(tourmg.Position{Row: rows - 1 - p.Row, Col: p.Col})
	}
	if hSym && vSym {
		consider(tourmg.Position{Row: rows - 1 - p.Row, Col: cols - 1 - p.Col})
	}
	return canon
}

// filterSymmetric keeps the first move per canonical form, in the original
// order, when the current board is mirror symmetric. The list is filtered
// in place; with no symmetry it is returned untouched.
func filterSymmetric(b *tourmg.Board, moves []tourmg.Position) []tourmg.Position {
	hSym := horizontallySymmetric(b)
	vSym := verticallySymmetric(b)
	if !hSym && !vSym {
		return moves
	}

	rows, cols := b.Rows(), b.Cols()
	seen := make(map[tourmg.Position]struct{}, len(moves))
	kept := moves[:0]
	for _, m := range moves {
		canon := canonicalPosition(m, rows, cols, hSym, vSym)
		if _, dup := seen[canon]; dup {
			continue
		}
		seen[canon] = struct{}{}
		kept = append(kept, m)
	}
	return kept
}
