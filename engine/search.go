package engine

import (
	"io"
	"os"

	"tour-engine/tourmg"
)

// Winner identifies which of the two alternating movers forces the win.
type Winner uint8

const (
	FirstMover Winner = iota
	SecondMover
)

func (w Winner) String() string {
	if w == FirstMover {
		return "first"
	}
	return "second"
}

// DefaultSymmetryDepth is the deepest ply at which mirror-duplicate moves
// are still filtered. Detection pays off near the root where subtrees are
// largest; the value is an empirical tuning constant.
const DefaultSymmetryDepth = 3

// Options are the search feature flags. The zero value is a plain search:
// no tracing, generation order, no symmetry filtering. Neither flag ever
// changes the winner, only the exploration order and the node count.
type Options struct {
	Verbose   bool // trace every node and chosen candidate
	Heuristic bool // farthest-from-center move ordering
	Symmetry  bool // drop mirror-duplicate moves near the root

	// SymmetryDepth overrides the depth threshold for symmetry filtering;
	// 0 means DefaultSymmetryDepth.
	SymmetryDepth int

	// Trace receives verbose output; nil means os.Stdout.
	Trace io.Writer
}

// Result is the outcome of one search invocation. Nodes counts every board
// state visited, the root included, so it is always at least 1.
type Result struct {
	Winner Winner
	Nodes  uint64
}

// Search decides which mover forces a win from the board's current state,
// the first mover being the one to move. The board is mutated in place
// during the search and restored bit-for-bit before Search returns.
func Search(b *tourmg.Board, opts Options) Result {
	s := searcher{board: b, opts: opts, symDepth: opts.SymmetryDepth, trace: opts.Trace}
	if s.symDepth <= 0 {
		s.symDepth = DefaultSymmetryDepth
	}
	if s.trace == nil {
		s.trace = os.Stdout
	}

	firstWins, nodes := s.search(0, true)

	winner := SecondMover
	if firstWins {
		winner = FirstMover
	}
	return Result{Winner: winner, Nodes: nodes}
}

// searcher carries the per-invocation context. Everything travels here
// rather than in package state so that searches on separate boards stay
// independent of each other.
type searcher struct {
	board    *tourmg.Board
	opts     Options
	symDepth int
	trace    io.Writer
}

// search returns whether the first mover wins the subtree rooted at the
// current board state, and the number of states visited to prove it.
// firstToMove says whose turn it is at this node.
func (s *searcher) search(depth int, firstToMove bool) (firstWins bool, nodes uint64) {
	moves := s.board.AvailableMoves()

	// The mover to move is stuck and loses.
	if len(moves) == 0 {
		return !firstToMove, 1
	}

	if s.opts.Symmetry && depth <= s.symDepth {
		moves = filterSymmetric(s.board, moves)
	}
	if s.opts.Heuristic {
		orderByCenterDistance(s.board, moves)
	}
	if s.opts.Verbose {
		s.traceNode(depth, firstToMove, moves)
	}

	nodes = 1
	for _, move := range moves {
		if s.opts.Verbose {
			s.traceChoice(depth, firstToMove, move)
		}

		undo := s.board.Apply(move)
		childFirstWins, childNodes := s.search(depth+1, !firstToMove)
		nodes += childNodes
		undo()

		// A single winning continuation is sufficient proof in a strict
		// win/lose game: stop at the first child the mover to move wins.
		if childFirstWins == firstToMove {
			return firstToMove, nodes
		}
	}

	// Every continuation loses for the mover to move.
	return !firstToMove, nodes
}
