package engine

import (
	"fmt"
	"strings"

	"tour-engine/tourmg"
)

// Verbose tracing is observational only: it mirrors the exploration order
// but never influences it.

func moverName(firstToMove bool) string {
	if firstToMove {
		return "first"
	}
	return "second"
}

func (s *searcher) traceNode(depth int, firstToMove bool, moves []tourmg.Position) {
	fmt.Fprintf(s.trace, "%sdepth=%d, mover=%s, available=%v\n",
		strings.Repeat(" ", depth*2), depth, moverName(firstToMove), moves)
}

func (s *searcher) traceChoice(depth int, firstToMove bool, move tourmg.Position) {
	fmt.Fprintf(s.trace, "%s%s chose %v\n",
		strings.Repeat(" ", depth*2+2), moverName(firstToMove), move)
}
