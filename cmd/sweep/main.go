package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"tour-engine/config"
	"tour-engine/engine"
	"tour-engine/tourmg"
)

// sweep runs the full search once per start square (and optionally per piece
// kind) and reports winner, node count and time for each configuration.

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	rows := flag.Int("rows", cfg.Defaults.Rows, "board height")
	cols := flag.Int("cols", cfg.Defaults.Cols, "board width")
	piece := flag.String("piece", cfg.Defaults.Piece, "piece kind, or \"all\" for all four")
	heuristic := flag.Bool("heuristic", false, "order moves farthest from the center first")
	symmetry := flag.Bool("symmetry", false, "filter mirror-duplicate moves near the root")
	symDepth := flag.Int("symdepth", cfg.Defaults.SymmetryDepth, "deepest ply for symmetry filtering")
	csvOut := flag.Bool("csv", false, "emit CSV instead of the aligned table")
	flag.Parse()

	var kinds []tourmg.PieceKind
	if *piece == "all" {
		kinds = []tourmg.PieceKind{tourmg.Rook, tourmg.King, tourmg.Queen, tourmg.Knight}
	} else {
		kind, err := tourmg.ParsePieceKind(*piece)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		kinds = []tourmg.PieceKind{kind}
	}

	opts := engine.Options{
		Heuristic:     *heuristic,
		Symmetry:      *symmetry,
		SymmetryDepth: *symDepth,
	}

	var writer *csv.Writer
	if *csvOut {
		writer = csv.NewWriter(os.Stdout)
		defer writer.Flush()
		if err := writer.Write([]string{"piece", "row", "col", "winner", "nodes", "time_ms"}); err != nil {
			log.Fatalf("writing csv: %v", err)
		}
	} else {
		fmt.Printf("%-8s %-8s %-8s %-12s %s\n", "piece", "start", "winner", "nodes", "time")
	}

	var totalNodes uint64
	sweepStart := time.Now()

	for _, kind := range kinds {
		for r := 0; r < *rows; r++ {
			for c := 0; c < *cols; c++ {
				board, err := tourmg.NewBoard(*rows, *cols, tourmg.Position{Row: r, Col: c}, kind)
				if err != nil {
					log.Fatalf("building board: %v", err)
				}

				start := time.Now()
				result := engine.Search(board, opts)
				elapsed := time.Since(start)
				totalNodes += result.Nodes

				if *csvOut {
					record := []string{
						kind.String(),
						strconv.Itoa(r),
						strconv.Itoa(c),
						result.Winner.String(),
						strconv.FormatUint(result.Nodes, 10),
						strconv.FormatFloat(float64(elapsed.Microseconds())/1000, 'f', 3, 64),
					}
					if err := writer.Write(record); err != nil {
						log.Fatalf("writing csv: %v", err)
					}
				} else {
					fmt.Printf("%-8s %-8s %-8s %-12d %s\n",
						kind, tourmg.Position{Row: r, Col: c}, result.Winner, result.Nodes, elapsed)
				}
			}
		}
	}

	if !*csvOut {
		fmt.Printf("total nodes %d \ttime %s\n", totalNodes, time.Since(sweepStart))
	}
}
