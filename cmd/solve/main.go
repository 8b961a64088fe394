package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"tour-engine/config"
	"tour-engine/engine"
	"tour-engine/tourmg"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// --- Flags ---
	rows := flag.Int("rows", cfg.Defaults.Rows, "board height")
	cols := flag.Int("cols", cfg.Defaults.Cols, "board width")
	startRow := flag.Int("row", 0, "piece start row")
	startCol := flag.Int("col", 0, "piece start column")
	piece := flag.String("piece", cfg.Defaults.Piece, "piece kind (rook, king, queen, knight)")
	verbose := flag.Bool("verbose", false, "trace every node and candidate")
	heuristic := flag.Bool("heuristic", false, "order moves farthest from the center first")
	symmetry := flag.Bool("symmetry", false, "filter mirror-duplicate moves near the root")
	symDepth := flag.Int("symdepth", cfg.Defaults.SymmetryDepth, "deepest ply for symmetry filtering")
	quiet := flag.Bool("quiet", false, "suppress the board rendering")
	saveConfig := flag.Bool("save-config", false, "persist the board and symmetry flags as config defaults")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write heap profile to file after run")
	flag.Parse()

	kind, err := tourmg.ParsePieceKind(*piece)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	board, err := tourmg.NewBoard(*rows, *cols, tourmg.Position{Row: *startRow, Col: *startCol}, kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *saveConfig {
		cfg.Defaults.Rows = *rows
		cfg.Defaults.Cols = *cols
		cfg.Defaults.Piece = kind.String()
		cfg.Defaults.SymmetryDepth = *symDepth
		if err := cfg.Save(); err != nil {
			log.Fatalf("saving config: %v", err)
		}
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	if !*quiet {
		fmt.Print(board)
	}

	start := time.Now()
	result := engine.Search(board, engine.Options{
		Verbose:       *verbose,
		Heuristic:     *heuristic,
		Symmetry:      *symmetry,
		SymmetryDepth: *symDepth,
	})
	elapsed := time.Since(start)

	fmt.Printf("%s mover wins\n", result.Winner)
	fmt.Printf("nodes %d \ttime %s\n", result.Nodes, elapsed)

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create heap profile: %v", err)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write heap profile: %v", err)
		}
		f.Close()
	}
}
