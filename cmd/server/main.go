package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tour-engine/config"
	"tour-engine/engine"
	"tour-engine/tourmg"
)

type solveRequest struct {
	Rows          int    `json:"rows"`
	Cols          int    `json:"cols"`
	Row           int    `json:"row"`
	Col           int    `json:"col"`
	Piece         string `json:"piece"`
	Heuristic     bool   `json:"heuristic"`
	Symmetry      bool   `json:"symmetry"`
	SymmetryDepth int    `json:"symmetry_depth"`
}

type solveResponse struct {
	Winner    string  `json:"winner"`
	Nodes     uint64  `json:"nodes"`
	ElapsedMs float64 `json:"elapsed_ms"`
	Board     string  `json:"board"`
}

// board builds a fresh per-request board; requests never share state.
func (r solveRequest) board() (*tourmg.Board, error) {
	kind, err := tourmg.ParsePieceKind(r.Piece)
	if err != nil {
		return nil, err
	}
	return tourmg.NewBoard(r.Rows, r.Cols, tourmg.Position{Row: r.Row, Col: r.Col}, kind)
}

func (r solveRequest) options() engine.Options {
	return engine.Options{
		Heuristic:     r.Heuristic,
		Symmetry:      r.Symmetry,
		SymmetryDepth: r.SymmetryDepth,
	}
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post("/api/solve", handleSolve)
	r.Get("/api/solve/ws", handleSolveWS)
	return r
}

func handleSolve(w http.ResponseWriter, req *http.Request) {
	var payload solveRequest
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	board, err := payload.board()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	rendered := board.String()
	start := time.Now()
	result := engine.Search(board, payload.options())

	writeJSON(w, http.StatusOK, solveResponse{
		Winner:    result.Winner.String(),
		Nodes:     result.Nodes,
		ElapsedMs: float64(time.Since(start).Microseconds()) / 1000,
		Board:     rendered,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[server] writing response: %v", err)
	}
}

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	addr := flag.String("addr", cfg.Server.Addr, "listen address")
	flag.Parse()

	log.Printf("[server] listening on %s", *addr)
	if err := http.ListenAndServe(*addr, newRouter()); err != nil {
		log.Fatal(err)
	}
}
