package main

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"tour-engine/engine"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type tracePayload struct {
	Event string `json:"event"`
	Line  string `json:"line"`
}

type resultPayload struct {
	Event     string  `json:"event"`
	Winner    string  `json:"winner"`
	Nodes     uint64  `json:"nodes"`
	ElapsedMs float64 `json:"elapsed_ms"`
}

type errorPayload struct {
	Event string `json:"event"`
	Error string `json:"error"`
}

// traceConn forwards complete trace lines to the websocket as the search
// produces them. The search runs on the handler goroutine, so writes are
// never concurrent.
type traceConn struct {
	conn *websocket.Conn
	buf  bytes.Buffer
}

func (t *traceConn) Write(p []byte) (int, error) {
	t.buf.Write(p)
	for {
		raw := t.buf.Bytes()
		i := bytes.IndexByte(raw, '\n')
		if i < 0 {
			break
		}
		line := string(raw[:i])
		t.buf.Next(i + 1)
		if err := t.conn.WriteJSON(tracePayload{Event: "trace", Line: line}); err != nil {
			return len(p), err
		}
	}
	return len(p), nil
}

// handleSolveWS reads one solveRequest frame, streams the verbose trace of
// the search back as it runs, and finishes with a result frame.
func handleSolveWS(w http.ResponseWriter, req *http.Request) {
	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Printf("[server] websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	var payload solveRequest
	if err := conn.ReadJSON(&payload); err != nil {
		conn.WriteJSON(errorPayload{Event: "error", Error: "invalid payload"})
		return
	}
	board, err := payload.board()
	if err != nil {
		conn.WriteJSON(errorPayload{Event: "error", Error: err.Error()})
		return
	}

	opts := payload.options()
	opts.Verbose = true
	opts.Trace = &traceConn{conn: conn}

	start := time.Now()
	result := engine.Search(board, opts)

	if err := conn.WriteJSON(resultPayload{
		Event:     "result",
		Winner:    result.Winner.String(),
		Nodes:     result.Nodes,
		ElapsedMs: float64(time.Since(start).Microseconds()) / 1000,
	}); err != nil {
		log.Printf("[server] writing result: %v", err)
	}
}
