package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func postSolve(t *testing.T, srv *httptest.Server, payload solveRequest) (*http.Response, solveResponse) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(srv.URL+"/api/solve", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/solve: %v", err)
	}
	var decoded solveResponse
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	resp.Body.Close()
	return resp, decoded
}

func TestSolveEndpoint(t *testing.T) {
	srv := httptest.NewServer(newRouter())
	defer srv.Close()

	resp, got := postSolve(t, srv, solveRequest{
		Rows: 3, Cols: 3, Row: 1, Col: 1, Piece: "rook",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got.Winner != "second" {
		t.Fatalf("winner = %q, want second", got.Winner)
	}
	if got.Nodes != 81 {
		t.Fatalf("nodes = %d, want 81", got.Nodes)
	}
	if !strings.Contains(got.Board, "P") {
		t.Fatalf("board rendering missing piece:\n%s", got.Board)
	}
}

func TestSolveEndpointRejectsBadRequests(t *testing.T) {
	srv := httptest.NewServer(newRouter())
	defer srv.Close()

	resp, _ := postSolve(t, srv, solveRequest{Rows: 0, Cols: 3, Piece: "rook"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d for zero rows, want 400", resp.StatusCode)
	}

	resp, _ = postSolve(t, srv, solveRequest{Rows: 3, Cols: 3, Piece: "bishop"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d for unknown piece, want 400", resp.StatusCode)
	}

	raw, err := http.Post(srv.URL+"/api/solve", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	raw.Body.Close()
	if raw.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d for malformed body, want 400", raw.StatusCode)
	}
}

func TestSolveWebsocketStreamsTraceAndResult(t *testing.T) {
	srv := httptest.NewServer(newRouter())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/solve/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	request := solveRequest{Rows: 2, Cols: 2, Row: 0, Col: 0, Piece: "king"}
	if err := conn.WriteJSON(request); err != nil {
		t.Fatalf("write request: %v", err)
	}

	traceLines := 0
	for {
		var frame map[string]any
		if err := conn.ReadJSON(&frame); err != nil {
			t.Fatalf("read frame: %v", err)
		}
		switch frame["event"] {
		case "trace":
			traceLines++
		case "result":
			if frame["winner"] != "first" {
				t.Fatalf("winner = %v, want first", frame["winner"])
			}
			if nodes, ok := frame["nodes"].(float64); !ok || nodes != 6 {
				t.Fatalf("nodes = %v, want 6", frame["nodes"])
			}
			if traceLines == 0 {
				t.Fatalf("no trace frames before result")
			}
			return
		default:
			t.Fatalf("unexpected frame %v", frame)
		}
	}
}
