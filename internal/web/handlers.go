package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kosolve/twophase/internal/kociemba/cube"
	"github.com/kosolve/twophase/internal/kociemba/notation"
	"github.com/kosolve/twophase/internal/kociemba/solver"
)

type SolveRequest struct {
	Scramble string `json:"scramble"`
}

type SolveResponse struct {
	Solution string `json:"solution"`
	Moves    int    `json:"moves"`
	Time     string `json:"time"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	moves, err := notation.Parse(req.Scramble)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid scramble: "+err.Error())
		return
	}

	c := cube.ApplySequence(cube.Solved, moves)

	start := time.Now()
	solution, ok := solver.New(s.tables).Solve(c)
	elapsed := time.Since(start)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "no solution found within the maximum search length")
		return
	}

	response := SolveResponse{
		Solution: notation.Format(solution),
		Moves:    len(solution),
		Time:     elapsed.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
