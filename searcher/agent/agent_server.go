package agent

import (
	"encoding/json"
	"errors"
	"net/http"
	"santorini/experiments/metrics"
	"santorini/game"
	"santorini/searcher"

	"github.com/rs/zerolog/log"
)

// PlaceRequest asks an agent where to place a pawn.
type PlaceRequest struct {
	Layout game.Layout `json:"layout"`
	Pawn   int         `json:"pawn"`
}

// PlayRequest asks an agent for its play on a position.
type PlayRequest struct {
	Layout game.Layout `json:"layout"`
}

type PlayResponse struct {
	Play   game.Play            `json:"play"`
	Metric metrics.SearchMetric `json:"metric"`
}

// NewServer exposes an agent over HTTP on /placepawn and /findplay.
func NewServer(a Agent) http.Handler {
	// Create a local mux rather than using the global DefaultServeMux
	mux := http.NewServeMux()
	mux.HandleFunc("POST /placepawn", func(w http.ResponseWriter, r *http.Request) {
		handlePlacePawn(a, w, r)
	})
	mux.HandleFunc("POST /findplay", func(w http.ResponseWriter, r *http.Request) {
		handleFindPlay(a, w, r)
	})
	return mux
}

// StartAgentServer serves an agent on the given port until the server fails.
func StartAgentServer(port string, a Agent) error {
	log.Info().Str("port", port).Msg("starting agent server")
	return http.ListenAndServe(":"+port, NewServer(a))
}

func handlePlacePawn(a Agent, w http.ResponseWriter, r *http.Request) {
	var payload PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: malformed payload", http.StatusBadRequest)
		return
	}
	board, err := decodeBoard(payload.Layout)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Pawn < 1 || payload.Pawn > game.NumPawns {
		http.Error(w, "bad request: unknown pawn", http.StatusBadRequest)
		return
	}
	pawn := board.Pawn(payload.Pawn)
	if pawn.Placed || pawn.Player != board.Player() {
		http.Error(w, "bad request: pawn is not waiting for the player to move", http.StatusBadRequest)
		return
	}

	cell, err := a.PlacePawn(board, pawn)
	if err != nil {
		log.Warn().Err(err).Int("pawn", payload.Pawn).Msg("placement failed")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, cell)
}

func handleFindPlay(a Agent, w http.ResponseWriter, r *http.Request) {
	var payload PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: malformed payload", http.StatusBadRequest)
		return
	}
	board, err := decodeBoard(payload.Layout)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	play, metric, err := a.FindPlay(board)
	switch {
	case errors.Is(err, searcher.ErrNoLegalPlays):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		log.Error().Err(err).Msg("search failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Debug().Int("player", board.Player()).Stringer("play", play).Msg("served play")
	writeJSON(w, PlayResponse{Play: play, Metric: metric})
}

// decodeBoard rebuilds a board from a position sent by a client. Unlike local
// layouts, the player to move must be explicit.
func decodeBoard(l game.Layout) (*game.Board, error) {
	if l.Player == game.NoPlayer {
		return nil, errors.New("layout has no player to move")
	}
	return game.NewBoardFromLayout(l)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response: "+err.Error(), http.StatusInternalServerError)
	}
}
