package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"santorini/experiments/metrics"
	"santorini/game"
	"santorini/searcher"
	"santorini/searcher/agent"
)

// RemoteAgent asks an agent server for its placements and plays.
type RemoteAgent struct {
	URL    string
	Client *http.Client
}

var _ agent.Agent = (*RemoteAgent)(nil)

func NewRemoteAgent(url string) *RemoteAgent {
	return &RemoteAgent{URL: url, Client: http.DefaultClient}
}

func (a *RemoteAgent) PlacePawn(board *game.Board, pawn game.Pawn) (game.Cell, error) {
	var cell game.Cell
	err := a.post("/placepawn", agent.PlaceRequest{Layout: board.Layout(), Pawn: pawn.Number}, &cell)
	return cell, err
}

func (a *RemoteAgent) FindPlay(board *game.Board) (game.Play, metrics.SearchMetric, error) {
	var resp agent.PlayResponse
	if err := a.post("/findplay", agent.PlayRequest{Layout: board.Layout()}, &resp); err != nil {
		return game.Play{}, metrics.SearchMetric{}, err
	}
	return resp.Play, resp.Metric, nil
}

// post encodes the payload in JSON and decodes the agent's answer into out.
func (a *RemoteAgent) post(path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := a.Client.Post(a.URL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnprocessableEntity:
		msg, _ := io.ReadAll(resp.Body)
		if path == "/findplay" {
			return fmt.Errorf("%w: %s", searcher.ErrNoLegalPlays, bytes.TrimSpace(msg))
		}
		return fmt.Errorf("%w: %s", agent.ErrNoPlacement, bytes.TrimSpace(msg))
	default:
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode agent response: %w", err)
	}
	return nil
}
