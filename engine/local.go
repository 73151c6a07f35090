package engine

import (
	"errors"
	"fmt"
	"santorini/experiments/metrics"
	"santorini/game"
	"santorini/meta"
	"santorini/searcher"
	"santorini/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrPartialPlacement = errors.New("player to move has no pawn left to place")

type LocalEngine struct {
	Board    *game.Board
	Agents   []agent.Agent // Indexed by player ID - 1
	MaxTurns int
}

var _ Engine = (*LocalEngine)(nil)

// NewLocalEngine runs a game between two agents from the given board,
// usually game.NewBoard() for a game starting with placement.
func NewLocalEngine(agents []agent.Agent, board *game.Board) *LocalEngine {
	if len(agents) != game.NumPlayers {
		panic(fmt.Sprintf("need %d agents, got %d", game.NumPlayers, len(agents)))
	}
	return &LocalEngine{
		Board:    board,
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the placement phase and then the game loop until a winner is found.
func (e *LocalEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Board.Player(),
		StartTime:      time.Now(),
	}

	log.Info().Msgf("player %d is starting", e.Board.Player())

	if err := e.place(); err != nil {
		return game.NoPlayer, gameMetric, nil, err
	}

	var moveMetrics []metrics.MoveMetric
	winner := e.Board.Winner()
	step := 1
	for winner == game.NoPlayer && step <= e.MaxTurns {
		player := e.Board.Player()

		// Agents get a copy so they cannot tamper with the game
		play, searchMetric, err := e.Agents[player-1].FindPlay(e.Board.Copy())
		if errors.Is(err, searcher.ErrNoLegalPlays) {
			winner = game.Opponent(player)
			log.Info().Msgf("player %d cannot play", player)
			break
		}
		if err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("player %d failed to find a play: %w", player, err)
		}

		next, err := e.Board.Play(play)
		if err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("player %d: %w", player, err)
		}
		e.Board = next

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Play:         play,
			StateHash:    next.Hash(),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Int("player", player).Stringer("play", play).Msg("played")

		winner = next.Winner()
		step++
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner != game.NoPlayer {
		log.Info().Msgf("game ended with winner: player %d after %d plays", winner, len(moveMetrics))
	} else {
		log.Info().Msgf("stopped after %d plays (no winner yet)", len(moveMetrics))
	}

	return winner, gameMetric, moveMetrics, nil
}

// place asks the agents for their pawns until every pawn stands on the board.
func (e *LocalEngine) place() error {
	for !e.Board.AllPlaced() {
		player := e.Board.Player()
		pawn, ok := e.Board.FirstUnplaced(player)
		if !ok {
			return fmt.Errorf("%w: player %d", ErrPartialPlacement, player)
		}

		cell, err := e.Agents[player-1].PlacePawn(e.Board.Copy(), pawn)
		if err != nil {
			return fmt.Errorf("player %d failed to place pawn %d: %w", player, pawn.Number, err)
		}
		if err := e.Board.PlacePawn(cell); err != nil {
			return fmt.Errorf("player %d: %w", player, err)
		}
		log.Debug().Int("pawn", pawn.Number).Stringer("cell", cell).Msg("placed")
	}
	return nil
}
