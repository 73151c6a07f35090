package game

const (
	Size      = 5 // Board is Size x Size
	WinHeight = 3 // Moving onto a cell of this height wins
	Dome      = 4 // Terminated tower, cannot be entered or built on
)

const (
	NoPlayer   = 0
	NumPlayers = 2
	NumPawns   = NumPlayers * 2
)

type StateHash uint64

// State should be immutable - operations on State always return a new copy.
// It is the collaborator the searcher consumes: enumeration and simulation
// primitives only, the searcher never re-checks the rules.
type State interface {
	// Player returns the player to move
	Player() int
	// PawnsOf returns the player's two pawns ordered by pawn order
	PawnsOf(player int) [2]Pawn
	// LegalPlays returns every legal (move, build) pair for the pawn
	LegalPlays(pawn int) []Play
	Height(cell Cell) int
	IsAdjacent(a, b Cell) bool
	// Simulate applies a play to an independent copy, including turn
	// bookkeeping and winner detection. The receiver is not modified.
	Simulate(play Play) State
	Winner() int
	Hash() StateHash
}

// Opponent returns the other player of a two-player game.
func Opponent(player int) int {
	if player == 1 {
		return 2
	}
	return 1
}

// PlayerOf returns the owner of a pawn number.
// Player 1 owns pawns 1 and 3, player 2 owns pawns 2 and 4.
func PlayerOf(pawn int) int {
	return (pawn-1)%NumPlayers + 1
}

// OrderOf returns whether a pawn number is its owner's first or second pawn.
func OrderOf(pawn int) int {
	return (pawn-1)/NumPlayers + 1
}
