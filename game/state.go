package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
	ErrIllegalPlay = errors.New("illegal play")
)

// Board represents the dynamic state of the game at any point. Arrays keep
// a copy of the Board independent of the original by plain assignment.
type Board struct {
	Heights [Size][Size]int // 0..WinHeight, or Dome
	Pawns   [NumPawns]Pawn  // Indexed by pawn number - 1
	Turn    int             // Starts at 1, incremented after every placement and play
	Current int             // The player to move
	Won     int             // NoPlayer until the game is decided
}

// NewBoard returns an empty board with every pawn unplaced and player 1 to move.
func NewBoard() *Board {
	b := &Board{Turn: 1, Current: 1}
	for i := range b.Pawns {
		b.Pawns[i] = newPawn(i + 1)
	}
	return b
}

func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// Player returns the player to move.
func (b *Board) Player() int {
	return b.Current
}

// Winner returns the winning player, NoPlayer if the game is undecided.
func (b *Board) Winner() int {
	return b.Won
}

func (b *Board) GameOver() bool {
	return b.Won != NoPlayer
}

// Pawn returns a pawn by number. It panics on an unknown number.
func (b *Board) Pawn(number int) Pawn {
	if number < 1 || number > NumPawns {
		panic(fmt.Sprintf("unknown pawn number %d", number))
	}
	return b.Pawns[number-1]
}

func (b *Board) PawnsOf(player int) [2]Pawn {
	return [2]Pawn{b.Pawn(player), b.Pawn(player + NumPlayers)}
}

func (b *Board) Height(cell Cell) int {
	return b.Heights[cell.Row][cell.Col]
}

func (b *Board) IsAdjacent(a, c Cell) bool {
	return Adjacent(a, c)
}

// occupant returns the number of the pawn standing on a cell, 0 if none.
func (b *Board) occupant(cell Cell) int {
	for _, p := range b.Pawns {
		if p.Placed && p.Pos == cell {
			return p.Number
		}
	}
	return 0
}

// CheckMove returns why a pawn cannot move from one cell to another, nil if it can.
func (b *Board) CheckMove(from, to Cell) error {
	switch {
	case !from.InBoard():
		return fmt.Errorf("%w: cannot move from outside the board", ErrIllegalMove)
	case !to.InBoard():
		return fmt.Errorf("%w: cannot move outside the board to %s", ErrIllegalMove, to)
	case !Adjacent(from, to):
		return fmt.Errorf("%w: %s is not adjacent to %s", ErrIllegalMove, to, from)
	case b.Height(to) == Dome:
		return fmt.Errorf("%w: cannot move on a terminated tower", ErrIllegalMove)
	case b.Height(to)-b.Height(from) > 1:
		return fmt.Errorf("%w: cannot climb two levels in one move", ErrIllegalMove)
	case b.occupant(to) != 0:
		return fmt.Errorf("%w: cannot move on another pawn", ErrIllegalMove)
	}
	return nil
}

// CheckBuild returns why the pawn, standing on builder after its move, cannot
// build on a cell, nil if it can.
func (b *Board) CheckBuild(pawn int, builder, build Cell) error {
	switch {
	case !build.InBoard():
		return fmt.Errorf("%w: cannot build outside the board", ErrIllegalMove)
	case !Adjacent(builder, build):
		return fmt.Errorf("%w: %s is not adjacent to %s", ErrIllegalMove, build, builder)
	case b.Height(build) == Dome:
		return fmt.Errorf("%w: cannot build on a terminated tower", ErrIllegalMove)
	}
	// The builder has left its origin, so only the other pawns block
	if other := b.occupant(build); other != 0 && other != pawn {
		return fmt.Errorf("%w: cannot build on another pawn", ErrIllegalMove)
	}
	return nil
}

// MovePositions returns the cells a placed pawn can move to in row-major order.
func (b *Board) MovePositions(pawn int) []Cell {
	p := b.Pawn(pawn)
	if !p.Placed {
		return nil
	}
	var cells []Cell
	for _, n := range Neighbors(p.Pos) {
		if b.CheckMove(p.Pos, n) == nil {
			cells = append(cells, n)
		}
	}
	return cells
}

// LegalPlays returns every legal (move, build) pair for a placed pawn.
func (b *Board) LegalPlays(pawn int) []Play {
	var plays []Play
	for _, move := range b.MovePositions(pawn) {
		for _, build := range Neighbors(move) {
			if b.CheckBuild(pawn, move, build) == nil {
				plays = append(plays, Play{Pawn: pawn, Move: move, Build: build})
			}
		}
	}
	return plays
}

// CanMove checks if any placed pawn of the player has a legal move.
func (b *Board) CanMove(player int) bool {
	for _, p := range b.PawnsOf(player) {
		if len(b.MovePositions(p.Number)) > 0 {
			return true
		}
	}
	return false
}

// FirstUnplaced returns the first pawn of the player still waiting for placement.
func (b *Board) FirstUnplaced(player int) (Pawn, bool) {
	for _, p := range b.PawnsOf(player) {
		if !p.Placed {
			return p, true
		}
	}
	return Pawn{}, false
}

func (b *Board) AllPlaced() bool {
	for _, p := range b.Pawns {
		if !p.Placed {
			return false
		}
	}
	return true
}

// PlacementCells returns every free, non-domed cell in row-major order.
func (b *Board) PlacementCells() []Cell {
	var cells []Cell
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cell := Cell{Row: r, Col: c}
			if b.Height(cell) != Dome && b.occupant(cell) == 0 {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// PlacePawn places the current player's first unplaced pawn and passes the turn.
func (b *Board) PlacePawn(cell Cell) error {
	if b.GameOver() {
		return ErrGameOver
	}
	pawn, ok := b.FirstUnplaced(b.Current)
	if !ok {
		return fmt.Errorf("%w: all pawns of player %d are placed", ErrIllegalMove, b.Current)
	}
	if !cell.InBoard() {
		return fmt.Errorf("%w: %s is not within the board", ErrIllegalMove, cell)
	}
	if b.Height(cell) == Dome {
		return fmt.Errorf("%w: cannot place on a terminated tower", ErrIllegalMove)
	}
	if b.occupant(cell) != 0 {
		return fmt.Errorf("%w: %s is already occupied", ErrIllegalMove, cell)
	}
	b.Pawns[pawn.Number-1].Pos = cell
	b.Pawns[pawn.Number-1].Placed = true
	b.nextTurn()
	return nil
}

// Play validates a play for the player to move and returns the resulting board.
func (b *Board) Play(play Play) (*Board, error) {
	if b.GameOver() {
		return nil, ErrGameOver
	}
	if !b.AllPlaced() {
		return nil, fmt.Errorf("%w: all the pawns have not been placed yet", ErrIllegalPlay)
	}
	if play.Pawn < 1 || play.Pawn > NumPawns || PlayerOf(play.Pawn) != b.Current {
		return nil, fmt.Errorf("%w: pawn %d does not belong to player %d", ErrIllegalPlay, play.Pawn, b.Current)
	}
	from := b.Pawn(play.Pawn).Pos
	if err := b.CheckMove(from, play.Move); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIllegalPlay, err)
	}
	if b.Height(play.Move) != WinHeight {
		if err := b.CheckBuild(play.Pawn, play.Move, play.Build); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIllegalPlay, err)
		}
	}
	next := b.Copy()
	next.apply(play)
	return next, nil
}

// Simulate applies a play without validation and returns an independent state.
func (b *Board) Simulate(play Play) State {
	next := b.Copy()
	next.apply(play)
	return next
}

func (b *Board) apply(play Play) {
	mover := PlayerOf(play.Pawn)
	b.Pawns[play.Pawn-1].Pos = play.Move

	if b.Height(play.Move) == WinHeight {
		b.Won = mover
		return
	}

	b.Heights[play.Build.Row][play.Build.Col]++
	b.nextTurn()

	// A player unable to move loses
	if !b.CanMove(b.Current) {
		b.Won = mover
	}
}

func (b *Board) nextTurn() {
	b.Current = Opponent(b.Current)
	b.Turn++
}

func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.Current))
	binary.Write(hasher, binary.LittleEndian, int64(b.Won))

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			binary.Write(hasher, binary.LittleEndian, int64(b.Heights[r][c]))
		}
	}

	for _, p := range b.Pawns {
		pos := int64(-1)
		if p.Placed {
			pos = int64(p.Pos.Row*Size + p.Pos.Col)
		}
		binary.Write(hasher, binary.LittleEndian, pos)
	}

	return StateHash(hasher.Sum64())
}

// String renders one line per row, each cell as its pawn number (or _) and height.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cell := Cell{Row: r, Col: c}
			if n := b.occupant(cell); n != 0 {
				fmt.Fprintf(&sb, "%d", n)
			} else {
				sb.WriteByte('_')
			}
			fmt.Fprintf(&sb, "%d ", b.Height(cell))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
