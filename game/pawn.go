package game

import "fmt"

// Pawn is a player's piece. Number is the stable identity across the game.
type Pawn struct {
	Number int  // 1..NumPawns
	Order  int  // 1 or 2 within its player
	Player int  // Owner
	Pos    Cell // Meaningless until Placed
	Placed bool
}

func newPawn(number int) Pawn {
	return Pawn{
		Number: number,
		Order:  OrderOf(number),
		Player: PlayerOf(number),
	}
}

// Play is a pawn move followed by a build next to the destination.
type Play struct {
	Pawn  int  `json:"pawn"`
	Move  Cell `json:"move"`
	Build Cell `json:"build"`
}

func (p Play) String() string {
	return fmt.Sprintf("pawn %d move %s build %s", p.Pawn, p.Move, p.Build)
}
