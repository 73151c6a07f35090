package game

import "fmt"

var _ State = (*Board)(nil)

// Layout describes an arbitrary position: tower heights, placed pawns and
// the player to move. Missing heights default to 0, missing pawns stay unplaced.
type Layout struct {
	Heights [][]int      `yaml:"heights" json:"heights"`
	Pawns   map[int]Cell `yaml:"pawns" json:"pawns"`
	Player  int          `yaml:"player" json:"player"`
}

// NewBoardFromLayout builds a board from a layout, validating every value.
func NewBoardFromLayout(l Layout) (*Board, error) {
	b := NewBoard()

	if len(l.Heights) > 0 && len(l.Heights) != Size {
		return nil, fmt.Errorf("layout has %d rows, expected %d", len(l.Heights), Size)
	}
	for r, row := range l.Heights {
		if len(row) != Size {
			return nil, fmt.Errorf("layout row %d has %d cells, expected %d", r, len(row), Size)
		}
		for c, h := range row {
			if h < 0 || h > Dome {
				return nil, fmt.Errorf("layout height %d at (%d,%d) is out of range", h, r, c)
			}
			b.Heights[r][c] = h
		}
	}

	for number, cell := range l.Pawns {
		if number < 1 || number > NumPawns {
			return nil, fmt.Errorf("layout has unknown pawn %d", number)
		}
		if !cell.InBoard() {
			return nil, fmt.Errorf("layout pawn %d at %s is outside the board", number, cell)
		}
		if b.Height(cell) == Dome {
			return nil, fmt.Errorf("layout pawn %d stands on a terminated tower", number)
		}
		if other := b.occupant(cell); other != 0 {
			return nil, fmt.Errorf("layout pawns %d and %d share %s", other, number, cell)
		}
		b.Pawns[number-1].Pos = cell
		b.Pawns[number-1].Placed = true
	}

	switch l.Player {
	case NoPlayer:
		b.Current = 1
	case 1, 2:
		b.Current = l.Player
	default:
		return nil, fmt.Errorf("layout has unknown player %d", l.Player)
	}
	return b, nil
}

// MustLayout is NewBoardFromLayout for fixed positions known to be valid.
func MustLayout(l Layout) *Board {
	b, err := NewBoardFromLayout(l)
	if err != nil {
		panic(err)
	}
	return b
}

// Layout describes the board's current position.
func (b *Board) Layout() Layout {
	l := Layout{
		Heights: make([][]int, Size),
		Pawns:   make(map[int]Cell),
		Player:  b.Current,
	}
	for r := range l.Heights {
		l.Heights[r] = append([]int(nil), b.Heights[r][:]...)
	}
	for _, p := range b.Pawns {
		if p.Placed {
			l.Pawns[p.Number] = p.Pos
		}
	}
	return l
}
