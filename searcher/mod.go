package searcher

import (
	"errors"
	"fmt"
)

var (
	// ErrNoLegalPlays signals that the side to move cannot play, a loss for that side
	ErrNoLegalPlays = errors.New("no legal plays")
	// ErrFeatureMismatch signals candidates with differing feature sets in one ranking
	ErrFeatureMismatch = errors.New("feature set mismatch")
	// ErrWeightCount signals a weight vector not matching the feature set size
	ErrWeightCount = errors.New("weight count mismatch")
	// ErrContractViolation signals malformed output from the game state
	ErrContractViolation = errors.New("game state contract violation")
	// ErrInvalidDepth signals a non-positive number of layers or branches
	ErrInvalidDepth = errors.New("invalid search depth")
)

// Search defaults
const (
	DefaultLayers   = 2
	DefaultBranches = 5
)

// WinScore is the value of a decided game, reduced by the plies needed to reach it.
const WinScore = 1e6

// Backup selects how deeper results are backed up into the root decision.
type Backup int

const (
	// BackupMinimax picks the root candidate with the best worst-case outcome
	BackupMinimax Backup = iota
	// BackupRootOnly picks the top ranked root candidate without look-ahead
	BackupRootOnly
)

func (b Backup) String() string {
	switch b {
	case BackupMinimax:
		return "minimax"
	case BackupRootOnly:
		return "root-only"
	default:
		return fmt.Sprintf("Backup(%d)", int(b))
	}
}

// ParseBackup is the inverse of Backup.String.
func ParseBackup(s string) (Backup, error) {
	switch s {
	case "", "minimax":
		return BackupMinimax, nil
	case "root-only":
		return BackupRootOnly, nil
	}
	return 0, fmt.Errorf("unknown backup %q", s)
}
