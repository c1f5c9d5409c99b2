package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when game is on progress.
	StateRunning

	// StateCheckWhite is when White King is in check.
	StateCheckWhite

	// StateCheckBlack is when Black King is in check.
	StateCheckBlack

	// StateCheckmateWhite is when White King is in checkmate.
	StateCheckmateWhite

	// StateCheckmateBlack is when Black King is in checkmate.
	StateCheckmateBlack

	// StateStalemate is when the side to move cannot move a piece and its
	// King is not in check.
	StateStalemate
)

func (s State) IsRunning() bool {
	switch s {
	case StateRunning, StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheck() bool {
	switch s {
	case StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheckmate() bool {
	switch s {
	case StateCheckmateWhite, StateCheckmateBlack:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateCheckWhite:
		return "StateCheckWhite"
	case StateCheckBlack:
		return "StateCheckBlack"
	case StateCheckmateWhite:
		return "StateCheckmateWhite"
	case StateCheckmateBlack:
		return "StateCheckmateBlack"
	case StateStalemate:
		return "StateStalemate"
	default:
		return ""
	}
}

// State derives the game state for the side to move. It is never stored:
// check, checkmate, and stalemate all follow from the attack map and the
// emptiness of the legal move list.
func (p *Position) State() State {
	noMoves := len(p.Moves()) == 0
	if p.InCheck() {
		if p.turn == SideWhite {
			if noMoves {
				return StateCheckmateWhite
			}
			return StateCheckWhite
		}
		if noMoves {
			return StateCheckmateBlack
		}
		return StateCheckBlack
	}
	if noMoves {
		return StateStalemate
	}
	return StateRunning
}
