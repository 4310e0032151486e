package game

import "fmt"

// GameError is a simple coded error, so that like errors can be matched.
type GameError struct {
	Code string
	Msg  string
}

func (e *GameError) ErrorCode() string { return e.Code }
func (e *GameError) Error() string     { return e.Msg }

var (
	// ErrNoName means a player has an empty or blank name
	ErrNoName = &GameError{"NONAME", "player has no name"}
	// ErrPlayerExists means a player with the same name already is
	ErrPlayerExists = &GameError{"PLAYEREXISTS", "player exists"}
	// ErrNoPlayers means can't make a game with no players
	ErrNoPlayers = &GameError{"NOPLAYERS", "no players"}
	// ErrAlreadyStarted is only when calling Start() too much
	ErrAlreadyStarted = &GameError{"ALREADYSTARTED", "game has already started"}

	// ErrNotStarted means the game has not started
	ErrNotStarted = &GameError{"NOTSTARTED", "game has not started"}
	// ErrNotYourTurn means you can't do something while it's not your turn
	ErrNotYourTurn = &GameError{"NOTYOURTURN", "it's not your turn"}
	// ErrGameOver means someone has already won
	ErrGameOver = &GameError{"GAMEOVER", "game is over"}
	// ErrDiceRange is for declared dice values the dice could not show
	ErrDiceRange = &GameError{"DICERANGE", "dice value out of range"}
)

// EffectLoopError means the board's effects chase a player in circles,
// and the game cannot continue.
type EffectLoopError struct {
	Area   int
	Effect Effect
}

func (e *EffectLoopError) Error() string {
	return fmt.Sprintf("effects loop forever around area %d, last mover %q", e.Area, e.Effect)
}
