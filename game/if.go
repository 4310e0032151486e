package game

// TurnState says whose turn it is and what a declared roll may be.
type TurnState struct {
	Number int    `json:"number"`
	Player string `json:"player"`

	DiceMax int `json:"diceMax"`

	Over   bool   `json:"over"`
	Winner string `json:"winner,omitempty"`
}

type GameState struct {
	State   string        `json:"state"`
	Playing string        `json:"playing"`
	Winner  string        `json:"winner,omitempty"`
	Players []PlayerState `json:"players"`
}

type PlayerState struct {
	Name  string `json:"name"`
	Where int    `json:"where"`
	Skips int    `json:"skips"`
}

// values of GameState.State
const (
	StatePending  = "pending"
	StatePlaying  = "playing"
	StateFinished = "finished"
)

// Change is one entry in a turn's news ledger.
type Change struct {
	Who    string     `json:"who"`
	What   ChangeKind `json:"what"`
	Where  int        `json:"where"`
	Value  int        `json:"value,omitempty"`
	Effect Effect     `json:"effect,omitempty"`
}

// ChangeKind says which kind of change an entry is.
type ChangeKind string

const (
	// ChangeRolled is Who declaring dice Value while on Where
	ChangeRolled ChangeKind = "rolled"
	// ChangeMoved is Who now standing on Where
	ChangeMoved ChangeKind = "moved"
	// ChangeSkipped is Who sitting a turn out, Value more owed
	ChangeSkipped ChangeKind = "skipped"
	// ChangeEntered is Who stopping on Where, whose effects run next
	ChangeEntered ChangeKind = "entered"
	// ChangeEffect is Effect on area Where running against Who
	ChangeEffect ChangeKind = "effect"
	// ChangeWon is Who finishing the game
	ChangeWon ChangeKind = "won"
)

type PlayResult struct {
	News []Change  `json:"news"`
	Next TurnState `json:"next"`
}

type Game interface {
	// activities
	Start() (TurnState, error)
	Play(player string, dice int) (PlayResult, error)

	// general state
	GetGameState() GameState
	GetTurnState() TurnState

	// static data
	Board() *Board
}
