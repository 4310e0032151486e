package game

import (
	"math"
	"strings"
)

type game struct {
	board   *Board
	players []player
	active  int
	turnNo  int
	winner  string

	// things that happened in this execution
	news []Change
}

type player struct {
	Name  string `json:"name"`
	Where int    `json:"where"`
	Skips int    `json:"skips"`
}

// New makes a game of board for the named players, who play in list
// order. The board comes from LoadWorld and is trusted as it stands.
func New(board *Board, names []string) (Game, error) {
	g := &game{board: board, active: -1}

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, ErrNoName
		}
		for _, p := range g.players {
			if p.Name == name {
				return nil, ErrPlayerExists
			}
		}
		g.players = append(g.players, player{Name: name})
	}
	if len(g.players) == 0 {
		return nil, ErrNoPlayers
	}

	return g, nil
}

// Start begins the first turn.
func (g *game) Start() (TurnState, error) {
	if g.turnNo > 0 {
		return TurnState{}, ErrAlreadyStarted
	}

	g.turnNo = 1
	g.active = 0

	return g.GetTurnState(), nil
}

// Play is the active player declaring a dice roll. The declared value
// is taken at its word, but must be one the dice could show.
func (g *game) Play(player string, dice int) (PlayResult, error) {
	if g.winner != "" {
		return PlayResult{}, ErrGameOver
	}
	if g.turnNo == 0 {
		return PlayResult{}, ErrNotStarted
	}

	p := &g.players[g.active]
	if p.Name != player {
		return PlayResult{}, ErrNotYourTurn
	}
	if dice < 1 || dice > g.board.DiceMax {
		return PlayResult{}, ErrDiceRange
	}

	g.addEvent(Change{Who: p.Name, What: ChangeRolled, Where: p.Where, Value: dice})
	g.push(p, dice)

	if err := g.resolveAreas(p); err != nil {
		g.news = nil
		return PlayResult{}, err
	}

	g.endTurn(p)

	news := g.news
	g.news = nil

	return PlayResult{News: news, Next: g.GetTurnState()}, nil
}

// resolveAreas runs the effects of the area the player stands on,
// following the player while effects carry them to further areas. A
// bad board can chase the player in circles, so entries are counted
// and the chain is cut once it exceeds the number of areas.
func (g *game) resolveAreas(p *player) error {
	var last Effect = NoEffect{}

	for entries := 0; ; entries++ {
		idx := p.Where
		if entries == len(g.board.Areas) {
			return &EffectLoopError{Area: idx, Effect: last}
		}

		g.addEvent(Change{Who: p.Name, What: ChangeEntered, Where: idx})

		for _, e := range g.board.Areas[idx].Effects {
			g.addEvent(Change{Who: p.Name, What: ChangeEffect, Where: idx, Effect: e})
			out := g.applyEffect(e, p)
			if out.Moved {
				last = e
			}
		}

		if p.Where == idx {
			return nil
		}
	}
}

// applyEffect runs one effect against the player standing on it,
// reporting how that player moved. Moves of other players go into the
// news but not into the outcome.
func (g *game) applyEffect(e Effect, p *player) MovementOutcome {
	moved := false

	switch e := e.(type) {
	case NoEffect:
	case GoToStart:
		moved = g.place(p, 0)
	case SkipSelf:
		p.Skips = satAdd(p.Skips, e.Times)
	case PushSelf:
		moved = g.push(p, e.Num)
	case PullSelf:
		moved = g.pull(p, e.Num)
	case PushOthersAll:
		for i := range g.players {
			if o := &g.players[i]; o != p {
				g.push(o, e.Num)
			}
		}
	case PullOthersAll:
		for i := range g.players {
			if o := &g.players[i]; o != p {
				g.pull(o, e.Num)
			}
		}
	}

	return MovementOutcome{Moved: moved, Where: p.Where}
}

// push moves a player forward, stopping at the goal.
func (g *game) push(p *player, by int) bool {
	to := satAdd(p.Where, by)
	if goal := g.board.Goal(); to > goal {
		to = goal
	}
	return g.place(p, to)
}

// pull moves a player back, stopping at the start.
func (g *game) pull(p *player, by int) bool {
	to := p.Where - by
	if to < 0 {
		to = 0
	}
	return g.place(p, to)
}

// satAdd adds two non-negative counts without wrapping. World files
// can ask for moves and sit-outs far past the top of the int range.
func satAdd(a, b int) int {
	if s := a + b; s >= a {
		return s
	}
	return math.MaxInt
}

// place puts a player on an exact area, reporting whether that is a
// change.
func (g *game) place(p *player, to int) bool {
	if to == p.Where {
		return false
	}
	p.Where = to
	g.addEvent(Change{Who: p.Name, What: ChangeMoved, Where: to})
	return true
}

// endTurn checks whether the turn's player has finished, then passes
// play along.
func (g *game) endTurn(p *player) {
	if p.Where == g.board.Goal() {
		g.winner = p.Name
		g.addEvent(Change{Who: p.Name, What: ChangeWon, Where: p.Where})
		return
	}
	g.toNextPlayer()
}

// toNextPlayer moves play round the table. A player owing sit-outs
// pays one and is passed over.
func (g *game) toNextPlayer() {
	np := g.active

	for {
		g.turnNo++

		np = (np + 1) % len(g.players)
		p1 := &g.players[np]
		if p1.Skips > 0 {
			p1.Skips--
			g.addEvent(Change{Who: p1.Name, What: ChangeSkipped, Where: p1.Where, Value: p1.Skips})
			continue
		}

		g.active = np
		return
	}
}

func (g *game) addEvent(c Change) {
	g.news = append(g.news, c)
}

func (g *game) GetTurnState() TurnState {
	if g.turnNo == 0 {
		return TurnState{
			Number: -1,
		}
	}

	if g.winner != "" {
		return TurnState{
			Number: g.turnNo,
			Over:   true,
			Winner: g.winner,
		}
	}

	return TurnState{
		Number:  g.turnNo,
		Player:  g.players[g.active].Name,
		DiceMax: g.board.DiceMax,
	}
}

func (g *game) GetGameState() GameState {
	out := GameState{State: StatePlaying}
	switch {
	case g.turnNo == 0:
		out.State = StatePending
	case g.winner != "":
		out.State = StateFinished
		out.Winner = g.winner
	default:
		out.Playing = g.players[g.active].Name
	}

	for _, p := range g.players {
		out.Players = append(out.Players, PlayerState{Name: p.Name, Where: p.Where, Skips: p.Skips})
	}

	return out
}

func (g *game) Board() *Board {
	return g.board
}
