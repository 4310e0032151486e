package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Effect is something an area does to the players on it. The set of
// implementations is closed; new kinds mean changes to the resolver
// and to every display path.
type Effect interface {
	fmt.Stringer
	isEffect()
}

// NoEffect does nothing. Areas use it to say so out loud.
type NoEffect struct{}

// GoToStart sends the player back to the start area.
type GoToStart struct{}

// SkipSelf makes the player sit out their next turns.
type SkipSelf struct {
	Times int `json:"times"`
}

// PushSelf moves the player forward, stopping at the goal.
type PushSelf struct {
	Num int `json:"num"`
}

// PullSelf moves the player back, stopping at the start.
type PullSelf struct {
	Num int `json:"num"`
}

// PushOthersAll moves every other player forward, stopping at the goal.
type PushOthersAll struct {
	Num int `json:"num"`
}

// PullOthersAll moves every other player back, stopping at the start.
type PullOthersAll struct {
	Num int `json:"num"`
}

func (NoEffect) isEffect()      {}
func (GoToStart) isEffect()     {}
func (SkipSelf) isEffect()      {}
func (PushSelf) isEffect()      {}
func (PullSelf) isEffect()      {}
func (PushOthersAll) isEffect() {}
func (PullOthersAll) isEffect() {}

// String renders the effect in the element syntax of the world files.
func (NoEffect) String() string        { return "NoEffect" }
func (GoToStart) String() string       { return "GoToStart" }
func (e SkipSelf) String() string      { return fmt.Sprintf("SkipSelf %d", e.Times) }
func (e PushSelf) String() string      { return fmt.Sprintf("PushSelf %d", e.Num) }
func (e PullSelf) String() string      { return fmt.Sprintf("PullSelf %d", e.Num) }
func (e PushOthersAll) String() string { return fmt.Sprintf("PushOthersAll %d", e.Num) }
func (e PullOthersAll) String() string { return fmt.Sprintf("PullOthersAll %d", e.Num) }

// MovementOutcome says whether an effect shifted the player it ran
// against, and where they stand after it.
type MovementOutcome struct {
	Moved bool
	Where int
}

// ParseEffect reads an effect element like "PushSelf 3" from a world
// file.
func ParseEffect(element string) (Effect, error) {
	fields := strings.Fields(element)
	if len(fields) == 0 {
		return nil, errors.New("empty effect element")
	}

	name, args := fields[0], fields[1:]

	none := func() error {
		if len(args) != 0 {
			return fmt.Errorf("%s takes no settings, got %q", name, strings.Join(args, " "))
		}
		return nil
	}
	number := func(min int) (int, error) {
		if len(args) != 1 {
			return 0, fmt.Errorf("%s takes one number, got %q", name, strings.Join(args, " "))
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("%s takes a number: %w", name, err)
		}
		if n < min {
			return 0, fmt.Errorf("%s takes at least %d, got %d", name, min, n)
		}
		return n, nil
	}

	switch name {
	case "NoEffect":
		if err := none(); err != nil {
			return nil, err
		}
		return NoEffect{}, nil
	case "GoToStart":
		if err := none(); err != nil {
			return nil, err
		}
		return GoToStart{}, nil
	case "SkipSelf":
		n, err := number(1)
		if err != nil {
			return nil, err
		}
		return SkipSelf{Times: n}, nil
	case "PushSelf":
		n, err := number(0)
		if err != nil {
			return nil, err
		}
		return PushSelf{Num: n}, nil
	case "PullSelf":
		n, err := number(0)
		if err != nil {
			return nil, err
		}
		return PullSelf{Num: n}, nil
	case "PushOthersAll":
		n, err := number(0)
		if err != nil {
			return nil, err
		}
		return PushOthersAll{Num: n}, nil
	case "PullOthersAll":
		n, err := number(0)
		if err != nil {
			return nil, err
		}
		return PullOthersAll{Num: n}, nil
	default:
		return nil, fmt.Errorf("unknown effect %q", name)
	}
}
