package game

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type worldFile struct {
	General struct {
		Title            string `toml:"title"`
		OpeningMsg       string `toml:"opening_msg"`
		StartDescription string `toml:"start_description"`
		GoalDescription  string `toml:"goal_description"`
		DiceMax          int    `toml:"dice_max"`
	} `toml:"general"`
	Area []struct {
		Description string `toml:"description"`
		Effect      []struct {
			Element string `toml:"element"`
		} `toml:"effect"`
	} `toml:"area"`
}

type playersFile struct {
	Player []struct {
		Name string `toml:"name"`
	} `toml:"player"`
}

// LoadWorld reads a world file and builds the board: a start area,
// then the file's areas in order, then a goal area.
func LoadWorld(path string) (*Board, error) {
	var wf worldFile
	if _, err := toml.DecodeFile(path, &wf); err != nil {
		return nil, fmt.Errorf("world file %s: %w", path, err)
	}

	if wf.General.Title == "" {
		return nil, fmt.Errorf("world file %s: general.title is missing", path)
	}
	if wf.General.DiceMax < 1 {
		return nil, fmt.Errorf("world file %s: general.dice_max must be at least 1, got %d", path, wf.General.DiceMax)
	}

	b := &Board{
		Title:   wf.General.Title,
		Opening: wf.General.OpeningMsg,
		DiceMax: wf.General.DiceMax,
	}

	b.Areas = append(b.Areas, Area{Description: wf.General.StartDescription})

	for i, a := range wf.Area {
		area := Area{Description: a.Description}
		for _, e := range a.Effect {
			effect, err := ParseEffect(e.Element)
			if err != nil {
				return nil, fmt.Errorf("world file %s: area %d: %w", path, i+1, err)
			}
			area.Effects = append(area.Effects, effect)
		}
		b.Areas = append(b.Areas, area)
	}

	b.Areas = append(b.Areas, Area{Description: wf.General.GoalDescription})

	return b, nil
}

// LoadPlayers reads a player list file. Order in the file is play
// order.
func LoadPlayers(path string) ([]string, error) {
	var pf playersFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return nil, fmt.Errorf("player file %s: %w", path, err)
	}

	var names []string
	for i, p := range pf.Player {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("player file %s: player %d has no name", path, i+1)
		}
		for _, seen := range names {
			if seen == p.Name {
				return nil, fmt.Errorf("player file %s: player %q appears twice", path, p.Name)
			}
		}
		names = append(names, p.Name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("player file %s: no players", path)
	}

	return names, nil
}
