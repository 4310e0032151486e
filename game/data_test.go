package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const testWorld = `
[general]
title = "Mountain Road"
opening_msg = "A long road to the top."
start_description = "The foot of the mountain."
goal_description = "The summit."
dice_max = 6

[[area]]
description = "A quiet field."

[[area]]
description = "A strong tailwind."

[[area.effect]]
element = "PushSelf 2"

[[area.effect]]
element = "SkipSelf 1"
`

func TestLoadWorld(t *testing.T) {
	path := writeFile(t, "world.toml", testWorld)

	b, err := LoadWorld(path)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}

	if b.Title != "Mountain Road" {
		t.Errorf("bad title: %s", b.Title)
	}
	if b.Opening != "A long road to the top." {
		t.Errorf("bad opening: %s", b.Opening)
	}
	if b.DiceMax != 6 {
		t.Errorf("bad dice max: %d", b.DiceMax)
	}

	// start + 2 areas + goal
	if len(b.Areas) != 4 {
		t.Fatalf("bad area count: %d", len(b.Areas))
	}
	if b.Goal() != 3 {
		t.Errorf("bad goal: %d", b.Goal())
	}
	if b.Areas[0].Description != "The foot of the mountain." {
		t.Errorf("bad start: %s", b.Areas[0].Description)
	}
	if b.Areas[3].Description != "The summit." {
		t.Errorf("bad goal text: %s", b.Areas[3].Description)
	}
	if len(b.Areas[0].Effects) != 0 || len(b.Areas[3].Effects) != 0 {
		t.Errorf("start or goal has effects")
	}

	if len(b.Areas[2].Effects) != 2 {
		t.Fatalf("bad effect count: %d", len(b.Areas[2].Effects))
	}
	if p, ok := b.Areas[2].Effects[0].(PushSelf); !ok || p.Num != 2 {
		t.Errorf("bad effect: %v", b.Areas[2].Effects[0])
	}
	if s, ok := b.Areas[2].Effects[1].(SkipSelf); !ok || s.Times != 1 {
		t.Errorf("bad effect: %v", b.Areas[2].Effects[1])
	}
}

func TestLoadWorld_noFile(t *testing.T) {
	_, err := LoadWorld(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Errorf("no error")
	}
}

func TestLoadWorld_noTitle(t *testing.T) {
	path := writeFile(t, "world.toml", `
[general]
opening_msg = "hi"
dice_max = 6
`)
	_, err := LoadWorld(path)
	if err == nil || !strings.Contains(err.Error(), "title") {
		t.Errorf("bad error: %v", err)
	}
}

func TestLoadWorld_badDiceMax(t *testing.T) {
	path := writeFile(t, "world.toml", `
[general]
title = "t"
dice_max = 0
`)
	_, err := LoadWorld(path)
	if err == nil || !strings.Contains(err.Error(), "dice_max") {
		t.Errorf("bad error: %v", err)
	}
}

func TestLoadWorld_badEffect(t *testing.T) {
	path := writeFile(t, "world.toml", `
[general]
title = "t"
dice_max = 6

[[area]]
description = "x"

[[area.effect]]
element = "FlySelf 9"
`)
	_, err := LoadWorld(path)
	if err == nil || !strings.Contains(err.Error(), "area 1") {
		t.Errorf("bad error: %v", err)
	}
}

func TestLoadWorld_badToml(t *testing.T) {
	path := writeFile(t, "world.toml", "general = [[[")
	_, err := LoadWorld(path)
	if err == nil {
		t.Errorf("no error")
	}
}

func TestLoadPlayers(t *testing.T) {
	path := writeFile(t, "players.toml", `
[[player]]
name = "alice"

[[player]]
name = "bob"
`)
	names, err := LoadPlayers(path)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if len(names) != 2 || names[0] != "alice" || names[1] != "bob" {
		t.Errorf("bad names: %v", names)
	}
}

func TestLoadPlayers_duplicate(t *testing.T) {
	path := writeFile(t, "players.toml", `
[[player]]
name = "alice"

[[player]]
name = "alice"
`)
	_, err := LoadPlayers(path)
	if err == nil || !strings.Contains(err.Error(), "twice") {
		t.Errorf("bad error: %v", err)
	}
}

func TestLoadPlayers_unnamed(t *testing.T) {
	path := writeFile(t, "players.toml", `
[[player]]
name = ""
`)
	_, err := LoadPlayers(path)
	if err == nil {
		t.Errorf("no error")
	}
}

func TestLoadPlayers_blank(t *testing.T) {
	path := writeFile(t, "players.toml", `
[[player]]
name = "  "
`)
	_, err := LoadPlayers(path)
	if err == nil || !strings.Contains(err.Error(), "no name") {
		t.Errorf("bad error: %v", err)
	}
}

func TestLoadPlayers_empty(t *testing.T) {
	path := writeFile(t, "players.toml", "")
	_, err := LoadPlayers(path)
	if err == nil {
		t.Errorf("no error")
	}
}
