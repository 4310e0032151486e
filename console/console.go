// Package console plays a game at a terminal prompt. Players only
// ever see the areas the game reveals as pieces land on them, the
// rest of the board stays hidden.
package console

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	rl "github.com/chzyer/readline"

	"github.com/undeconstructed/sugoroku/game"
)

// Run plays the game until someone wins or the user leaves. It owns
// the terminal for the duration.
func Run(g game.Game, m game.Messages) error {
	completer := rl.NewPrefixCompleter(
		rl.PcItem("board"),
		rl.PcItem("players"),
		rl.PcItem("help"),
		rl.PcItem("quit"),
	)

	l, err := rl.NewEx(&rl.Config{
		Prompt:            ">>> ",
		HistoryFile:       filepath.Join(os.TempDir(), "sugoroku.hist"),
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	out := l.Stdout()

	printOpening(out, g.Board())

	st, err := g.Start()
	if err != nil {
		return err
	}

	for !st.Over {
		l.SetPrompt(m.T("play.prompt", st.Player, st.DiceMax))

		line, err := l.Readline()
		if err == rl.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		}

		line = strings.TrimSpace(line)

		switch line {
		case "":
			continue
		case "quit":
			return nil
		case "help":
			fmt.Fprintln(out, m.T("help.text"))
			continue
		case "board":
			b := g.Board()
			fmt.Fprintln(out, m.T("board.info", b.Title, len(b.Areas), b.DiceMax))
			continue
		case "players":
			printPlayers(out, g, m)
			continue
		}

		dice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(out, m.T("play.dice_range", st.DiceMax))
			continue
		}

		res, err := g.Play(st.Player, dice)
		if err == game.ErrDiceRange {
			fmt.Fprintln(out, m.T("play.dice_range", st.DiceMax))
			continue
		} else if err != nil {
			return err
		}

		printNews(out, g.Board(), m, st.Player, res.News)
		st = res.Next
	}

	fmt.Fprintln(out, m.T("play.game_over"))
	printPlayers(out, g, m)

	return nil
}

func printOpening(w io.Writer, b *game.Board) {
	fmt.Fprintf(w, "%s\n\n", b.Title)
	if b.Opening != "" {
		fmt.Fprintf(w, "%s\n\n", b.Opening)
	}
	fmt.Fprintf(w, "%s\n\n", b.Areas[0].Description)
}

// printNews tells the players what a turn did. The acting player's
// stops print as arrivals with the full area text, other players only
// get their new position. Effect entries stay silent, the area text
// already names them.
func printNews(w io.Writer, b *game.Board, m game.Messages, actor string, news []game.Change) {
	for _, c := range news {
		switch c.What {
		case game.ChangeRolled:
			fmt.Fprintln(w, m.T("play.rolled", c.Who, c.Value))
		case game.ChangeMoved:
			if c.Who != actor {
				fmt.Fprintln(w, m.T("play.moved", c.Who, c.Where))
			}
		case game.ChangeEntered:
			fmt.Fprintln(w, m.T("play.arrived", c.Who, c.Where))
			fmt.Fprintln(w, indent(b.Areas[c.Where].Describe(m)))
		case game.ChangeSkipped:
			fmt.Fprintln(w, m.T("play.skipped", c.Who, c.Value))
		case game.ChangeWon:
			fmt.Fprintln(w, m.T("play.won", c.Who))
		}
	}
}

func printPlayers(w io.Writer, g game.Game, m game.Messages) {
	gs := g.GetGameState()
	goal := g.Board().Goal()

	fmt.Fprintf(w, "   %-10s %5s %5s\n", m.T("status.name"), m.T("status.area"), m.T("status.skips"))
	for _, p := range gs.Players {
		mark := "  "
		if p.Name == gs.Playing {
			mark = "🎲"
		}
		if p.Where == goal {
			mark = "🏁"
		}
		fmt.Fprintf(w, "%s %-10s %5d %5d\n", mark, p.Name, p.Where, p.Skips)
	}
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "  " + l
		}
	}
	return strings.Join(lines, "\n")
}
