package game

import "strings"

// Messages turns catalog keys into display strings. The lang package
// implements it; the keys live in its locale files.
type Messages interface {
	T(key string, args ...interface{}) string
}

// Area is one space on the board.
type Area struct {
	Description string `json:"description"`
	Effects     []Effect
}

// Board is the static world a game runs on. It does not change after
// loading.
type Board struct {
	Title   string `json:"title"`
	Opening string `json:"opening"`
	DiceMax int    `json:"diceMax"`
	Areas   []Area `json:"areas"`
}

// Goal is the index of the final area.
func (b *Board) Goal() int {
	return len(b.Areas) - 1
}

// EffectText renders one effect for people to read.
func EffectText(e Effect, m Messages) string {
	switch e := e.(type) {
	case NoEffect:
		return m.T("effect.none")
	case GoToStart:
		return m.T("effect.go_to_start")
	case SkipSelf:
		return m.T("effect.skip_self", e.Times)
	case PushSelf:
		return m.T("effect.push_self", e.Num)
	case PullSelf:
		return m.T("effect.pull_self", e.Num)
	case PushOthersAll:
		return m.T("effect.push_others_all", e.Num)
	case PullOthersAll:
		return m.T("effect.pull_others_all", e.Num)
	}
	return e.String()
}

// Describe renders the area text, the description first and then a
// heading with one line per effect. Areas with nothing to do say so.
func (a Area) Describe(m Messages) string {
	var sb strings.Builder
	sb.WriteString(a.Description)
	sb.WriteString("\n\n")
	sb.WriteString(m.T("area.effects"))
	if len(a.Effects) == 0 {
		sb.WriteString("\n- ")
		sb.WriteString(m.T("effect.none"))
		return sb.String()
	}
	for _, e := range a.Effects {
		sb.WriteString("\n- ")
		sb.WriteString(EffectText(e, m))
	}
	return sb.String()
}
