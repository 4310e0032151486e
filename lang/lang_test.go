package lang

import (
	"testing"

	"golang.org/x/text/language"
)

func TestLoad(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("got error: %v", err)
	}

	tags := b.Tags()
	if len(tags) < 2 {
		t.Fatalf("bad tag count: %d", len(tags))
	}
	if tags[0] != language.English {
		t.Errorf("bad fallback: %v", tags[0])
	}
}

func TestMatch(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("got error: %v", err)
	}

	if l := b.Match(""); l.Tag != language.English {
		t.Errorf("bad match: %v", l.Tag)
	}
	if l := b.Match("ja"); l.Tag != language.Japanese {
		t.Errorf("bad match: %v", l.Tag)
	}
	if l := b.Match("ja-JP"); l.Tag != language.Japanese {
		t.Errorf("bad match: %v", l.Tag)
	}
	if l := b.Match("fr"); l.Tag != language.English {
		t.Errorf("bad match: %v", l.Tag)
	}
	if l := b.Match("not a tag !!"); l.Tag != language.English {
		t.Errorf("bad match: %v", l.Tag)
	}
	if l := b.Match("fr,ja;q=0.8"); l.Tag != language.Japanese {
		t.Errorf("bad match: %v", l.Tag)
	}
}

func TestLocale_T(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("got error: %v", err)
	}

	en := b.Match("en")
	if got := en.T("effect.none"); got != "Nothing happens." {
		t.Errorf("bad text: %q", got)
	}
	if got := en.T("effect.push_self", 3); got != "Move forward 3." {
		t.Errorf("bad text: %q", got)
	}

	ja := b.Match("ja")
	if got := ja.T("effect.none"); got != "なし" {
		t.Errorf("bad text: %q", got)
	}
	if got := ja.T("effect.skip_self", 2); got != "プレイヤーの休みを2回追加。" {
		t.Errorf("bad text: %q", got)
	}

	if got := en.T("no.such.key"); got != "no.such.key" {
		t.Errorf("bad text: %q", got)
	}
}

func TestLoad_sameKeys(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("got error: %v", err)
	}

	en := b.Match("en")
	for _, l := range b.locales[1:] {
		for key := range en.messages {
			if _, ok := l.messages[key]; !ok {
				t.Errorf("%v misses key %s", l.Tag, key)
			}
		}
		for key := range l.messages {
			if _, ok := en.messages[key]; !ok {
				t.Errorf("%v has extra key %s", l.Tag, key)
			}
		}
	}
}
