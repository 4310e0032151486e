package export

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/undeconstructed/sugoroku/game"
	"github.com/undeconstructed/sugoroku/lang"
)

func testBoard() *game.Board {
	return &game.Board{
		Title:   "Test Lands",
		Opening: "Welcome.",
		DiceMax: 6,
		Areas: []game.Area{
			{Description: "The start line."},
			{Description: "A windy pass.", Effects: []game.Effect{game.PushSelf{Num: 2}}},
			{Description: "The goal."},
		},
	}
}

func enMessages(t *testing.T) game.Messages {
	t.Helper()
	b, err := lang.Load()
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}
	return b.Match("en")
}

func TestTeX(t *testing.T) {
	var buf bytes.Buffer
	err := TeX(&buf, testBoard(), enMessages(t))
	if err != nil {
		t.Fatalf("error: %v", err)
	}

	out := buf.String()

	if !strings.HasPrefix(out, "\\documentclass[11pt,dvipdfmx]{jsarticle}\n") {
		t.Errorf("bad preamble")
	}
	for _, want := range []string{
		"\\newtcolorbox{areabox}[2][]{colbacktitle=black,coltitle=white,title={#2}}\n",
		"\\title{Test Lands}\n",
		"\\begin{areabox}{0}\n",
		"\\begin{areabox}{2}\n",
		"A windy pass.\\\\\n",
		"- Move forward 2.\\\\\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
	if !strings.HasSuffix(out, "\\end{document}\n") {
		t.Errorf("bad ending")
	}
	if strings.Contains(out, "\\begin{areabox}{3}") {
		t.Errorf("too many boxes")
	}
}

func TestPDF(t *testing.T) {
	data, err := PDF(testBoard(), enMessages(t))
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("not a pdf")
	}
	if len(data) < 500 {
		t.Errorf("suspiciously small: %d bytes", len(data))
	}
}

func TestFile(t *testing.T) {
	stem := filepath.Join(t.TempDir(), "world")

	path, err := File(testBoard(), enMessages(t), FormatTeX, stem)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if path != stem+".tex" {
		t.Errorf("bad path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "\\begin{document}") {
		t.Errorf("bad content")
	}
}

func TestAll(t *testing.T) {
	stem := filepath.Join(t.TempDir(), "world")

	paths, err := All(testBoard(), enMessages(t), Formats(), stem)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	want := []string{stem + ".tex", stem + ".pdf"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("bad paths %v", paths)
	}
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			t.Errorf("missing %s: %v", p, err)
		} else if fi.Size() == 0 {
			t.Errorf("empty %s", p)
		}
	}
}

func TestParseFormats(t *testing.T) {
	for in, want := range map[string][]Format{
		"all":     {FormatTeX, FormatPDF},
		"tex":     {FormatTeX},
		"pdf":     {FormatPDF},
		"pdf,tex": {FormatPDF, FormatTeX},
		"tex,tex": {FormatTeX},
	} {
		got, err := ParseFormats(in)
		if err != nil {
			t.Errorf("%s: error: %v", in, err)
		} else if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: got %v", in, got)
		}
	}

	for _, in := range []string{"png", "", "tex,png"} {
		if _, err := ParseFormats(in); err == nil {
			t.Errorf("%s: no error", in)
		}
	}
}
