// Package export renders a whole board into printable files, for the
// person preparing a game rather than the people playing it.
package export

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/undeconstructed/sugoroku/game"
)

// Format names one output file type.
type Format string

const (
	FormatTeX Format = "tex"
	FormatPDF Format = "pdf"
)

// Formats lists every supported format, in the order All writes them.
func Formats() []Format {
	return []Format{FormatTeX, FormatPDF}
}

// ParseFormats reads a format list like "tex", "tex,pdf" or "all".
func ParseFormats(s string) ([]Format, error) {
	if s == "all" {
		return Formats(), nil
	}

	var out []Format
	seen := map[Format]bool{}
	for _, part := range strings.Split(s, ",") {
		f := Format(strings.TrimSpace(part))
		switch f {
		case FormatTeX, FormatPDF:
		default:
			return nil, fmt.Errorf("unknown format %q", part)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no formats in %q", s)
	}
	return out, nil
}

// File writes one rendering of the board to stem plus the format's
// extension, and returns the path it wrote.
func File(b *game.Board, m game.Messages, f Format, stem string) (string, error) {
	path := stem + "." + string(f)

	switch f {
	case FormatTeX:
		fl, err := os.Create(path)
		if err != nil {
			return "", err
		}
		err = TeX(fl, b, m)
		if cerr := fl.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
		return path, nil
	case FormatPDF:
		data, err := PDF(b, m)
		if err != nil {
			return "", fmt.Errorf("rendering %s: %w", path, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return "", err
		}
		return path, nil
	}

	return "", fmt.Errorf("unknown format %q", f)
}

// All writes every requested format, concurrently, and returns the
// paths written in the same order as the formats.
func All(b *game.Board, m game.Messages, formats []Format, stem string) ([]string, error) {
	var eg errgroup.Group

	out := make([]string, len(formats))
	for i, f := range formats {
		i, f := i, f
		eg.Go(func() error {
			path, err := File(b, m, f, stem)
			if err != nil {
				return err
			}
			out[i] = path
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
