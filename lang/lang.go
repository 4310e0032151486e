// Package lang holds the display strings for every language the
// binary ships with. Catalogs are YAML files embedded at build time;
// game data files bring their own text and are not translated.
package lang

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// Locale is the catalog for one language.
type Locale struct {
	Tag      language.Tag
	messages map[string]string
}

// T renders the message for key. Unknown keys come back as the key
// itself, so a missing translation shows up readable instead of
// killing the run.
func (l *Locale) T(key string, args ...interface{}) string {
	tpl, ok := l.messages[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tpl
	}
	return fmt.Sprintf(tpl, args...)
}

// Bundle is every locale the binary carries. English is the fallback
// and must be present.
type Bundle struct {
	locales []*Locale
	matcher language.Matcher
}

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Load reads the embedded locale catalogs.
func Load() (*Bundle, error) {
	return loadFS(localesFS)
}

func loadFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs found")
	}
	sort.Strings(paths)

	b := &Bundle{}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}

		var lf localeFile
		if err := yaml.Unmarshal(data, &lf); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if lf.Locale == "" {
			return nil, fmt.Errorf("catalog %s: locale is required", path)
		}
		if len(lf.Messages) == 0 {
			return nil, fmt.Errorf("catalog %s: messages are required", path)
		}

		tag, err := language.Parse(lf.Locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: locale %q: %w", path, lf.Locale, err)
		}
		if name := strings.TrimSuffix(filepath.Base(path), ".yaml"); name != lf.Locale {
			return nil, fmt.Errorf("catalog %s: locale %q must match the file name", path, lf.Locale)
		}

		b.locales = append(b.locales, &Locale{Tag: tag, messages: lf.Messages})
	}

	// English first, it backs up everything else
	sort.SliceStable(b.locales, func(i, j int) bool {
		return b.locales[i].Tag == language.English && b.locales[j].Tag != language.English
	})
	if b.locales[0].Tag != language.English {
		return nil, fmt.Errorf("no English catalog")
	}

	var tags []language.Tag
	for _, l := range b.locales {
		tags = append(tags, l.Tag)
	}
	b.matcher = language.NewMatcher(tags)

	return b, nil
}

// Match picks the locale best fitting the preference, which may be a
// tag like "ja" or a weighted list like "ja,en;q=0.7". Anything
// unusable means English.
func (b *Bundle) Match(pref string) *Locale {
	pref = strings.TrimSpace(pref)
	if pref == "" {
		return b.locales[0]
	}
	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil {
		return b.locales[0]
	}
	_, i, _ := b.matcher.Match(tags...)
	return b.locales[i]
}

// Tags lists the loaded locales, fallback first.
func (b *Bundle) Tags() []language.Tag {
	var out []language.Tag
	for _, l := range b.locales {
		out = append(out, l.Tag)
	}
	return out
}
