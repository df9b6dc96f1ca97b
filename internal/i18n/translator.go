// Package i18n holds the interface dictionaries for the supported regional
// languages and the lookup used by every localized response.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const DefaultLanguage = "en"

// Codes lists the supported language codes in selector order.
var Codes = []string{"en", "hi", "bn", "te", "mr", "ta", "gu", "kn", "ml", "pa", "or", "as", "ur"}

type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

type Language struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Direction Direction `json:"direction"`
	Keys      int       `json:"keys"`
}

type locale struct {
	Name      string            `yaml:"name"`
	Direction Direction         `yaml:"direction"`
	Messages  map[string]string `yaml:"messages"`
}

type Translator struct {
	fallback string
	locales  map[string]*locale
	codes    []string // matcher order
	matcher  language.Matcher
}

// New loads the embedded dictionaries. fallback must be one of them.
func New(fallback string) (*Translator, error) {
	return load(localeFS, "locales", fallback)
}

func load(fsys fs.FS, dir, fallback string) (*Translator, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	t := &Translator{
		fallback: fallback,
		locales:  make(map[string]*locale, len(entries)),
	}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		code := strings.TrimSuffix(entry.Name(), ".yaml")

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", code, err)
		}
		var loc locale
		if err := yaml.Unmarshal(data, &loc); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", code, err)
		}
		if loc.Direction == "" {
			loc.Direction = LTR
		}
		if loc.Messages == nil {
			loc.Messages = map[string]string{}
		}
		t.locales[code] = &loc
	}

	if _, ok := t.locales[fallback]; !ok {
		return nil, fmt.Errorf("fallback language %q has no dictionary", fallback)
	}

	// The matcher treats its first tag as the default.
	t.codes = append(t.codes, fallback)
	for _, code := range t.sortedCodes() {
		if code != fallback {
			t.codes = append(t.codes, code)
		}
	}
	tags := make([]language.Tag, 0, len(t.codes))
	for _, code := range t.codes {
		tags = append(tags, language.Make(code))
	}
	t.matcher = language.NewMatcher(tags)

	return t, nil
}

// T looks key up in lang, then in the fallback dictionary, and finally
// returns the key itself.
func (t *Translator) T(lang, key string) string {
	if loc, ok := t.locales[lang]; ok {
		if msg, ok := loc.Messages[key]; ok && msg != "" {
			return msg
		}
	}
	if msg, ok := t.locales[t.fallback].Messages[key]; ok && msg != "" {
		return msg
	}
	return key
}

// Fallback is the language used when a request names no supported one.
func (t *Translator) Fallback() string {
	return t.fallback
}

// Supported reports whether lang has its own dictionary.
func (t *Translator) Supported(lang string) bool {
	_, ok := t.locales[lang]
	return ok
}

func (t *Translator) Direction(lang string) Direction {
	if loc, ok := t.locales[lang]; ok {
		return loc.Direction
	}
	return LTR
}

// Dictionary returns lang's messages merged over the fallback dictionary, so
// the client gets the same strings T would produce.
func (t *Translator) Dictionary(lang string) map[string]string {
	base := t.locales[t.fallback].Messages
	dict := make(map[string]string, len(base))
	for k, v := range base {
		dict[k] = v
	}
	if loc, ok := t.locales[lang]; ok {
		for k, v := range loc.Messages {
			if v != "" {
				dict[k] = v
			}
		}
	}
	return dict
}

// Languages lists the supported languages in selector order.
func (t *Translator) Languages() []Language {
	langs := make([]Language, 0, len(t.locales))
	for _, code := range t.sortedCodes() {
		loc := t.locales[code]
		langs = append(langs, Language{
			Code:      code,
			Name:      loc.Name,
			Direction: loc.Direction,
			Keys:      len(loc.Messages),
		})
	}
	return langs
}

// Negotiate picks the best supported language for an Accept-Language header,
// falling back to the default language.
func (t *Translator) Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}
	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.fallback
	}
	return t.codes[index]
}

// Resolve returns explicit when it is supported, otherwise the negotiated
// language for acceptLanguage.
func (t *Translator) Resolve(explicit, acceptLanguage string) string {
	if explicit != "" && t.Supported(explicit) {
		return explicit
	}
	return t.Negotiate(acceptLanguage)
}

func (t *Translator) sortedCodes() []string {
	rank := make(map[string]int, len(Codes))
	for i, code := range Codes {
		rank[code] = i
	}
	codes := make([]string, 0, len(t.locales))
	for code := range t.locales {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		ri, iok := rank[codes[i]]
		rj, jok := rank[codes[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return codes[i] < codes[j]
		}
	})
	return codes
}
