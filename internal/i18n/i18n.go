// Package i18n resolves the UI language and translates interface strings.
package i18n

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/message/catalog"
)

// Language is an entry in the language selector.
type Language struct {
	Code string
	Name string
}

// Bundle holds the message catalog for every supported language.
type Bundle struct {
	catalog   *catalog.Builder
	matcher   language.Matcher
	tags      []language.Tag
	languages []Language
	fallback  language.Tag
}

// NewBundle builds the catalog. defaultLang must be one of the supported codes.
func NewBundle(defaultLang string) (*Bundle, error) {
	fallback, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("parse default language %q: %w", defaultLang, err)
	}

	b := &Bundle{catalog: catalog.NewBuilder()}

	codes := make([]string, 0, len(messages))
	for code := range messages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	// The fallback goes first so the matcher prefers it on no match.
	b.tags = append(b.tags, fallback)
	for _, code := range codes {
		tag := language.MustParse(code)
		if tag != fallback {
			b.tags = append(b.tags, tag)
		}
		b.languages = append(b.languages, Language{Code: code, Name: languageNames[code]})
		for key, msg := range messages[code] {
			if err := b.catalog.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("catalog %s/%s: %w", code, key, err)
			}
		}
		for key, forms := range plurals[code] {
			msg := plural.Selectf(1, "%d", plural.One, forms[0], plural.Other, forms[1])
			if err := b.catalog.Set(tag, key, msg); err != nil {
				return nil, fmt.Errorf("catalog %s/%s: %w", code, key, err)
			}
		}
	}
	if _, ok := messages[fallback.String()]; !ok {
		return nil, fmt.Errorf("default language %q has no translations", defaultLang)
	}

	b.fallback = fallback
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Languages lists the selectable languages.
func (b *Bundle) Languages() []Language {
	return b.languages
}

// Supported reports whether code is a selectable language.
func (b *Bundle) Supported(code string) bool {
	_, ok := messages[code]
	return ok
}

// Resolve picks a language from an explicit choice (cookie) and the
// Accept-Language header, in that order of preference.
func (b *Bundle) Resolve(choice, acceptLanguage string) *Translator {
	tag, _ := language.MatchStrings(b.matcher, choice, acceptLanguage)
	base, _ := tag.Base()
	code := base.String()
	if !b.Supported(code) {
		code = b.fallback.String()
	}
	t := language.MustParse(code)
	return &Translator{
		lang:    code,
		printer: message.NewPrinter(t, message.Catalog(b.catalog)),
	}
}

// Translator renders messages in one language.
type Translator struct {
	lang    string
	printer *message.Printer
}

// Lang returns the language code, e.g. "es".
func (t *Translator) Lang() string {
	return t.lang
}

// T translates key, formatting args into the message. Unknown keys are
// returned as-is.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}
