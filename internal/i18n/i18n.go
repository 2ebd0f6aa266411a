// Package i18n provides the launcher's user-facing message catalogs.
//
// Lookup follows the dotted-key convention; a key missing from the
// active language falls back to English, then to the key itself.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.German,
}

var matcher = language.NewMatcher(supported)

var catalogs = map[language.Tag]map[string]string{
	language.English: en,
	language.German:  de,
}

// Translator resolves message keys for one language.
type Translator struct {
	tag     language.Tag
	catalog map[string]string
}

// New creates a translator for the given BCP 47 tag (e.g. "de",
// "de-AT"). Unknown or malformed tags fall back to English.
func New(lang string) *Translator {
	_, index := language.MatchStrings(matcher, lang)
	base := supported[index]
	return &Translator{tag: base, catalog: catalogs[base]}
}

// Lang returns the active language tag.
func (t *Translator) Lang() string {
	return t.tag.String()
}

// T resolves a message key, formatting args into it when given.
func (t *Translator) T(key string, args ...any) string {
	msg, ok := t.catalog[key]
	if !ok {
		msg, ok = en[key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
