package networth

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/cleared-dev/networth/internal/month"
)

// Labeler renders the display label of a month, e.g. "Jan 2023".
type Labeler func(month.Month) string

var monthNames = map[language.Tag][12]string{
	language.English:    {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	language.French:     {"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	language.German:     {"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	language.Spanish:    {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	language.Italian:    {"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
	language.Portuguese: {"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
	language.Dutch:      {"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
}

// First entry is the fallback when nothing matches.
var supported = []language.Tag{
	language.English,
	language.French,
	language.German,
	language.Spanish,
	language.Italian,
	language.Portuguese,
	language.Dutch,
}

var matcher = language.NewMatcher(supported)

// NewLabeler returns a Labeler for a BCP 47 locale such as "en-US" or "fr".
// Unknown or malformed locales fall back to English.
func NewLabeler(locale string) Labeler {
	tag := language.English
	if parsed, err := language.Parse(locale); err == nil {
		_, idx, _ := matcher.Match(parsed)
		tag = supported[idx]
	}
	names := monthNames[tag]
	return func(m month.Month) string {
		return fmt.Sprintf("%s %d", names[m.Month-1], m.Year)
	}
}

// DefaultLabeler labels months in English.
var DefaultLabeler = NewLabeler("en")
