package scenario

import (
	"time"

	"golang.org/x/text/language"
)

// Locales the handset renders a 12-hour clock for. Everything else gets a
// 24-hour clock.
var twelveHourLocales = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.English,
}

var etaMatcher = language.NewMatcher(twelveHourLocales)

// NextHourETA returns the wall-clock time of the next whole hour after now,
// formatted as a short time string for the given locale. This is computed
// once, when the backend becomes available, and substituted into the
// Relocation Unit script.
func NextHourETA(now time.Time, locale string) string {
	next := time.Date(now.Year(), now.Month(), now.Day(), now.Hour()+1, 0, 0, 0, now.Location())
	return FormatClock(next, locale)
}

// FormatClock renders t as a localized short time string: 12-hour clock with
// an AM/PM marker for English locales, 24-hour clock otherwise. Unparseable
// locale strings fall back to English.
func FormatClock(t time.Time, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	if _, _, conf := etaMatcher.Match(tag); conf >= language.High {
		return t.Format("03:04 PM")
	}
	return t.Format("15:04")
}
