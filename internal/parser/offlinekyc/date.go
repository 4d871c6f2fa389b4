package offlinekyc

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is the Indian English long date convention ("15 August 1995").
var DefaultLocale = language.MustParse("en-IN")

var hindiMonths = [12]string{
	"जनवरी", "फ़रवरी", "मार्च", "अप्रैल", "मई", "जून",
	"जुलाई", "अगस्त", "सितंबर", "अक्तूबर", "नवंबर", "दिसंबर",
}

type dateLocale struct {
	tag    language.Tag
	render func(time.Time) string
}

// dateLocales is read-only after package init. The first entry is the
// fallback for unmatched tags.
var dateLocales = []dateLocale{
	{tag: DefaultLocale, render: layout("2 January 2006")},
	{tag: language.BritishEnglish, render: layout("2 January 2006")},
	{tag: language.AmericanEnglish, render: layout("January 2, 2006")},
	{tag: language.MustParse("hi-IN"), render: func(t time.Time) string {
		return strconv.Itoa(t.Day()) + " " + hindiMonths[t.Month()-1] + " " + strconv.Itoa(t.Year())
	}},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLocales))
	for i, l := range dateLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

func layout(l string) func(time.Time) string {
	return func(t time.Time) string { return t.Format(l) }
}

// FormatDate renders a raw DD-MM-YYYY value in DefaultLocale.
func FormatDate(raw *string) string {
	return FormatDateIn(DefaultLocale, raw)
}

// FormatDateIn renders a raw DD-MM-YYYY value as a long-form date in the
// closest supported locale. A nil value yields NotAvailable. Any value that
// is not exactly three dash separated numbers forming a real calendar date
// is returned unchanged.
func FormatDateIn(locale language.Tag, raw *string) string {
	if raw == nil || *raw == "" {
		return NotAvailable
	}

	t, ok := parseDayMonthYear(*raw)
	if !ok {
		return *raw
	}
	return localeFor(locale).render(t)
}

// SupportedDateLocales lists the tags FormatDateIn renders natively.
func SupportedDateLocales() []language.Tag {
	tags := make([]language.Tag, len(dateLocales))
	for i, l := range dateLocales {
		tags[i] = l.tag
	}
	return tags
}

func localeFor(tag language.Tag) dateLocale {
	_, idx, conf := dateMatcher.Match(tag)
	if conf == language.No {
		return dateLocales[0]
	}
	return dateLocales[idx]
}

func parseDayMonthYear(raw string) (time.Time, bool) {
	parts := strings.Split(raw, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	// Two-digit years are ambiguous; leave them to the raw fallback.
	if len(parts[2]) != 4 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 1 {
		return time.Time{}, false
	}

	// time.Date normalizes overflow (31-02 becomes 03-03); reject those.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}
