package timeago

import (
	"strconv"
	"time"

	"github.com/snapcore/go-timeago/pluralforms"
)

// Catalog of messages for a resolved locale. It is an immutable snapshot
// and can be shared between goroutines.
type Catalog struct {
	locale string
	// layers are consulted in order: the locale, its parent, then the
	// fallback locales. The first own layers belong to the locale and
	// its parent.
	layers []map[string]string
	own    int
	rule   pluralforms.Expression
}

// Locale returns the normalized locale the catalogue was resolved for.
func (c Catalog) Locale() string {
	return c.locale
}

func (c Catalog) findMsg(key string, layers []map[string]string) (msgstr string, ok bool) {
	for _, messages := range layers {
		if msgstr, ok := messages[key]; ok {
			return msgstr, true
		}
	}
	return "", false
}

// Lookup returns the phrase template stored under key.
func (c Catalog) Lookup(key string) (string, bool) {
	return c.findMsg(key, c.layers)
}

// has reports whether the locale or its parent define key, ignoring the
// fallback locales.
func (c Catalog) has(key string) bool {
	_, ok := c.findMsg(key, c.layers[:c.own])
	return ok
}

func (c Catalog) hasAll(keys ...string) bool {
	for _, key := range keys {
		if !c.has(key) {
			return false
		}
	}
	return true
}

// Translate selects the alternative of the template stored under key for
// count and substitutes params into it. ":count" is bound to count unless
// params provides it. A missing key is returned as is.
func (c Catalog) Translate(key string, count int, params map[string]any) string {
	template, ok := c.Lookup(key)
	if !ok {
		// Fallback to the key
		return key
	}
	return c.render(template, count, params)
}

func (c Catalog) render(template string, count int, params map[string]any) string {
	if _, ok := params["count"]; !ok {
		withCount := make(map[string]any, len(params)+1)
		for name, value := range params {
			withCount[name] = value
		}
		withCount["count"] = count
		params = withCount
	}
	return Interpolate(pluralforms.Choose(template, count, c.rule), params)
}

// HasShortUnits reports whether at least one of the year, day and hour
// units has a short form distinct from its long form.
func (c Catalog) HasShortUnits() bool {
	for _, unit := range []struct{ short, long string }{
		{"y", "year"},
		{"d", "day"},
		{"h", "hour"},
	} {
		short, ok := c.findMsg(unit.short, c.layers[:c.own])
		if !ok {
			continue
		}
		if long, ok := c.findMsg(unit.long, c.layers[:c.own]); !ok || long != short {
			return true
		}
	}
	return false
}

// HasDiffSyntax reports whether the locale wraps differences itself.
func (c Catalog) HasDiffSyntax() bool {
	return c.hasAll("ago", "from_now", "before", "after")
}

// HasDiffOneDayWords reports whether the locale has words for now,
// yesterday and tomorrow.
func (c Catalog) HasDiffOneDayWords() bool {
	return c.hasAll("diff_now", "diff_yesterday", "diff_tomorrow")
}

// HasDiffTwoDayWords reports whether the locale has words for the day
// before yesterday and the day after tomorrow.
func (c Catalog) HasDiffTwoDayWords() bool {
	return c.hasAll("diff_before_yesterday", "diff_after_tomorrow")
}

// HasPeriodSyntax reports whether the locale can describe recurring
// periods.
func (c Catalog) HasPeriodSyntax() bool {
	return c.hasAll("period_recurrences", "period_interval", "period_start_date", "period_end_date")
}

// Weekday returns the localized name of d, or its English name when the
// locale has none.
func (c Catalog) Weekday(d time.Weekday, short bool) string {
	if name, ok := c.listItem("weekdays", short, int(d)); ok {
		return name
	}
	if short {
		return d.String()[:3]
	}
	return d.String()
}

// Month returns the localized name of m, or its English name when the
// locale has none.
func (c Catalog) Month(m time.Month, short bool) string {
	if name, ok := c.listItem("months", short, int(m)-1); ok {
		return name
	}
	if short {
		return m.String()[:3]
	}
	return m.String()
}

// FirstDayOfWeek returns the day weeks start on in the locale.
func (c Catalog) FirstDayOfWeek() time.Weekday {
	value, ok := c.Lookup("first_day_of_week")
	if !ok {
		return time.Sunday
	}
	day, err := strconv.Atoi(value)
	if err != nil || day < 0 || day > 6 {
		return time.Sunday
	}
	return time.Weekday(day)
}

// listItem returns item idx of a "|" separated list, preferring the
// "_short" list when short is set.
func (c Catalog) listItem(key string, short bool, idx int) (string, bool) {
	list, ok := "", false
	if short {
		list, ok = c.Lookup(key + "_short")
	}
	if !ok {
		list, ok = c.Lookup(key)
	}
	if !ok {
		return "", false
	}
	items := pluralforms.Split(list)
	if idx < 0 || idx >= len(items) {
		return "", false
	}
	return items[idx], true
}
