package timeago

import "strings"

// Syntax selects how a difference is phrased.
type Syntax int

const (
	// RelativeToNow phrases the difference against the present: "3
	// days ago", "in 2 hours", "yesterday".
	RelativeToNow Syntax = iota
	// RelativeToOther phrases the difference against another date: "3
	// days before".
	RelativeToOther
	// Absolute renders the bare difference: "3 days".
	Absolute
)

// DiffOptions control DiffForHumans.
type DiffOptions struct {
	Syntax Syntax
	// Short uses the short unit names ("3d") where the locale has them.
	Short bool
	// Parts is the maximum number of units rendered, 1 when not set.
	Parts int
}

type unit struct {
	long, short string
	value       func(iv Interval) int
}

var units = []unit{
	{"year", "y", func(iv Interval) int { return iv.Years }},
	{"month", "m", func(iv Interval) int { return iv.Months }},
	{"week", "w", func(iv Interval) int { return iv.Days / 7 }},
	{"day", "d", func(iv Interval) int { return iv.Days % 7 }},
	{"hour", "h", func(iv Interval) int { return iv.Hours }},
	{"minute", "min", func(iv Interval) int { return iv.Minutes }},
	{"second", "s", func(iv Interval) int { return iv.Seconds }},
}

// defaultMessages are used for keys missing from every layer of a
// catalogue.
var defaultMessages = map[string]string{
	"year":     ":count year|:count years",
	"y":        ":countyr|:countyrs",
	"month":    ":count month|:count months",
	"m":        ":countmo|:countmos",
	"week":     ":count week|:count weeks",
	"w":        ":countw",
	"day":      ":count day|:count days",
	"d":        ":countd",
	"hour":     ":count hour|:count hours",
	"h":        ":counth",
	"minute":   ":count minute|:count minutes",
	"min":      ":countm",
	"second":   ":count second|:count seconds",
	"s":        ":counts",
	"ago":      ":time ago",
	"from_now": ":time from now",
	"before":   ":time before",
	"after":    ":time after",
}

type component struct {
	unit  unit
	count int
}

// DiffForHumans renders iv as a human readable difference.
//
// Up to opts.Parts non-zero units are rendered, largest first, and joined
// with a space. Unless the syntax is Absolute, the result is wrapped with
// the locale's "ago"/"from_now" phrases, or "before"/"after" when
// relative to another date. A locale inflecting units for the future
// defines "<unit>_from_now" templates ("week_from_now"); relative to now,
// the last unit then uses that form and no wrapper is added. Relative
// to now, a difference of exactly one or two days, or of nothing at all,
// uses the locale's "diff_yesterday", "diff_before_yesterday", "diff_now"
// and similar words when defined.
func (c Catalog) DiffForHumans(iv Interval, opts DiffOptions) string {
	parts := opts.Parts
	if parts <= 0 {
		parts = 1
	}

	var components []component
	for _, u := range units {
		if len(components) == parts {
			break
		}
		if n := abs(u.value(iv)); n != 0 {
			components = append(components, component{unit: u, count: n})
		}
	}

	if opts.Syntax == RelativeToNow {
		if key := dayWord(components, iv.Future); key != "" {
			if phrase, ok := c.Lookup(key); ok {
				return phrase
			}
		}
	}
	if len(components) == 0 {
		components = append(components, component{unit: units[len(units)-1]})
	}

	rendered := make([]string, 0, len(components))
	futureForm := false
	for i, comp := range components {
		key := c.unitKey(comp.unit, opts.Short)
		if opts.Syntax == RelativeToNow && iv.Future && i == len(components)-1 && key == comp.unit.long {
			// some locales inflect the unit itself instead of wrapping
			if template, ok := c.Lookup(key + "_from_now"); ok {
				rendered = append(rendered, c.render(template, comp.count, nil))
				futureForm = true
				break
			}
		}
		rendered = append(rendered, c.render(c.message(key), comp.count, nil))
	}
	time := strings.Join(rendered, " ")
	if futureForm {
		return time
	}

	var wrapper string
	switch opts.Syntax {
	case Absolute:
		return time
	case RelativeToOther:
		wrapper = "before"
		if iv.Future {
			wrapper = "after"
		}
		if _, ok := c.Lookup(wrapper); !ok {
			wrapper = "ago"
			if iv.Future {
				wrapper = "from_now"
			}
		}
	default:
		wrapper = "ago"
		if iv.Future {
			wrapper = "from_now"
		}
	}
	return c.render(c.message(wrapper), components[0].count, map[string]any{"time": time})
}

// unitKey returns the key rendering u. Short names are used when the
// locale has them, or when it has neither form of the unit.
func (c Catalog) unitKey(u unit, short bool) string {
	if !short {
		return u.long
	}
	if _, ok := c.Lookup(u.short); ok {
		return u.short
	}
	if _, ok := c.Lookup(u.long); ok {
		return u.long
	}
	return u.short
}

// message returns the template under key, or its English default.
func (c Catalog) message(key string) string {
	if template, ok := c.Lookup(key); ok {
		return template
	}
	return defaultMessages[key]
}

func dayWord(components []component, future bool) string {
	if len(components) == 0 {
		return "diff_now"
	}
	if len(components) != 1 || components[0].unit.long != "day" {
		return ""
	}
	switch {
	case components[0].count == 1 && future:
		return "diff_tomorrow"
	case components[0].count == 1:
		return "diff_yesterday"
	case components[0].count == 2 && future:
		return "diff_after_tomorrow"
	case components[0].count == 2:
		return "diff_before_yesterday"
	}
	return ""
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
