package pluralforms

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	intervalPattern = regexp.MustCompile(`(?s)^(\{\s*-?\d+(?:\.\d+)?(?:\s*,\s*-?\d+(?:\.\d+)?)*\s*\}|[\[\]]\s*(?:-Inf|\*|-?\d+(?:\.\d+)?)\s*,\s*(?:\+?Inf|\*|-?\d+(?:\.\d+)?)\s*[\[\]])\s*(.*)$`)
	labelPattern    = regexp.MustCompile(`(?s)^\w+:\s*(.*)$`)
)

type explicitRule struct {
	interval string
	message  string
}

// Split breaks a phrase template into its alternatives. A doubled "||"
// stands for a literal pipe inside an alternative.
func Split(template string) []string {
	var parts []string
	var b strings.Builder
	for i := 0; i < len(template); i++ {
		if template[i] != '|' {
			b.WriteByte(template[i])
			continue
		}
		if i+1 < len(template) && template[i+1] == '|' {
			b.WriteByte('|')
			i++
			continue
		}
		parts = append(parts, b.String())
		b.Reset()
	}
	return append(parts, b.String())
}

// Choose selects the alternative of template to use for count n.
//
// Alternatives may carry an explicit interval ("{0} none", "[2,Inf[ many")
// which is tested first, or an optional word label ("one: a day") which
// is dropped. Remaining alternatives are indexed by rule; when the rule
// returns an index past the last alternative, the last one is used.
func Choose(template string, n int, rule Expression) string {
	if rule == nil {
		rule = defaultRule
	}
	var explicit []explicitRule
	var standard []string
	for _, part := range Split(template) {
		part = strings.TrimSpace(part)
		if m := intervalPattern.FindStringSubmatch(part); m != nil {
			explicit = append(explicit, explicitRule{interval: m[1], message: m[2]})
			continue
		}
		if m := labelPattern.FindStringSubmatch(part); m != nil {
			standard = append(standard, m[1])
			continue
		}
		standard = append(standard, part)
	}

	for _, r := range explicit {
		if InInterval(float64(n), r.interval) {
			return r.message
		}
	}

	if len(standard) == 0 {
		if len(explicit) > 0 {
			return explicit[len(explicit)-1].message
		}
		return ""
	}
	if n < 0 {
		n = -n
	}
	idx := rule.Eval(n)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(standard) {
		idx = len(standard) - 1
	}
	return standard[idx]
}

// InInterval reports whether number belongs to an interval written
// either as a set "{1,2,3}" or as a range "[1,Inf[" where square brackets
// facing the value are inclusive.
func InInterval(number float64, interval string) bool {
	interval = strings.TrimSpace(interval)
	if len(interval) < 2 {
		return false
	}
	if interval[0] == '{' {
		for _, field := range strings.Split(interval[1:len(interval)-1], ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err == nil && v == number {
				return true
			}
		}
		return false
	}

	left, right := interval[0], interval[len(interval)-1]
	lower, upper, ok := strings.Cut(interval[1:len(interval)-1], ",")
	if !ok {
		return false
	}
	lo := intervalBound(lower, math.Inf(-1))
	hi := intervalBound(upper, math.Inf(1))

	if left == '[' && number < lo || left == ']' && number <= lo {
		return false
	}
	if right == ']' && number > hi || right == '[' && number >= hi {
		return false
	}
	return true
}

func intervalBound(s string, unbounded float64) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "*", "Inf", "+Inf", "-Inf":
		return unbounded
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return unbounded
	}
	return v
}
