package timeago

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Interpolate replaces every ":name" placeholder of phrase with the
// matching value of params. Longer names are matched first, so ":counter"
// is never taken for ":count" followed by "er". Placeholders without a
// value are left as is.
func Interpolate(phrase string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(phrase, ":") {
		return phrase
	}

	names := make([]string, 0, len(params))
	for name := range params {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	oldnew := make([]string, 0, 2*len(names))
	for _, name := range names {
		oldnew = append(oldnew, ":"+name, formatValue(params[name]))
	}
	return strings.NewReplacer(oldnew...).Replace(phrase)
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
