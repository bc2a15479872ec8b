// Package status reports how complete locale catalogues are compared to
// a base locale, and exports them for translators.
package status

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Report describes every locale against the base locale.
type Report struct {
	BaseLocale string         `json:"base_locale"`
	Locales    []LocaleStatus `json:"locales"`
	// Undefined lists keys used by source code that the base locale
	// lacks.
	Undefined []string `json:"undefined,omitempty"`
}

type LocaleStatus struct {
	Locale      string   `json:"locale"`
	BaseKeys    int      `json:"base_keys"`
	Translated  int      `json:"translated"`
	Missing     int      `json:"missing"`
	Extra       int      `json:"extra"`
	Completion  float64  `json:"completion"`
	MissingKeys []string `json:"missing_keys"`
	ExtraKeys   []string `json:"extra_keys"`
}

// Build compares every catalogue with the one of baseLocale. Keys listed
// in used but absent from the base catalogue are reported as undefined.
func Build(baseLocale string, catalogs map[string]map[string]string, used []string) (Report, error) {
	base, ok := catalogs[baseLocale]
	if !ok {
		return Report{}, fmt.Errorf("base locale %q is missing from catalogues", baseLocale)
	}

	statuses := make([]LocaleStatus, 0, len(catalogs))
	for locale, messages := range catalogs {
		missing := missingKeys(base, messages)
		extra := missingKeys(messages, base)
		translated := len(base) - len(missing)
		statuses = append(statuses, LocaleStatus{
			Locale:      locale,
			BaseKeys:    len(base),
			Translated:  translated,
			Missing:     len(missing),
			Extra:       len(extra),
			Completion:  percent(translated, len(base)),
			MissingKeys: missing,
			ExtraKeys:   extra,
		})
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Locale < statuses[j].Locale
	})

	rep := Report{BaseLocale: baseLocale, Locales: statuses}
	for _, key := range used {
		if _, ok := base[key]; !ok {
			rep.Undefined = append(rep.Undefined, key)
		}
	}
	sort.Strings(rep.Undefined)
	return rep, nil
}

// WriteJSON writes rep as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteMarkdown writes rep as a markdown document.
func WriteMarkdown(w io.Writer, rep Report) error {
	var b strings.Builder
	b.WriteString("# Locale Status\n\n")
	b.WriteString("Base locale: `")
	b.WriteString(rep.BaseLocale)
	b.WriteString("`.\n\n")

	b.WriteString("| Locale | Base Keys | Translated | Missing | Extra | Completion |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
	for _, locale := range rep.Locales {
		fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %.1f%% |\n", locale.Locale, locale.BaseKeys, locale.Translated, locale.Missing, locale.Extra, locale.Completion)
	}

	if len(rep.Undefined) > 0 {
		b.WriteString("\n## Undefined Keys\n\n")
		writeKeys(&b, rep.Undefined)
	}
	for _, locale := range rep.Locales {
		if len(locale.MissingKeys) == 0 && len(locale.ExtraKeys) == 0 {
			continue
		}
		b.WriteString("\n## Locale: `")
		b.WriteString(locale.Locale)
		b.WriteString("`\n")
		if len(locale.MissingKeys) > 0 {
			b.WriteString("\n### Missing Keys\n\n")
			writeKeys(&b, locale.MissingKeys)
		}
		if len(locale.ExtraKeys) > 0 {
			b.WriteString("\n### Extra Keys\n\n")
			writeKeys(&b, locale.ExtraKeys)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeKeys(b *strings.Builder, keys []string) {
	for _, key := range keys {
		b.WriteString("- `")
		b.WriteString(key)
		b.WriteString("`\n")
	}
}

// missingKeys returns the sorted keys of base absent from target.
func missingKeys(base map[string]string, target map[string]string) []string {
	out := make([]string, 0)
	for key := range base {
		if _, ok := target[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func percent(numerator int, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
