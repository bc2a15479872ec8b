package timeago

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/snapcore/go-timeago/resource"
)

var separatorSegment = regexp.MustCompile(`[-_]([a-z]{2,}|[0-9]{2,})`)

// Normalize returns the canonical form of a locale tag. The tag is lower
// cased, then every segment introduced by "-" or "_" is joined with "_":
// segments shorter than three characters are upper cased as regions, as
// are YUE and ISO, and longer segments are title cased as scripts or
// variants.
//
//	Normalize("PT-br")      == "pt_BR"
//	Normalize("sr_cyrl_me") == "sr_Cyrl_ME"
func Normalize(tag string) string {
	return separatorSegment.ReplaceAllStringFunc(strings.ToLower(tag), func(match string) string {
		segment := match[1:]
		upper := strings.ToUpper(segment)
		if len(segment) < 3 || upper == "YUE" || upper == "ISO" {
			return "_" + upper
		}
		return "_" + cases.Title(language.Und).String(segment)
	})
}

// FallbackChain returns the locales consulted for tag, most specific
// first: the tag itself, then its parent language when the tag has a
// region, script or variant.
func FallbackChain(tag string) []string {
	if idx := strings.IndexByte(tag, '_'); idx > 0 {
		return []string{tag, tag[:idx]}
	}
	return []string{tag}
}

// stripCodeset drops the ".codeset" and "@modifier" parts of a POSIX
// locale name.
func stripCodeset(locale string) string {
	if idx := strings.IndexAny(locale, ".@"); idx >= 0 {
		return locale[:idx]
	}
	return locale
}

// LocaleProbe reports the locale configured for the system, for example
// "fr_FR.UTF-8".
type LocaleProbe func() (string, error)

var osGetenv = os.Getenv

// EnvProbe reads the time locale from the LC_ALL, LC_TIME and LANG
// environment variables, in that order. The C and POSIX locales carry no
// language and are reported as an error.
func EnvProbe() (string, error) {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		value := osGetenv(name)
		if value == "" {
			continue
		}
		if lang := stripCodeset(value); lang == "C" || lang == "POSIX" {
			return "", fmt.Errorf("%s=%s does not name a language", name, value)
		}
		return value, nil
	}
	return "", errors.New("no locale set in the environment")
}

// detect picks the available locale best matching the probed system
// locale. Candidates share the probed language; each chunk equal to the
// probed one scores 10 and each probed chunk the candidate lacks scores 1.
// It must be called with the lock held.
func (t *translator) detect() (string, error) {
	probed, err := t.probe()
	if err != nil {
		return "", err
	}
	lang := probed
	if idx := strings.IndexAny(probed, "_.-@"); idx >= 0 {
		lang = probed[:idx]
	}
	lang = strings.ToLower(lang)

	reference := localeChunks(probed)
	best, bestScore := "", -1
	for _, candidate := range t.availableLocales() {
		if candidate != lang && !strings.HasPrefix(candidate, lang+"_") {
			continue
		}
		score := 0
		chunks := localeChunks(candidate)
		for i, chunk := range reference {
			if i >= len(chunks) {
				score++
				continue
			}
			if strings.EqualFold(chunks[i], chunk) {
				score += 10
			}
		}
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if best == "" {
		return "", &LocaleError{Locale: probed}
	}
	t.logger.Debug("detected locale", "probed", probed, "locale", best, "score", bestScore)
	return best, nil
}

func localeChunks(locale string) []string {
	return strings.FieldsFunc(locale, func(r rune) bool {
		return r == '_' || r == '.' || r == '-'
	})
}

// AvailableLocales returns the sorted locales known to the translator:
// locales with runtime messages, loaded locales and every locale with a
// resource in the directory set.
func (t Translator) AvailableLocales() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.availableLocales()
}

func (t *translator) availableLocales() []string {
	seen := make(map[string]bool)
	for locale := range t.overrides {
		seen[locale] = true
	}
	for locale, res := range t.resources {
		if res != nil {
			seen[locale] = true
		}
	}
	for _, dir := range t.dirs {
		locales, err := resource.List(dir.FS)
		if err != nil {
			t.logger.Warn("cannot list locale directory", "directory", dir.Name, "error", err)
			continue
		}
		for _, locale := range locales {
			seen[locale] = true
		}
	}

	locales := make([]string, 0, len(seen))
	for locale := range seen {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// MatchLocale negotiates an HTTP Accept-Language header value against the
// available locales and returns the best match.
func (t Translator) MatchLocale(acceptLanguage string) (string, error) {
	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return "", fmt.Errorf("invalid Accept-Language %q: %w", acceptLanguage, err)
	}

	var names []string
	var supported []language.Tag
	for _, locale := range t.AvailableLocales() {
		tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
		if err != nil {
			continue
		}
		names = append(names, locale)
		supported = append(supported, tag)
	}
	if len(wanted) == 0 || len(supported) == 0 {
		return "", &LocaleError{Locale: acceptLanguage}
	}

	_, index, confidence := language.NewMatcher(supported).Match(wanted...)
	if confidence == language.No {
		return "", &LocaleError{Locale: acceptLanguage}
	}
	return names[index], nil
}

// ParseLocaleAlias reads a locale.alias file mapping names such as
// "french" to POSIX locales. The result is suitable for WithAliases.
func ParseLocaleAlias(r io.Reader) (map[string]string, error) {
	aliases := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		aliases[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return aliases, nil
}
