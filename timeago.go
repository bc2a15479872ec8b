// Package timeago renders human readable relative times ("3 days ago",
// "dans 2 heures") from per-locale message catalogues.
//
// A Translator holds the active locale, the runtime message overrides
// and an ordered set of directories holding locale resources. Locale
// resolution is lazy: resources are loaded on first use and cached.
package timeago

import (
	"errors"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/snapcore/go-timeago/pluralforms"
	"github.com/snapcore/go-timeago/resource"
)

// Translator resolves locales to catalogues and renders relative times
// in the active locale. Use New to create an instance. Copies of a
// Translator share the same state.
type Translator struct {
	// As we don't want the mutex protecting the catalogue state to
	// be copied, we embed a pointer to an ancillary struct holding
	// our data.
	*translator
}

type translator struct {
	mu sync.Mutex

	locale string
	// runtime messages set with SetMessages and AddResource
	overrides   map[string]map[string]string
	pluralForms map[string]string
	// resources loaded from the directory set, nil marks a miss
	resources map[string]*resource.Resource

	dirs      []Directory
	aliases   map[string]string
	fallbacks []string
	probe     LocaleProbe
	logger    *slog.Logger
}

// New returns a Translator with "en" as active locale and the bundled
// catalogues as only directory.
func New(opts ...Option) Translator {
	t := &translator{
		locale:      "en",
		overrides:   make(map[string]map[string]string),
		pluralForms: make(map[string]string),
		resources:   make(map[string]*resource.Resource),
		dirs:        []Directory{Builtin()},
		aliases:     make(map[string]string),
		probe:       EnvProbe,
		logger:      discardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return Translator{t}
}

// Locale returns the active locale.
func (t Translator) Locale() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.locale
}

// SetLocale makes locale the active locale. The tag is normalized first,
// so "pt-br" activates "pt_BR". The special value "auto" picks the
// available locale closest to the one reported by the locale probe.
//
// On failure the active locale is left unchanged.
func (t Translator) SetLocale(locale string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if locale == "auto" {
		detected, err := t.detect()
		if err != nil {
			t.logger.Warn("cannot detect locale", "error", err)
			return err
		}
		locale = detected
	}
	c, err := t.resolve(locale)
	if err != nil {
		return err
	}
	t.locale = c.locale
	return nil
}

// Catalog resolves locale to its catalogue.
func (t Translator) Catalog(locale string) (Catalog, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resolve(locale)
}

// Current returns the catalogue of the active locale. When the active
// locale no longer resolves, for example after ResetMessages removed its
// runtime messages, the catalogue of its parent or of the first
// resolvable fallback locale is returned instead. Locale keeps reporting
// the locale that was set.
func (t Translator) Current() (Catalog, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, err := t.resolve(t.locale)
	if !errors.Is(err, ErrLocaleNotFound) {
		return c, err
	}
	var candidates []string
	candidates = append(candidates, FallbackChain(t.locale)[1:]...)
	candidates = append(candidates, t.fallbacks...)
	for _, locale := range candidates {
		if fallback, ferr := t.resolve(locale); ferr == nil {
			t.logger.Debug("active locale unavailable", "locale", t.locale, "using", fallback.locale)
			return fallback, nil
		}
	}
	return Catalog{}, err
}

// Preload loads the resources of the given locales if they're available.
// This is useful to limit IO to a specific time in your app, for example
// startup. Loaded locales stay usable when their directory is removed.
func (t Translator) Preload(locales ...string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, locale := range locales {
		if _, err := t.load(t.canonical(locale)); err != nil {
			return err
		}
	}
	return nil
}

// DiffForHumans renders iv in the active locale.
func (t Translator) DiffForHumans(iv Interval, opts DiffOptions) (string, error) {
	c, err := t.Current()
	if err != nil {
		return "", err
	}
	return c.DiffForHumans(iv, opts), nil
}

// LocaleHasShortUnits reports whether locale defines short unit names.
// Unknown locales report false, as do the other LocaleHas predicates.
func (t Translator) LocaleHasShortUnits(locale string) bool {
	c, err := t.Catalog(locale)
	return err == nil && c.HasShortUnits()
}

// LocaleHasDiffSyntax reports whether locale defines the ago, from_now,
// before and after wrappers.
func (t Translator) LocaleHasDiffSyntax(locale string) bool {
	c, err := t.Catalog(locale)
	return err == nil && c.HasDiffSyntax()
}

// LocaleHasDiffOneDayWords reports whether locale has words for now,
// yesterday and tomorrow.
func (t Translator) LocaleHasDiffOneDayWords(locale string) bool {
	c, err := t.Catalog(locale)
	return err == nil && c.HasDiffOneDayWords()
}

// LocaleHasDiffTwoDayWords reports whether locale has words for the day
// before yesterday and the day after tomorrow.
func (t Translator) LocaleHasDiffTwoDayWords(locale string) bool {
	c, err := t.Catalog(locale)
	return err == nil && c.HasDiffTwoDayWords()
}

// LocaleHasPeriodSyntax reports whether locale can describe recurring
// periods.
func (t Translator) LocaleHasPeriodSyntax(locale string) bool {
	c, err := t.Catalog(locale)
	return err == nil && c.HasPeriodSyntax()
}

// canonical normalizes locale and applies aliases.
func (t *translator) canonical(locale string) string {
	tag := Normalize(locale)
	if target, ok := t.aliases[tag]; ok {
		tag = Normalize(stripCodeset(target))
	}
	return tag
}

// resolve builds the catalogue of locale. It must be called with the
// lock held.
func (t *translator) resolve(locale string) (Catalog, error) {
	chain := FallbackChain(t.canonical(locale))
	tag := chain[0]

	c := Catalog{locale: tag}
	found := false
	var headers []string
	for i, candidate := range chain {
		res, err := t.load(candidate)
		if err != nil {
			return Catalog{}, err
		}
		overrides, ok := t.overrides[candidate]
		if i == 0 {
			found = ok || res != nil
			if !found {
				return Catalog{}, &LocaleError{Locale: tag}
			}
		}
		if ok {
			c.layers = append(c.layers, overrides)
		}
		if header := t.pluralForms[candidate]; header != "" {
			headers = append(headers, header)
		}
		if res != nil {
			c.layers = append(c.layers, res.Messages)
			if res.PluralForms != "" {
				headers = append(headers, res.PluralForms)
			}
		}
	}
	c.own = len(c.layers)

	for _, fallback := range t.fallbacks {
		if fallback == chain[0] || len(chain) > 1 && fallback == chain[1] {
			continue
		}
		res, err := t.load(fallback)
		if err != nil {
			t.logger.Warn("skipping fallback locale", "locale", fallback, "error", err)
		}
		if overrides, ok := t.overrides[fallback]; ok {
			c.layers = append(c.layers, overrides)
		}
		if res != nil {
			c.layers = append(c.layers, res.Messages)
		}
	}

	c.rule = pluralforms.Rule(tag)
	for _, header := range headers {
		_, expr, err := pluralforms.ParseHeader(header)
		if err != nil {
			t.logger.Warn("ignoring invalid plural forms", "locale", tag, "header", header, "error", err)
			continue
		}
		c.rule = expr
		break
	}
	return c, nil
}

// load returns the cached resource of locale, searching the directory
// set on first use. A nil resource without error means no directory
// holds the locale. It must be called with the lock held.
func (t *translator) load(locale string) (*resource.Resource, error) {
	if res, ok := t.resources[locale]; ok {
		return res, nil
	}

	for _, dir := range t.dirs {
		res, err := resource.Load(dir.FS, locale)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			t.logger.Warn("cannot load locale resource", "locale", locale, "directory", dir.Name, "error", err)
			return nil, &ResourceLoadError{Locale: locale, Path: dir.Name, Err: err}
		}
		t.logger.Debug("loaded locale resource", "locale", locale, "directory", dir.Name, "path", res.Path, "messages", len(res.Messages))
		t.resources[locale] = res
		return res, nil
	}
	t.resources[locale] = nil
	return nil, nil
}
