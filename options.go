package timeago

import (
	"io"
	"log/slog"
)

// Option configures a Translator created with New.
type Option func(*translator)

// WithLogger sets the logger used for resource loading and locale
// probing. A discard logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(t *translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithDirectories replaces the default directory set, which only holds
// the bundled catalogues.
func WithDirectories(dirs ...Directory) Option {
	return func(t *translator) {
		t.dirs = append([]Directory(nil), dirs...)
	}
}

// WithFallback sets the locales consulted, in order, for keys missing
// from a locale and its parent.
func WithFallback(locales ...string) Option {
	return func(t *translator) {
		t.fallbacks = t.fallbacks[:0]
		for _, locale := range locales {
			if locale != "" {
				t.fallbacks = append(t.fallbacks, Normalize(locale))
			}
		}
	}
}

// WithAliases maps locale names onto the locale to resolve instead, for
// example "french" to "fr_FR". Keys are normalized before use.
func WithAliases(aliases map[string]string) Option {
	return func(t *translator) {
		for alias, locale := range aliases {
			t.aliases[Normalize(alias)] = locale
		}
	}
}

// WithProbe sets the function used to detect the system locale when
// "auto" is requested.
func WithProbe(probe LocaleProbe) Option {
	return func(t *translator) {
		if probe != nil {
			t.probe = probe
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
