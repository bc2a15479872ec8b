package timeago

import (
	"errors"
	"fmt"
)

// ErrLocaleNotFound is returned when no catalogue exists for a locale.
var ErrLocaleNotFound = errors.New("locale not found")

// LocaleError reports a locale that could not be resolved. It matches
// ErrLocaleNotFound with errors.Is.
type LocaleError struct {
	Locale string
}

func (e *LocaleError) Error() string {
	return fmt.Sprintf("locale %q not found", e.Locale)
}

func (e *LocaleError) Unwrap() error {
	return ErrLocaleNotFound
}

// ResourceLoadError reports a locale resource that exists but could not
// be read or decoded.
type ResourceLoadError struct {
	Locale string
	// Path names the directory holding the resource.
	Path string
	Err  error
}

func (e *ResourceLoadError) Error() string {
	if e.Locale == "" {
		return fmt.Sprintf("cannot use locale directory %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot load locale %q from %q: %v", e.Locale, e.Path, e.Err)
}

func (e *ResourceLoadError) Unwrap() error {
	return e.Err
}
