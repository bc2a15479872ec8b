package timeago

import (
	"github.com/snapcore/go-timeago/resource"
)

// SetMessages replaces the runtime messages of locale. Runtime messages
// take precedence over the locale's resource file. The locale is used as
// given, without normalization.
func (t Translator) SetMessages(locale string, messages map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	copied := make(map[string]string, len(messages))
	for key, value := range messages {
		copied[key] = value
	}
	t.overrides[locale] = copied
}

// AddResource decodes data in the given format ("map", "yaml", "json",
// "toml" or "mo") and merges its entries into the runtime messages of
// locale.
func (t Translator) AddResource(format string, data any, locale string) error {
	res, err := resource.Decode(resource.Format(format), data)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Maps handed out in catalogues are never written to.
	merged := make(map[string]string, len(t.overrides[locale])+len(res.Messages))
	for key, value := range t.overrides[locale] {
		merged[key] = value
	}
	for key, value := range res.Messages {
		merged[key] = value
	}
	t.overrides[locale] = merged
	if res.PluralForms != "" {
		t.pluralForms[locale] = res.PluralForms
	}
	return nil
}

// ResetMessages forgets the runtime messages and loaded resources of the
// given locales, or of every locale when called without arguments.
// Resources are loaded again from the directory set on next use.
func (t Translator) ResetMessages(locales ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(locales) == 0 {
		t.overrides = make(map[string]map[string]string)
		t.pluralForms = make(map[string]string)
		t.resources = make(map[string]*resource.Resource)
		return
	}
	for _, locale := range locales {
		delete(t.overrides, locale)
		delete(t.pluralForms, locale)
		delete(t.resources, locale)
	}
}

// Messages returns the messages stored for locale: its loaded resource
// merged with its runtime messages. The parent locale is not included,
// and nothing is loaded.
func (t Translator) Messages(locale string) map[string]string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.messages(locale)
}

// AllMessages returns the stored messages of every locale.
func (t Translator) AllMessages() map[string]map[string]string {
	t.mu.Lock()
	defer t.mu.Unlock()

	all := make(map[string]map[string]string)
	for locale := range t.overrides {
		all[locale] = t.messages(locale)
	}
	for locale, res := range t.resources {
		if res != nil {
			all[locale] = t.messages(locale)
		}
	}
	return all
}

func (t *translator) messages(locale string) map[string]string {
	messages := make(map[string]string)
	if res := t.resources[locale]; res != nil {
		for key, value := range res.Messages {
			messages[key] = value
		}
	}
	for key, value := range t.overrides[locale] {
		messages[key] = value
	}
	return messages
}
