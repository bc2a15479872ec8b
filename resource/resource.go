// Package resource loads locale message catalogues from a directory.
//
// A directory holds one file per locale, named after the locale tag with
// an extension selecting its format: fr.yaml, fr_CA.json, de.toml or a
// compiled gettext catalogue such as pt_BR.mo. Structured formats are
// flattened into a single key -> phrase template mapping.
package resource

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
)

// Format identifies the encoding of a resource.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatYML  Format = "yml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatMO   Format = "mo"
	// FormatMap is an in-memory map[string]string or map[string]any.
	FormatMap Format = "map"
)

// Extensions lists the file formats probed by Load, in order.
var Extensions = []Format{FormatYAML, FormatYML, FormatJSON, FormatTOML, FormatMO}

// ErrUnsupportedFormat is returned for formats Decode does not know.
var ErrUnsupportedFormat = errors.New("unsupported resource format")

// Resource is a decoded locale catalogue.
type Resource struct {
	Locale string
	Format Format
	// Path of the file within its directory, empty for in-memory data.
	Path     string
	Messages map[string]string
	// PluralForms is the gettext Plural-Forms header of .mo catalogues.
	PluralForms string
}

// Load reads the catalogue of locale from fsys. The first existing file
// among the supported extensions is used. When none exists, the returned
// error matches fs.ErrNotExist.
func Load(fsys fs.FS, locale string) (*Resource, error) {
	if locale == "" || strings.ContainsAny(locale, `/\`) {
		return nil, fs.ErrNotExist
	}
	for _, format := range Extensions {
		name := locale + "." + string(format)
		if !fs.ValidPath(name) {
			return nil, fs.ErrNotExist
		}
		f, err := fsys.Open(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		res, err := read(f, format)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("cannot decode %s: %w", name, err)
		}
		res.Locale = locale
		res.Path = name
		return res, nil
	}
	return nil, fs.ErrNotExist
}

func read(f fs.File, format Format) (*Resource, error) {
	if format == FormatMO {
		m, err := openMapping(f)
		if err != nil {
			return nil, err
		}
		defer m.Close()
		return decodeMO(m)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return Decode(format, data)
}

// Decode turns in-memory resource data into a Resource. Text formats
// accept []byte or string data; FormatMap accepts map[string]string or a
// nested map[string]any.
func Decode(format Format, data any) (*Resource, error) {
	if format == FormatMap {
		switch v := data.(type) {
		case map[string]string:
			messages := make(map[string]string, len(v))
			for key, value := range v {
				messages[key] = value
			}
			return &Resource{Format: format, Messages: messages}, nil
		case map[string]any:
			messages := make(map[string]string, len(v))
			flatten("", v, messages)
			return &Resource{Format: format, Messages: messages}, nil
		}
		return nil, fmt.Errorf("map resource must be map[string]string or map[string]any, got %T", data)
	}

	var raw []byte
	switch v := data.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil, fmt.Errorf("%s resource must be []byte or string, got %T", format, data)
	}

	if format == FormatMO {
		mo, err := parseMO(raw)
		if err != nil {
			return nil, err
		}
		return &Resource{Format: format, Messages: mo.messages(), PluralForms: mo.pluralforms}, nil
	}
	unmarshal, ok := decoders[format]
	if !ok {
		return nil, errors.Join(ErrUnsupportedFormat, fmt.Errorf("format %q", format))
	}
	tree := make(map[string]any)
	if err := unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	messages := make(map[string]string, len(tree))
	flatten("", tree, messages)
	return &Resource{Format: format, Messages: messages}, nil
}

// List returns the sorted locale tags for which fsys holds a resource.
func List(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var locales []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		idx := strings.LastIndexByte(name, '.')
		if idx <= 0 || !knownExtension(Format(name[idx+1:])) {
			continue
		}
		locale := name[:idx]
		if !seen[locale] {
			seen[locale] = true
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)
	return locales, nil
}

func knownExtension(format Format) bool {
	for _, f := range Extensions {
		if f == format {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
