package resource

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var decoders = map[Format]func(data []byte, v any) error{
	FormatYAML: yaml.Unmarshal,
	FormatYML:  yaml.Unmarshal,
	FormatJSON: json.Unmarshal,
	FormatTOML: toml.Unmarshal,
}

// flatten stores every leaf of value into out. Nested maps produce dotted
// keys and lists are joined with "|" so they read as phrase templates.
func flatten(prefix string, value any, out map[string]string) {
	switch v := value.(type) {
	case map[string]any:
		for key, sub := range v {
			flatten(joinKey(prefix, key), sub, out)
		}
	case map[any]any:
		for key, sub := range v {
			flatten(joinKey(prefix, fmt.Sprint(key)), sub, out)
		}
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, strings.ReplaceAll(scalar(item), "|", "||"))
		}
		out[prefix] = strings.Join(items, "|")
	default:
		out[prefix] = scalar(v)
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func scalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
