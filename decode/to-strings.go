package decode

import (
	"fmt"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// ToStrings converts the given interface{} to a []string, or returns an error.
// Strings holding a JSON5 array of strings are decoded, other strings are
// split on commas, so "[please] password" stays a plain item.
func ToStrings(raw interface{}) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	switch t := raw.(type) {
	case string:
		return stringToStrings(t)
	case []string:
		return t, nil
	case []interface{}:
		return interfaceToStringArray(t), nil
	default:
		return nil, fmt.Errorf("unexpected argument type: %T", t)
	}
}

func stringToStrings(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}, nil
	}
	if isJSONList(trimmed) {
		var list []interface{}
		if err := json5.Unmarshal([]byte(trimmed), &list); err != nil {
			return nil, fmt.Errorf("unable to decode list %q: %w", raw, err)
		}
		return interfaceToStringArray(list), nil
	}
	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list, nil
}

func isJSONList(s string) bool {
	if !strings.HasPrefix(s, "[") {
		return false
	}
	rest := strings.TrimSpace(s[1:])
	return rest == "" || rest[0] == '"' || rest[0] == '\'' || rest[0] == ']'
}

func interfaceToString(raw interface{}) string {
	switch t := raw.(type) {
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func interfaceToStringArray(rawArray []interface{}) []string {
	if len(rawArray) == 0 {
		return []string{}
	}
	stringArray := make([]string, 0, len(rawArray))
	for _, raw := range rawArray {
		stringArray = append(stringArray, interfaceToString(raw))
	}
	return stringArray
}
