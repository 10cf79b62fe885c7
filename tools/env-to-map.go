package tools

import (
	"strings"
)

// EnvToMap turns KEY=VALUE pairs into a map, the last pair of a key wins.
func EnvToMap(data []string) map[string]string {
	items := make(map[string]string)
	for _, item := range data {
		if item == "" {
			continue
		}
		splits := strings.SplitN(item, "=", 2)
		var val string
		if len(splits) > 1 {
			val = splits[1]
		}
		items[splits[0]] = val
	}
	return items
}
