package become

import "bytes"

// CheckIncorrectPassword reports whether output contains one of the fail messages.
func CheckIncorrectPassword(output []byte, fail []string) bool {
	for _, msg := range fail {
		if msg != "" && bytes.Contains(output, []byte(msg)) {
			return true
		}
	}
	return false
}
