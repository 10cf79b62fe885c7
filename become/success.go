package become

import (
	"bytes"
	"crypto/rand"
	"fmt"

	shellquote "github.com/kballard/go-shellquote"
)

const (
	SuccessPrefix = "BECOME-SUCCESS-"
	DefaultShell  = "/bin/sh"
)

const sentinelLetters = "abcdefghijklmnopqrstuvwxyz"

// SentinelWrapper runs the command through a shell after echoing a random
// marker, so a successful escalation can be told apart from a prompt timeout.
type SentinelWrapper struct {
	Shell    string
	Sentinel string
}

func NewSentinelWrapper(shell string) (*SentinelWrapper, error) {
	if shell == "" {
		shell = DefaultShell
	}
	sentinel, err := randomSentinel(32)
	if err != nil {
		return nil, err
	}
	return &SentinelWrapper{
		Shell:    shell,
		Sentinel: sentinel,
	}, nil
}

func randomSentinel(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("unable to generate become success marker: %w", err)
	}
	for i := range b {
		b[i] = sentinelLetters[int(b[i])%len(sentinelLetters)]
	}
	return SuccessPrefix + string(b), nil
}

func (w *SentinelWrapper) WrapSuccess(cmd string) string {
	return w.Shell + " -c " + shellquote.Join("echo "+w.Sentinel+"; "+cmd)
}

// CheckSuccess reports whether one of the output lines carries the marker.
func (w *SentinelWrapper) CheckSuccess(output []byte) bool {
	sentinel := []byte(w.Sentinel)
	for _, line := range bytes.Split(output, []byte("\n")) {
		if bytes.Contains(bytes.TrimRight(line, " \t\r"), sentinel) {
			return true
		}
	}
	return false
}
