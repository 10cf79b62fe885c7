package runner

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	expect "github.com/google/goexpect"
	"google.golang.org/grpc/codes"

	"gitlab.com/youtopia.earth/ops/snip-please/become"
)

// Statuses returned by the switch cases, matched back by identity.
var (
	statusMissingPassword   = expect.NewStatus(codes.Unauthenticated, ErrMissingPassword.Error())
	statusIncorrectPassword = expect.NewStatus(codes.PermissionDenied, ErrIncorrectPassword.Error())
)

type SwitchCaser interface {
	ExpectSwitchCase([]expect.Caser, time.Duration) (string, []string, int, error)
}

// Interact watches the output until the success marker shows up, answering
// password prompts on the way. It returns the output read so far.
func Interact(e SwitchCaser, cfg *Config) (string, error) {
	if cfg.Sentinel == "" {
		return "", errors.New("become success marker is required")
	}

	re, err := become.PromptPattern(cfg.Prompts)
	if err != nil {
		return "", fmt.Errorf("invalid password prompt: %w", err)
	}

	cases := []expect.Caser{
		&promptCase{
			re:      re,
			pass:    cfg.Pass,
			retries: cfg.GetPromptRetries(),
		},
		&expect.Case{
			R: regexp.MustCompile(regexp.QuoteMeta(cfg.Sentinel)),
			T: expect.OK(),
		},
	}
	if failRe := failPattern(cfg.Fail); failRe != nil {
		cases = append(cases, &expect.Case{
			R: failRe,
			T: expect.Fail(statusIncorrectPassword),
		})
	}

	out, _, _, err := e.ExpectSwitchCase(cases, cfg.GetTimeout())
	return out, translateError(err)
}

func failPattern(fail []string) *regexp.Regexp {
	var quoted []string
	for _, msg := range fail {
		if msg != "" {
			quoted = append(quoted, regexp.QuoteMeta(msg))
		}
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(strings.Join(quoted, "|"))
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(expect.TimeoutError); ok {
		return ErrPromptTimeout
	}
	if st, ok := err.(*expect.Status); ok {
		switch st {
		case statusMissingPassword:
			return ErrMissingPassword
		case statusIncorrectPassword:
			return ErrIncorrectPassword
		}
	}
	return fmt.Errorf("%w: %v", ErrSuccessNotFound, err)
}
