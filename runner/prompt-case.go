package runner

import (
	"regexp"

	expect "github.com/google/goexpect"
)

// promptCase answers the password prompt, at most retries times.
type promptCase struct {
	re      *regexp.Regexp
	pass    string
	retries int
}

func (c *promptCase) RE() (*regexp.Regexp, error) {
	return c.re, nil
}

func (c *promptCase) String() string {
	if c.pass == "" || c.retries <= 0 {
		return ""
	}
	return c.pass + "\n"
}

// Tag fails at once without a password. With one, a prompt seen again after
// the last send ends the switch as an incorrect password.
func (c *promptCase) Tag() (expect.Tag, *expect.Status) {
	if c.pass == "" {
		return expect.FailTag, statusMissingPassword
	}
	return expect.ContinueTag, statusIncorrectPassword
}

func (c *promptCase) Retry() bool {
	defer func() { c.retries-- }()
	return c.retries > 0
}
