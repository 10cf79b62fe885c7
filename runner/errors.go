package runner

import "errors"

var (
	ErrMissingPassword   = errors.New("become password required but not provided")
	ErrIncorrectPassword = errors.New("incorrect become password")
	ErrPromptTimeout     = errors.New("timeout waiting for privilege escalation, prompt never appeared or has an unexpected format")
	ErrSuccessNotFound   = errors.New("privilege escalation did not report success")
)
