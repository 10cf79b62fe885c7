package runner

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"gitlab.com/youtopia.earth/ops/snip-please/become"
)

const (
	DefaultTimeout       = 10 * time.Second
	DefaultPromptRetries = 1
)

type Config struct {
	Context context.Context
	Logger  *logrus.Entry

	// Command is the become command, run through Shell.
	Command string
	Shell   string
	Dir     string
	Env     []string

	RequiresPromptScan bool
	Pass               string
	Prompts            []string
	Fail               []string
	Sentinel           string

	// PromptRetries is how many times the password is sent.
	PromptRetries int
	Timeout       time.Duration
}

func (cfg *Config) GetContext() context.Context {
	if cfg.Context == nil {
		return context.Background()
	}
	return cfg.Context
}

func (cfg *Config) GetLogger() *logrus.Entry {
	if cfg.Logger == nil {
		return logrus.WithFields(logrus.Fields{})
	}
	return cfg.Logger
}

func (cfg *Config) GetShell() string {
	if cfg.Shell == "" {
		return become.DefaultShell
	}
	return cfg.Shell
}

func (cfg *Config) GetTimeout() time.Duration {
	if cfg.Timeout <= 0 {
		return DefaultTimeout
	}
	return cfg.Timeout
}

func (cfg *Config) GetPromptRetries() int {
	if cfg.PromptRetries <= 0 {
		return DefaultPromptRetries
	}
	return cfg.PromptRetries
}
