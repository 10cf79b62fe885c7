package config

import (
	"time"
)

// Config struct
type Config struct {
	LogLevel       string `mapstructure:"LOG_LEVEL" json:"log_level"`
	LogType        string `mapstructure:"LOG_TYPE" json:"log_type"`
	LogForceColors bool   `mapstructure:"LOG_FORCE_COLORS" json:"logs_force_colors"`
	CWD            string `mapstructure:"CWD" json:"cwd"`

	BecomeMethod string        `mapstructure:"BECOME_METHOD" json:"become_method"`
	IniFile      string        `mapstructure:"INI_FILE" json:"ini_file"`
	VarsFile     string        `mapstructure:"VARS_FILE" json:"vars_file"`
	Timeout      time.Duration `mapstructure:"TIMEOUT" json:"timeout,omitempty"`
	Shell        string        `mapstructure:"SHELL" json:"shell"`
}
