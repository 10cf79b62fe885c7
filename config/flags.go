package config

const (
	FlagConfigDesc         = "config file (default is ./snip-please.yml or /etc/snip-please.yml)"
	FlagLogLevelDesc       = "log level panic|fatal|error|warning|info|debug|trace"
	FlagLogTypeDesc        = "log type json|text"
	FlagLogForceColorsDesc = "force log colors for text log when no tty"
	FlagCWDDesc            = "current working directory"

	FlagBecomeMethodDesc = "privilege escalation method"
	FlagIniFileDesc      = "ini file holding become options"
	FlagVarsFileDesc     = "vars file (yaml, json or toml) holding become options"
	FlagTimeoutDesc      = "privilege escalation timeout"
	FlagShellDesc        = "shell used to run the task"

	FlagBecomeUserDesc    = "user you become to execute the task"
	FlagBecomeExeDesc     = "become executable"
	FlagBecomeFlagsDesc   = "options to pass to the become executable"
	FlagPromptL10NDesc    = "localized password prompts, without colon"
	FlagAskBecomePassDesc = "ask for the privilege escalation password"
)

var (
	FlagLogForceColorsDefault = false
	FlagLogTypeDefault        = "text"
	FlagLogLevelDefault       = "info"

	FlagBecomeMethodDefault = "please"
	FlagIniFileDefault      = "snip.ini"
	FlagTimeoutDefault      = "10"
	FlagShellDefault        = "/bin/sh"
)
