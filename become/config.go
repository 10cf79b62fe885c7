package become

const (
	DefaultUser = "root"
	DefaultExe  = "please"
)

// Config holds the resolved become options of one task execution.
// Pass is only forwarded to the host, the core never reads it.
type Config struct {
	User       string   `mapstructure:"become_user" json:"become_user"`
	Exe        string   `mapstructure:"become_exe" json:"become_exe"`
	Flags      string   `mapstructure:"become_flags" json:"become_flags"`
	Pass       string   `mapstructure:"become_pass" json:"-"`
	PromptL10N []string `mapstructure:"prompt_l10n" json:"prompt_l10n"`
}

func (cfg *Config) GetUser() string {
	if cfg == nil || cfg.User == "" {
		return DefaultUser
	}
	return cfg.User
}

func (cfg *Config) GetExe() string {
	if cfg == nil || cfg.Exe == "" {
		return DefaultExe
	}
	return cfg.Exe
}

func (cfg *Config) GetFlags() string {
	if cfg == nil {
		return ""
	}
	return cfg.Flags
}

func (cfg *Config) GetPromptL10N() []string {
	if cfg == nil {
		return nil
	}
	return cfg.PromptL10N
}
