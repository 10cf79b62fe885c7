package please

import (
	"github.com/sirupsen/logrus"

	"gitlab.com/youtopia.earth/ops/snip-please/become"
	"gitlab.com/youtopia.earth/ops/snip-please/options"
	becomeplugin "gitlab.com/youtopia.earth/ops/snip-please/plugin/become"
)

const Name = "please"

// Fail is printed by please when the password is rejected.
var Fail = []string{
	"Authentication failed :-(",
}

var Options = []*options.Definition{
	{
		Name:        "become_user",
		Description: "User you 'become' to execute the task",
		Type:        options.TypeString,
		Default:     become.DefaultUser,
		Keywords:    []string{"become_user"},
		Vars:        []string{"become_user", "please_user"},
		Env:         []string{"SNIP_BECOME_USER", "SNIP_PLEASE_USER"},
		Ini: []options.IniKey{
			{Section: "privilege_escalation", Key: "become_user"},
			{Section: "please_become_plugin", Key: "user"},
		},
	},
	{
		Name:        "become_exe",
		Description: "please executable",
		Type:        options.TypeString,
		Default:     become.DefaultExe,
		Keywords:    []string{"become_exe"},
		Vars:        []string{"become_exe", "please_exe"},
		Env:         []string{"SNIP_BECOME_EXE", "SNIP_PLEASE_EXE"},
		Ini: []options.IniKey{
			{Section: "privilege_escalation", Key: "become_exe"},
			{Section: "please_become_plugin", Key: "executable"},
		},
	},
	{
		Name:        "become_flags",
		Description: "Options to pass to please",
		Type:        options.TypeString,
		Default:     "",
		Keywords:    []string{"become_flags"},
		Vars:        []string{"become_flags", "please_flags"},
		Env:         []string{"SNIP_BECOME_FLAGS", "SNIP_PLEASE_FLAGS"},
		Ini: []options.IniKey{
			{Section: "privilege_escalation", Key: "become_flags"},
			{Section: "please_become_plugin", Key: "flags"},
		},
	},
	{
		Name:        "become_pass",
		Description: "Password to pass to please",
		Type:        options.TypeString,
		Secret:      true,
		Keywords:    []string{"become_pass"},
		Vars:        []string{"become_password", "become_pass", "please_pass"},
		Env:         []string{"SNIP_BECOME_PASS", "SNIP_PLEASE_PASS"},
		Ini: []options.IniKey{
			{Section: "please_become_plugin", Key: "password"},
		},
	},
	{
		Name:        "prompt_l10n",
		Description: "List of localized strings to match for prompt detection, do not add a colon",
		Type:        options.TypeList,
		Default:     []string{},
		Keywords:    []string{"prompt_l10n"},
		Vars:        []string{"please_prompt_l10n"},
		Env:         []string{"SNIP_PLEASE_PROMPT_L10N"},
		Ini: []options.IniKey{
			{Section: "please_become_plugin", Key: "localized_prompts"},
		},
	},
}

var (
	Become = becomeplugin.Plugin{
		Name:    Name,
		Options: Options,
		Fail:    Fail,
		Build: func(cfg *becomeplugin.Config) (*become.Result, error) {
			res := become.BuildCommand(cfg.Command, cfg.Wrapper, cfg.Become)

			cfg.GetLogger().WithFields(logrus.Fields{
				"user":  cfg.Become.GetUser(),
				"exe":   cfg.Become.GetExe(),
				"empty": res.Command == "",
			}).Debug("please command built")

			return res, nil
		},
		CheckPasswordPrompt: func(cfg *becomeplugin.Config, output []byte) (bool, error) {
			return become.MatchesPrompt(output, cfg.Become.GetPromptL10N())
		},
	}
)
