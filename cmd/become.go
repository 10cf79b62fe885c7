package cmd

import (
	shellquote "github.com/kballard/go-shellquote"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/youtopia.earth/ops/snip-please/become"
	"gitlab.com/youtopia.earth/ops/snip-please/options"
	becomeplugin "gitlab.com/youtopia.earth/ops/snip-please/plugin/become"
)

type resolvedBecome struct {
	Plugin   *becomeplugin.Plugin
	Config   *become.Config
	Resolver *options.Resolver
	Logger   *logrus.Entry
}

// keywordValues collects the become flags explicitly set on the command line.
func keywordValues(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	keywords := make(map[string]interface{})
	for flag, keyword := range map[string]string{
		"become-user":  "become_user",
		"become-exe":   "become_exe",
		"become-flags": "become_flags",
	} {
		if flags.Changed(flag) {
			keywords[keyword], _ = flags.GetString(flag)
		}
	}
	if flags.Changed("prompt-l10n") {
		keywords["prompt_l10n"], _ = flags.GetStringSlice("prompt-l10n")
	}
	return keywords
}

func resolveBecome(app App, cmd *cobra.Command, keywords map[string]interface{}) (*resolvedBecome, error) {
	method := app.GetConfig().BecomeMethod
	plugin, err := app.GetBecome(method)
	if err != nil {
		return nil, err
	}

	layers, err := app.OptionLayers(keywords)
	if err != nil {
		return nil, err
	}

	cfg, r, err := plugin.Resolve(layers...)
	if err != nil {
		return nil, err
	}

	logger := logrus.WithFields(logrus.Fields{
		"plugin": plugin.Name,
		"user":   cfg.GetUser(),
	})

	return &resolvedBecome{
		Plugin:   plugin,
		Config:   cfg,
		Resolver: r,
		Logger:   logger,
	}, nil
}

func innerCommand(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return shellquote.Join(args...)
}
