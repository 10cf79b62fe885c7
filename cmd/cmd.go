package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/youtopia.earth/ops/snip-please/config"
)

func NewCmd(app App) *cobra.Command {
	cmd := CmdRoot(app)

	cmd.AddCommand(CmdCompletion(app, cmd))
	cmd.AddCommand(CmdVersion(app))

	cmd.AddCommand(CmdBuild(app))
	cmd.AddCommand(CmdMatch(app))
	cmd.AddCommand(CmdRun(app))
	cmd.AddCommand(CmdOptions(app))

	return cmd
}

func CmdRoot(app App) *cobra.Command {
	cl := app.GetConfigLoader()

	cmd := &cobra.Command{
		Use:                    "snip-please",
		Short:                  "Run commands as another user with please 🔑",
		BashCompletionFunction: newBashCompletionFunc(app),
		SilenceUsage:           true,
		SilenceErrors:          true,
	}

	configFile := app.GetConfigFile()

	pFlags := cmd.PersistentFlags()

	pFlags.StringVarP(configFile, "config", "", os.Getenv(cl.PrefixEnv("CONFIG")), config.FlagConfigDesc)
	pFlags.StringP("log-level", "l", config.FlagLogLevelDefault, config.FlagLogLevelDesc)
	pFlags.StringP("log-type", "", config.FlagLogTypeDefault, config.FlagLogTypeDesc)
	pFlags.BoolP("log-force-colors", "", config.FlagLogForceColorsDefault, config.FlagLogForceColorsDesc)
	pFlags.StringP("cwd", "", "", config.FlagCWDDesc)

	pFlags.String("become-method", config.FlagBecomeMethodDefault, config.FlagBecomeMethodDesc)
	pFlags.String("ini-file", config.FlagIniFileDefault, config.FlagIniFileDesc)
	pFlags.String("vars-file", "", config.FlagVarsFileDesc)
	pFlags.String("timeout", config.FlagTimeoutDefault, config.FlagTimeoutDesc)
	pFlags.String("shell", config.FlagShellDefault, config.FlagShellDesc)

	pFlags.StringP("become-user", "u", "", config.FlagBecomeUserDesc)
	pFlags.String("become-exe", "", config.FlagBecomeExeDesc)
	pFlags.String("become-flags", "", config.FlagBecomeFlagsDesc)
	pFlags.StringSlice("prompt-l10n", nil, config.FlagPromptL10NDesc)

	v := app.GetViper()

	v.BindPFlag("CONFIG", pFlags.Lookup("config"))
	v.BindPFlag("LOG_LEVEL", pFlags.Lookup("log-level"))
	v.BindPFlag("LOG_TYPE", pFlags.Lookup("log-type"))
	v.BindPFlag("LOG_FORCE_COLORS", pFlags.Lookup("log-force-colors"))
	v.BindPFlag("BECOME_METHOD", pFlags.Lookup("become-method"))
	v.BindPFlag("INI_FILE", pFlags.Lookup("ini-file"))
	v.BindPFlag("VARS_FILE", pFlags.Lookup("vars-file"))
	v.BindPFlag("TIMEOUT", pFlags.Lookup("timeout"))
	v.BindPFlag("SHELL", pFlags.Lookup("shell"))

	v.BindEnv("CONFIG")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("LOG_TYPE")
	v.BindEnv("LOG_FORCE_COLORS")

	return cmd
}
