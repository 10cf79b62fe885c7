package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/youtopia.earth/ops/snip-please/become"
	becomeplugin "gitlab.com/youtopia.earth/ops/snip-please/plugin/become"
	"gitlab.com/youtopia.earth/ops/snip-please/tools"
)

type buildOutput struct {
	Command            string `json:"command"`
	RequiresPromptScan bool   `json:"requires_prompt_scan"`
	Sentinel           string `json:"sentinel,omitempty"`
}

func CmdBuild(app App) *cobra.Command {
	var jsonOutput bool
	var noSentinel bool

	cmd := &cobra.Command{
		Use:   "build [command...]",
		Short: "Print the become command wrapping the given command",
		Args:  cobra.ArbitraryArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			app.OnPreRun(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rb, err := resolveBecome(app, cmd, keywordValues(cmd))
			if err != nil {
				return err
			}

			var wrapper become.SuccessWrapper
			var sentinel string
			if !noSentinel {
				w, err := become.NewSentinelWrapper(app.GetConfig().Shell)
				if err != nil {
					return err
				}
				wrapper = w
				sentinel = w.Sentinel
			}

			res, err := rb.Plugin.Build(&becomeplugin.Config{
				Command: innerCommand(args),
				Wrapper: wrapper,
				Become:  rb.Config,
				Logger:  rb.Logger,
			})
			if err != nil {
				return err
			}
			if res.Command == "" {
				sentinel = ""
			}

			if jsonOutput {
				fmt.Fprintln(os.Stdout, tools.JsonEncode(&buildOutput{
					Command:            res.Command,
					RequiresPromptScan: res.RequiresPromptScan,
					Sentinel:           sentinel,
				}))
				return nil
			}
			fmt.Fprintln(os.Stdout, res.Command)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&jsonOutput, "json", false, "print the result in json format")
	flags.BoolVar(&noSentinel, "no-sentinel", false, "do not wrap the command with the success marker")

	return cmd
}
