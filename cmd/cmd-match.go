package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/youtopia.earth/ops/snip-please/errors"
	becomeplugin "gitlab.com/youtopia.earth/ops/snip-please/plugin/become"
)

func CmdMatch(app App) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "match [output]",
		Short: "Check if an output is a please password prompt",
		Long:  "Check if the given output, or stdin when piped or redirected, starts with a please password prompt. Exits with code 1 when it does not.",
		Args:  cobra.MaximumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			app.OnPreRun(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var output []byte
			if len(args) > 0 {
				output = []byte(args[0])
			} else {
				stat, err := os.Stdin.Stat()
				if err != nil {
					return err
				}
				if !isPiped(stat.Mode()) {
					return fmt.Errorf("output expected as argument or piped on stdin")
				}
				output, err = ioutil.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
			}

			rb, err := resolveBecome(app, cmd, keywordValues(cmd))
			if err != nil {
				return err
			}

			ok, err := rb.Plugin.CheckPasswordPrompt(&becomeplugin.Config{
				Become: rb.Config,
				Logger: rb.Logger,
			}, output)
			if err != nil {
				return err
			}

			if !quiet {
				fmt.Fprintln(os.Stdout, ok)
			}
			if !ok {
				return &errors.ErrorWithCode{Code: 1}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only set the exit code")

	return cmd
}

// isPiped reports whether stdin comes from a pipe or a file rather than a terminal.
func isPiped(mode os.FileMode) bool {
	return mode&os.ModeCharDevice == 0
}
