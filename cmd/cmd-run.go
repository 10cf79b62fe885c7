package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/youtopia.earth/ops/snip-please/become"
	"gitlab.com/youtopia.earth/ops/snip-please/config"
	becomeplugin "gitlab.com/youtopia.earth/ops/snip-please/plugin/become"
	"gitlab.com/youtopia.earth/ops/snip-please/runner"
)

func CmdRun(app App) *cobra.Command {
	var askBecomePass bool

	cmd := &cobra.Command{
		Use:   "run [command...]",
		Short: "Run a command as another user with please",
		Args:  cobra.MinimumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			app.OnPreRun(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			keywords := keywordValues(cmd)
			if askBecomePass {
				pass, err := askPassword()
				if err != nil {
					return err
				}
				if pass != "" {
					keywords["become_pass"] = pass
				}
			}

			rb, err := resolveBecome(app, cmd, keywords)
			if err != nil {
				return err
			}

			cfg := app.GetConfig()
			wrapper, err := become.NewSentinelWrapper(cfg.Shell)
			if err != nil {
				return err
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

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigs)
			go func() {
				select {
				case sig := <-sigs:
					rb.Logger.Warnf("received %v, interrupting", sig)
					cancel()
				case <-ctx.Done():
				}
			}()

			return runner.Run(&runner.Config{
				Context:            ctx,
				Logger:             rb.Logger,
				Command:            res.Command,
				Shell:              cfg.Shell,
				RequiresPromptScan: res.RequiresPromptScan,
				Pass:               rb.Config.Pass,
				Prompts:            rb.Config.GetPromptL10N(),
				Fail:               rb.Plugin.Fail,
				Sentinel:           wrapper.Sentinel,
				Timeout:            cfg.Timeout,
			})
		},
	}

	cmd.Flags().BoolVarP(&askBecomePass, "ask-become-pass", "K", false, config.FlagAskBecomePassDesc)

	return cmd
}

func askPassword() (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		logrus.Warn("stdin is not a terminal, unable to ask for the become password")
		return "", nil
	}
	var pass string
	prompt := &survey.Password{
		Message: "BECOME password:",
	}
	if err := survey.AskOne(prompt, &pass); err != nil {
		return "", err
	}
	return pass, nil
}
