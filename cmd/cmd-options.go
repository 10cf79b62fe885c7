package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/youtopia.earth/ops/snip-please/tools"
)

type optionOutput struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Origin string `json:"origin"`
}

func CmdOptions(app App) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Show the resolved become options and where they come from",
		Args:  cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			app.OnPreRun(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rb, err := resolveBecome(app, cmd, keywordValues(cmd))
			if err != nil {
				return err
			}

			values := rb.Resolver.Values()

			if jsonOutput {
				out := make([]*optionOutput, 0, len(values))
				for _, v := range values {
					out = append(out, &optionOutput{
						Name:   v.Definition.Name,
						Value:  v.Display(),
						Origin: v.Origin,
					})
				}
				fmt.Fprintln(os.Stdout, tools.JsonEncode(out))
				return nil
			}

			au := app.GetAurora()
			fmt.Fprintf(os.Stdout, "%s %s\n", au.Bold("become method:"), au.BrightMagenta(rb.Plugin.Name))
			for _, v := range values {
				fmt.Fprintf(os.Stdout, "  %s = %s %s\n",
					au.Bold(v.Definition.Name),
					au.BrightGreen(v.Display()),
					au.BrightBlue("("+v.Origin+")"),
				)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the options in json format")

	return cmd
}
