package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"gitlab.com/youtopia.earth/ops/snip-please/tools"
)

type BuildInfo struct {
	Version       string   `json:"version,omitempty"`
	Module        string   `json:"module,omitempty"`
	GoVersion     string   `json:"go_version"`
	BecomeMethods []string `json:"become_methods"`
}

func CmdVersion(app App) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version informations",
		Long:  "show the snip-please version and its become methods in json format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := newBuildInfo(app.GetVersion(), app.GetBecomeNames())
			return printVersion(os.Stdout, info, short)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print the version number only")

	return cmd
}

// newBuildInfo falls back on the main module version when none was linked in.
func newBuildInfo(version string, methods []string) BuildInfo {
	info := BuildInfo{
		Version:       version,
		GoVersion:     runtime.Version(),
		BecomeMethods: methods,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.Module = bi.Main.Path
		if info.Version == "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}
	return info
}

func printVersion(out io.Writer, info BuildInfo, short bool) error {
	if short {
		_, err := fmt.Fprintln(out, info.Version)
		return err
	}
	_, err := fmt.Fprintln(out, tools.JsonEncode(info))
	return err
}
