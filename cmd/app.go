package cmd

import (
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/youtopia.earth/ops/snip-please/config"
	"gitlab.com/youtopia.earth/ops/snip-please/options"
	becomeplugin "gitlab.com/youtopia.earth/ops/snip-please/plugin/become"
)

type App interface {
	GetConfig() *config.Config
	GetViper() *viper.Viper
	GetConfigLoader() *config.ConfigLoader
	GetConfigFile() *string
	GetAurora() aurora.Aurora
	GetVersion() string
	OnPreRun(*cobra.Command)
	GetBecome(string) (*becomeplugin.Plugin, error)
	GetBecomeNames() []string
	OptionLayers(map[string]interface{}) ([]*options.Layer, error)
}
