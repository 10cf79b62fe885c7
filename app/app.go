package app

import (
	"fmt"
	"os"
	"plugin"
	"sort"

	auroraPackage "github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	cmap "github.com/orcaman/concurrent-map"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/youtopia.earth/ops/snip-please/cmd"
	"gitlab.com/youtopia.earth/ops/snip-please/config"
	"gitlab.com/youtopia.earth/ops/snip-please/options"
	becomeplugin "gitlab.com/youtopia.earth/ops/snip-please/plugin/become"

	pluginBecomePlease "gitlab.com/youtopia.earth/ops/snip-please/plugins-native/become/please"
)

type App struct {
	Config          *config.Config
	ConfigFile      *string
	ConfigEnvPrefix string
	ConfigLoader    *config.ConfigLoader
	Viper           *viper.Viper
	RootCmd         *cobra.Command

	Plugins cmap.ConcurrentMap

	Aurora auroraPackage.Aurora

	Version string
}

func NewApp(version string) *App {
	app := &App{
		Version: version,
	}

	app.ConfigEnvPrefix = "SNIP"

	var configFile string
	app.ConfigFile = &configFile

	app.ConfigLoader = config.NewConfigLoader()
	app.ConfigLoader.SetEnvPrefix(app.ConfigEnvPrefix)
	app.ConfigLoader.SetFile(app.ConfigFile)
	app.Config = app.ConfigLoader.Config
	app.Viper = app.ConfigLoader.Viper

	app.Plugins = cmap.New()
	app.LoadNativePlugins()

	app.Aurora = auroraPackage.NewAurora(false)

	return app
}

func (app *App) GetViper() *viper.Viper {
	return app.ConfigLoader.GetViper()
}

func (app *App) GetConfig() *config.Config {
	return app.ConfigLoader.GetConfig()
}

func (app *App) GetVersion() string {
	return app.Version
}

func (app *App) GetConfigLoader() *config.ConfigLoader {
	return app.ConfigLoader
}

func (app *App) GetConfigFile() *string {
	return app.ConfigFile
}

func (app *App) OnInitialize() {
	app.ConfigLoader.OnInitialize()
	app.InitAurora()
}

func (app *App) InitAurora() {
	var enableColors bool
	if app.Config.LogForceColors {
		enableColors = true
	} else {
		enableColors = isatty.IsTerminal(os.Stdout.Fd())
	}
	app.Aurora = auroraPackage.NewAurora(enableColors)
}

func (app *App) GetAurora() auroraPackage.Aurora {
	return app.Aurora
}

func (app *App) OnPreRun(cmd *cobra.Command) {
	app.ConfigLoader.OnPreRun(cmd)
	app.InitAurora()
}

func (app *App) InitCmd() *cobra.Command {
	RootCmd := cmd.NewCmd(app)
	app.RootCmd = RootCmd
	app.ConfigLoader.RootCmd = RootCmd
	return RootCmd
}

// GetBecome returns the native plugin registered under name, falling back to
// ./plugins/become/<name>.so exporting a "Become" symbol.
func (app *App) GetBecome(name string) (*becomeplugin.Plugin, error) {
	k := "become/" + name
	plug, ok := app.Plugins.Get(k)
	if !ok {
		mod := "./plugins/" + k + ".so"
		p, err := plugin.Open(mod)
		if err != nil {
			return nil, fmt.Errorf("unknown become method %q: %w", name, err)
		}
		plug = p
		app.Plugins.Set(k, plug)
	}

	switch v := plug.(type) {
	case *plugin.Plugin:
		sym, err := v.Lookup("Become")
		if err != nil {
			return nil, err
		}
		b, ok := sym.(*becomeplugin.Plugin)
		if !ok {
			return nil, fmt.Errorf("unexpected type from module symbol on become plugin %s: %T", name, sym)
		}
		return b, nil
	case *becomeplugin.Plugin:
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected become plugin %s: %T", name, plug)
	}
}

func (app *App) GetBecomeNames() []string {
	var names []string
	for _, k := range app.Plugins.Keys() {
		if plug, ok := app.Plugins.Get(k); ok {
			if b, ok := plug.(*becomeplugin.Plugin); ok {
				names = append(names, b.Name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// OptionLayers returns the option sources from the highest precedence down.
func (app *App) OptionLayers(keywords map[string]interface{}) ([]*options.Layer, error) {
	cfg := app.GetConfig()

	vars, err := config.LoadVarsFile(cfg.VarsFile)
	if err != nil {
		return nil, err
	}

	ini, err := options.LoadIniLayer(cfg.IniFile)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"vars_file": cfg.VarsFile,
		"ini_file":  cfg.IniFile,
	}).Debug("option layers loaded")

	return []*options.Layer{
		options.KeywordLayer(keywords),
		options.VarsLayer(vars),
		options.EnvLayer(os.Environ()),
		ini,
	}, nil
}

func (app *App) LoadNativePlugins() {
	app.Plugins.Set("become/"+pluginBecomePlease.Name, &pluginBecomePlease.Become)
}
