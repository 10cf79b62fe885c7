package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/imdario/mergo"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gitlab.com/youtopia.earth/ops/snip-please/decode"
	"gitlab.com/youtopia.earth/ops/snip-please/errors"
	"gitlab.com/youtopia.earth/ops/snip-please/tools"
)

type ConfigLoader struct {
	EnvPrefix                string
	Viper                    *viper.Viper
	ViperDecoderConfigOption viper.DecoderConfigOption
	File                     *string
	Config                   *Config
	RootCmd                  *cobra.Command
	configPaths              []string
	configName               string
	initialized              bool
}

func NewConfigLoader() *ConfigLoader {
	cl := &ConfigLoader{}
	cl.Viper = viper.New()
	cl.Config = &Config{}
	cl.configPaths = []string{".", "/etc"}
	cl.configName = "snip-please"
	var file string
	cl.File = &file
	return cl
}

func (cl *ConfigLoader) ConfigShouldLoad() bool {
	if len(os.Args) < 2 {
		return true
	}
	switch os.Args[1] {
	case "completion", "version":
		return false
	default:
		return true
	}
}

func (cl *ConfigLoader) OnInitialize() {
	if cl.initialized {
		return
	}
	cl.initialized = true

	if !cl.ConfigShouldLoad() {
		return
	}

	cl.InitConfig()

	cl.Load()
}

func (cl *ConfigLoader) OnPreRun(cmd *cobra.Command) {
	if !cl.ConfigShouldLoad() {
		return
	}

	v := cl.Viper

	flags := cmd.Flags()
	flags.VisitAll(func(flag *pflag.Flag) {
		v.BindPFlag(tools.KeyEnv(flag.Name), flags.Lookup(flag.Name))
	})

	cl.Load()
}

func (cl *ConfigLoader) Load() {
	cl.LoadViper()
	ConfigureLogrusLogType(cl.Config.LogType, cl.Config.LogForceColors)
	ConfigureLogrusLogLevel(cl.Config.LogLevel)
}

func (cl *ConfigLoader) InitConfig() {
	cl.ConfigLogFromEnv()
	cl.ConfigureCWD()
	cl.LoadDotEnv()
	cl.ConfigLogFromEnv()
	cl.InitViper()
	cl.LoadViperConfigFile()
}

func (cl *ConfigLoader) GetEnvPrefix() string {
	return cl.EnvPrefix
}
func (cl *ConfigLoader) SetEnvPrefix(envPrefix string) {
	cl.EnvPrefix = envPrefix
}
func (cl *ConfigLoader) GetViper() *viper.Viper {
	return cl.Viper
}
func (cl *ConfigLoader) GetFile() *string {
	return cl.File
}
func (cl *ConfigLoader) SetFile(file *string) {
	cl.File = file
}
func (cl *ConfigLoader) GetConfig() *Config {
	return cl.Config
}

func (cl *ConfigLoader) PrefixEnv(key string) string {
	return cl.EnvPrefix + "_" + key
}

func (cl *ConfigLoader) loadDotEnvFile(envfile string) {
	if ok, err := tools.FileExists(envfile); ok {
		logrus.Debugf("loading %v into env", envfile)
		if err := godotenv.Load(envfile); err != nil {
			logrus.Fatalf("unable to load %v: %v", envfile, err)
		}
	} else if err != nil {
		logrus.Fatal(err)
	}
}

// LoadDotEnv never overrides variables already set, so the process
// environment wins over .env, which wins over .env.<SNIP_ENV> and .env.default.
func (cl *ConfigLoader) LoadDotEnv() {
	cl.loadDotEnvFile(".env")

	snipEnv := os.Getenv(cl.PrefixEnv("ENV"))
	logrus.Debugf("snip_env: %v", snipEnv)
	for _, env := range strings.Split(snipEnv, ",") {
		if env = strings.TrimSpace(env); env != "" {
			cl.loadDotEnvFile(".env." + env)
		}
	}

	cl.loadDotEnvFile(".env.default")
}

func (cl *ConfigLoader) ConfigLogFromEnv() {
	flags := cl.RootCmd.PersistentFlags()

	logType := cl.GetOptionString(flags, "log-type", FlagLogTypeDefault)
	logForceColors := cl.GetOptionBool(flags, "log-force-colors", FlagLogForceColorsDefault)
	ConfigureLogrusLogType(logType, logForceColors)

	logLevel := cl.GetOptionString(flags, "log-level", FlagLogLevelDefault)
	ConfigureLogrusLogLevel(logLevel)
}

func (cl *ConfigLoader) InitViper() {
	v := cl.Viper
	v.AutomaticEnv()
	v.AllowEmptyEnv(false)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.SetEnvPrefix(cl.EnvPrefix)

	v.SetDefault("LOG_LEVEL", FlagLogLevelDefault)
	v.SetDefault("LOG_TYPE", FlagLogTypeDefault)
	v.SetDefault("LOG_FORCE_COLORS", FlagLogForceColorsDefault)
	v.SetDefault("CWD", "")
	v.SetDefault("BECOME_METHOD", FlagBecomeMethodDefault)
	v.SetDefault("INI_FILE", FlagIniFileDefault)
	v.SetDefault("VARS_FILE", "")
	v.SetDefault("TIMEOUT", FlagTimeoutDefault)
	v.SetDefault("SHELL", FlagShellDefault)

	if File := *cl.File; File != "" {
		v.SetConfigFile(File)
	} else {
		for _, configPath := range cl.configPaths {
			v.AddConfigPath(configPath)
		}
		v.SetConfigName(cl.configName)
	}

	cl.ViperDecoderConfigOption = viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		decode.DecodeHookParseDuration(),
		decode.DecodeHookStringList(),
	))
}

func (cl *ConfigLoader) LoadViperConfigFile() {
	if err := cl.Viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logrus.Fatalf("Unable to read config: %v", err)
		}
	}
}

func (cl *ConfigLoader) LoadViper() {
	mergeConfig := &Config{}
	if err := cl.Viper.Unmarshal(mergeConfig, cl.ViperDecoderConfigOption); err != nil {
		logrus.Fatalf("Unable to unmarshal config: %v", err)
	}
	err := mergo.Merge(cl.Config, *mergeConfig, mergo.WithOverride)
	errors.Check(err)
}

// LoadVarsFile reads become variables from a yaml, json or toml file.
func LoadVarsFile(filename string) (map[string]interface{}, error) {
	if filename == "" {
		return map[string]interface{}{}, nil
	}
	v := viper.New()
	v.SetConfigFile(filename)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("unable to read vars file %q: %w", filename, err)
	}
	return v.AllSettings(), nil
}

func (cl *ConfigLoader) GetOptionString(flags *pflag.FlagSet, key string, defaultValue string) string {
	keyEnv := tools.KeyEnv(key)
	var str string
	if flags.Changed(key) {
		str, _ = flags.GetString(key)
	} else {
		str = os.Getenv(cl.PrefixEnv(keyEnv))
	}
	if str == "" {
		str = defaultValue
	}
	return str
}

func (cl *ConfigLoader) GetOptionBool(flags *pflag.FlagSet, key string, defaultValue bool) bool {
	keyEnv := tools.KeyEnv(key)
	var b bool
	if flags.Changed(key) {
		b, _ = flags.GetBool(key)
	} else {
		s := os.Getenv(cl.PrefixEnv(keyEnv))
		if s == "true" || s == "1" {
			b = true
		} else if s == "false" || s == "0" {
			b = false
		} else {
			b = defaultValue
		}
	}
	return b
}
