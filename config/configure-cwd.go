package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

func (cl *ConfigLoader) ConfigureCWD() {
	cfg := cl.Config

	cwd, _ := cl.RootCmd.PersistentFlags().GetString("cwd")
	if cwd != "" {
		cfg.CWD = cwd
	} else if CWD := os.Getenv(cl.PrefixEnv("CWD")); CWD != "" {
		cfg.CWD = CWD
	}

	if cfg.CWD != "" {
		if err := os.Chdir(cfg.CWD); err != nil {
			logrus.Fatalf("unable to change directory to %q: %v", cfg.CWD, err)
		}
	}
}
