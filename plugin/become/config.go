package become

import (
	"github.com/sirupsen/logrus"

	"gitlab.com/youtopia.earth/ops/snip-please/become"
)

type Config struct {
	Command string
	Wrapper become.SuccessWrapper
	Become  *become.Config
	Logger  *logrus.Entry
}

func (cfg *Config) GetLogger() *logrus.Entry {
	if cfg.Logger == nil {
		return logrus.WithFields(logrus.Fields{})
	}
	return cfg.Logger
}
