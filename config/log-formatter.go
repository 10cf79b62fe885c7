package config

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

type LogFormatter struct {
	DisableColors bool
}

func (f *LogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var levelColor int
	var icon string
	switch entry.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		levelColor = 37 // gray
		icon = "🐝"
	case logrus.WarnLevel:
		levelColor = 33 // yellow
		icon = "🛆"
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelColor = 31 // red
		icon = "⮾"
	default:
		levelColor = 36 // blue
		icon = "🛈"
	}

	b := &bytes.Buffer{}
	if f.DisableColors {
		fmt.Fprintf(b, "%s  %s", icon, entry.Message)
	} else {
		fmt.Fprintf(b, "\x1b[%dm%s \x1b[0m %s", levelColor, icon, entry.Message)
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}
