package loggers

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Writer logs every write as one entry at Level, trailing line breaks removed.
type Writer struct {
	Entry *logrus.Entry
	Level logrus.Level
}

func (w *Writer) Write(b []byte) (int, error) {
	n := len(b)
	if msg := strings.TrimRight(string(b), "\r\n"); msg != "" {
		w.Entry.Log(w.Level, msg)
	}
	return n, nil
}
