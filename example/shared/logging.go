package shared

import (
	"io"

	"github.com/sirupsen/logrus"
)

func NewLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	return &logrus.Logger{
		Out:   out,
		Level: level,
		Formatter: &logrus.TextFormatter{
			FullTimestamp: true,
		},
		Hooks: make(logrus.LevelHooks),
	}
}
