package polygon

import (
	"os"
	"regexp"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface of the client. *logrus.Logger and
// *logrus.Entry satisfy it.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

var (
	_ Logger = (*logrus.Logger)(nil)
	_ Logger = (*logrus.Entry)(nil)
)

// DefaultLogger returns a logrus logger writing to stderr at warn level,
// or at debug level when verbose is set.
func DefaultLogger(verbose bool) Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l.WithField("component", "polygon")
}

var apiKeyParam = regexp.MustCompile(`([?&]apiKey=)[^&]*`)

// redact hides the API key of a request URL before it is logged.
func redact(u string) string {
	return apiKeyParam.ReplaceAllString(u, "${1}REDACTED")
}
