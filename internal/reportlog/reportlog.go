// Package reportlog provides the structured logging the stk1c CLI uses for
// progress and error reporting. It wraps a single logrus.Logger so every
// subcommand reports through the same format, fields, and verbosity switch.
package reportlog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the CLI-wide structured logger. Subcommands log through this
// instead of constructing their own.
var Logger = logrus.New()

func init() {
	Logger.SetOutput(os.Stderr)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// SetVerbose raises the logger to debug level, or back down to info.
func SetVerbose(verbose bool) {
	if verbose {
		Logger.SetLevel(logrus.DebugLevel)
	} else {
		Logger.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects where log lines are written, so output can be
// captured instead of going to stderr.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// Result reports one file's compression outcome at info level, with
// structured fields a log aggregator can filter or chart on.
func Result(path string, srcBytes, dstBytes int, elapsedSeconds float64) {
	ratio := 0.0
	if srcBytes > 0 {
		ratio = float64(dstBytes) / float64(srcBytes) * 100
	}
	Logger.WithFields(logrus.Fields{
		"file":     path,
		"src_size": srcBytes,
		"dst_size": dstBytes,
		"ratio_pct": ratio,
		"elapsed_s": elapsedSeconds,
	}).Info("compressed")
}

// Failure reports one file's failure at error level without aborting a
// batch run; the caller decides whether to keep going.
func Failure(path string, err error) {
	Logger.WithFields(logrus.Fields{
		"file": path,
	}).WithError(err).Error("compression failed")
}
