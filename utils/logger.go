package utils

import (
	"io"

	logging "github.com/op/go-logging"
)

// Log is the process-wide logger
var Log = logging.MustGetLogger("bistro")

var logFormat = logging.MustStringFormatter(
	`[%{level:.4s}] %{time:2006-01-02 15:04:05.000} %{shortfile} %{message}`,
)

// InitLogging points the logger at w and sets the minimum level (DEBUG, INFO, WARNING, ERROR...)
func InitLogging(w io.Writer, level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	backend := logging.NewLogBackend(w, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, logFormat)
	backendLeveled := logging.AddModuleLevel(backendFormatter)
	backendLeveled.SetLevel(lvl, "")

	logging.SetBackend(backendLeveled)
	return nil
}
