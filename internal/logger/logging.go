// Package logger configures charmbracelet/log's default logger for the whole process.
package logger

import (
	"github.com/charmbracelet/log"
)

// Setup applies the global log level for the whole process.
// Debug runs report timestamps as well, normal runs stay on Warn
// so prompts and suggestion output are not drowned in log noise.
func Setup(debug bool) {
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(log.WarnLevel)
	log.SetReportTimestamp(false)
}
