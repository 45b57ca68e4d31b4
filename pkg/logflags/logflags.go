// Package logflags turns the --log, --log-output and --log-dest options into
// per-component zap loggers. Components that were not selected still report
// errors.
package logflags

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultLogDesc sends logs to stderr.
const DefaultLogDesc = ""

var (
	memory = false
	term   = false

	logOut  io.Writer = os.Stderr
	logFile *os.File
)

// Logger is the subset of *zap.SugaredLogger memkit uses.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

// Setup configures logging. logStr is a comma separated list of components
// (memory, term) whose debug output is enabled when flag is set. logDest is a
// file path; empty means stderr.
func Setup(flag bool, logStr, logDest string) error {
	if logDest != DefaultLogDesc {
		f, err := os.OpenFile(logDest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log destination: %w", err)
		}
		if logFile != nil {
			logFile.Close()
		}
		logFile = f
		logOut = f
	}

	if !flag {
		return nil
	}

	if logStr == "" {
		logStr = "memory"
	}
	for _, name := range strings.Split(logStr, ",") {
		switch strings.TrimSpace(name) {
		case "memory":
			memory = true
		case "term":
			term = true
		case "":
		default:
			return fmt.Errorf("unknown log output %q", name)
		}
	}

	return nil
}

// Reset restores the defaults and closes any log file opened by Setup.
func Reset() error {
	memory, term = false, false
	logOut = os.Stderr
	if logFile != nil {
		f := logFile
		logFile = nil
		return f.Close()
	}
	return nil
}

func MemoryLogger() Logger {
	return newLogger(memory, "memory")
}

func TermLogger() Logger {
	return newLogger(term, "term")
}

func Memory() bool { return memory }
func Term() bool   { return term }
